package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the onboarding hub.
// Load reads each field from its environment variable; defaults live there.
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Backend (identity/authorization service)
	BackendBaseURL      string
	BackendServiceToken string
	BackendTimeout      time.Duration

	// Circuit breaker
	BreakerFailureThreshold int
	BreakerSuccessThreshold int
	BreakerResetTimeout     time.Duration

	// Retry policy
	RetryMaxAttempts int
	RetryBaseDelay   time.Duration
	RetryMaxDelay    time.Duration

	// Session sealing
	SealSecret string
	SealIssuer string
	SessionTTL time.Duration

	// Cookies
	SessionCookieName     string
	MarkerCookieName      string
	SupersededCookieNames []string
	CookieDomain          string
	CookieSecure          bool

	// Validator cache
	ValidatorCacheTTL time.Duration
	MarkerTTL         time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Backend configuration
	config.BackendBaseURL = os.Getenv("BACKEND_BASE_URL")
	if config.BackendBaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}
	config.BackendServiceToken = os.Getenv("BACKEND_SERVICE_TOKEN")

	var err error
	if config.BackendTimeout, err = getDurationEnv("BACKEND_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	// Circuit breaker configuration
	if config.BreakerFailureThreshold, err = getIntEnv("BREAKER_FAILURE_THRESHOLD", 3); err != nil {
		return nil, err
	}
	if config.BreakerSuccessThreshold, err = getIntEnv("BREAKER_SUCCESS_THRESHOLD", 2); err != nil {
		return nil, err
	}
	if config.BreakerResetTimeout, err = getDurationEnv("BREAKER_RESET_TIMEOUT", "30s"); err != nil {
		return nil, err
	}

	// Retry configuration
	if config.RetryMaxAttempts, err = getIntEnv("RETRY_MAX_ATTEMPTS", 3); err != nil {
		return nil, err
	}
	if config.RetryBaseDelay, err = getDurationEnv("RETRY_BASE_DELAY", "500ms"); err != nil {
		return nil, err
	}
	if config.RetryMaxDelay, err = getDurationEnv("RETRY_MAX_DELAY", "5s"); err != nil {
		return nil, err
	}

	// Sealing configuration
	config.SealSecret = os.Getenv("SEAL_SECRET")
	if config.SealSecret == "" {
		return nil, fmt.Errorf("SEAL_SECRET is required")
	}
	config.SealIssuer = getEnvOrDefault("SEAL_ISSUER", "onboarding-hub")
	if config.SessionTTL, err = getDurationEnv("SESSION_TTL", "24h"); err != nil {
		return nil, err
	}

	// Cookie configuration
	config.SessionCookieName = getEnvOrDefault("SESSION_COOKIE_NAME", "oh_session")
	config.MarkerCookieName = getEnvOrDefault("MARKER_COOKIE_NAME", "onboarding_just_completed")
	config.SupersededCookieNames = splitNonEmpty(
		getEnvOrDefault("SUPERSEDED_COOKIE_NAMES", "appSession,onboardingStep,tenantId"))
	config.CookieDomain = os.Getenv("COOKIE_DOMAIN")
	config.CookieSecure = getBoolEnv("COOKIE_SECURE", true)

	// Cache configuration
	if config.ValidatorCacheTTL, err = getDurationEnv("VALIDATOR_CACHE_TTL", "30s"); err != nil {
		return nil, err
	}
	if config.MarkerTTL, err = getDurationEnv("MARKER_TTL", "5m"); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port out of range: %d", port)
	}

	if len(c.SealSecret) < 32 {
		return fmt.Errorf("SEAL_SECRET must be at least 32 characters")
	}

	if c.BreakerFailureThreshold < 1 {
		return fmt.Errorf("BREAKER_FAILURE_THRESHOLD must be at least 1")
	}
	if c.BreakerSuccessThreshold < 1 {
		return fmt.Errorf("BREAKER_SUCCESS_THRESHOLD must be at least 1")
	}
	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be at least 1")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	levelValid := false
	for _, level := range validLogLevels {
		if strings.EqualFold(c.LogLevel, level) {
			levelValid = true
			break
		}
	}
	if !levelValid {
		return fmt.Errorf("invalid log level: %s (valid: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationEnv(key, defaultValue string) (time.Duration, error) {
	value := getEnvOrDefault(key, defaultValue)
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func splitNonEmpty(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
