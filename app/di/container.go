package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"onboarding-hub/app/cache"
	"onboarding-hub/app/config"
	"onboarding-hub/app/driver/backendapi"
	"onboarding-hub/app/driver/seal"
	"onboarding-hub/app/gateway"
	"onboarding-hub/app/resilience"
	"onboarding-hub/app/rest"
	"onboarding-hub/app/rest/handlers"
	"onboarding-hub/app/usecase"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Resilience
	Breaker  *resilience.CircuitBreaker
	Executor *resilience.Executor

	// Drivers
	BackendClient *backendapi.Client
	Sealer        *seal.JWTSealer

	// Gateways
	OnboardingGateway *gateway.OnboardingGateway

	// Usecases
	ValidateSessionUsecase *usecase.ValidateSessionUsecase
	CompletionUsecase      *usecase.CompletionUsecase
	SessionSyncUsecase     *usecase.SessionSyncUsecase

	sessionCache *cache.SessionCache
}

// NewContainer creates and wires all dependencies
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	if err := container.initResilience(); err != nil {
		return nil, fmt.Errorf("failed to initialize resilience layer: %w", err)
	}
	if err := container.initDrivers(); err != nil {
		return nil, fmt.Errorf("failed to initialize drivers: %w", err)
	}
	container.initGateways()
	container.initUsecases()

	logger.Info("dependency container initialized")
	return container, nil
}

// initResilience sets up the process-wide circuit breaker and the call
// executor shared by every backend operation.
func (c *Container) initResilience() error {
	c.Breaker = resilience.NewCircuitBreaker(resilience.BreakerConfig{
		FailureThreshold: c.Config.BreakerFailureThreshold,
		SuccessThreshold: c.Config.BreakerSuccessThreshold,
		ResetTimeout:     c.Config.BreakerResetTimeout,
	})

	c.Executor = resilience.NewExecutor(
		c.Breaker,
		resilience.RetryConfig{
			MaxAttempts:   c.Config.RetryMaxAttempts,
			BaseDelay:     c.Config.RetryBaseDelay,
			MaxDelay:      c.Config.RetryMaxDelay,
			BackoffFactor: 2.0,
			JitterFactor:  0.2,
		},
		gateway.RetryClassifier,
		c.Config.BackendTimeout,
		c.Logger,
	)

	return nil
}

func (c *Container) initDrivers() error {
	client, err := backendapi.NewClient(backendapi.Options{
		BaseURL:      c.Config.BackendBaseURL,
		ServiceToken: c.Config.BackendServiceToken,
		Timeout:      c.Config.BackendTimeout,
	}, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}
	c.BackendClient = client

	sealer, err := seal.NewJWTSealer(c.Config.SealSecret, c.Config.SealIssuer, c.Config.SessionTTL)
	if err != nil {
		return fmt.Errorf("failed to create session sealer: %w", err)
	}
	c.Sealer = sealer

	return nil
}

func (c *Container) initGateways() {
	c.OnboardingGateway = gateway.NewOnboardingGateway(c.BackendClient, c.Executor, c.Logger)
}

func (c *Container) initUsecases() {
	c.sessionCache = cache.NewSessionCache(c.Config.ValidatorCacheTTL)

	c.ValidateSessionUsecase = usecase.NewValidateSessionUsecase(
		c.Sealer,
		c.OnboardingGateway,
		c.sessionCache,
		c.Logger,
	)

	resolver := usecase.NewTenantResolver(c.Logger)
	c.CompletionUsecase = usecase.NewCompletionUsecase(
		c.OnboardingGateway,
		resolver,
		c.Logger,
	)

	c.SessionSyncUsecase = usecase.NewSessionSyncUsecase(
		c.Sealer,
		c.Config.SessionTTL,
		c.Config.MarkerTTL,
		c.Config.SupersededCookieNames,
		c.Logger,
	)
}

// CreateRouter creates the HTTP router with all handlers wired
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:           c.Logger,
		SessionValidator: c.ValidateSessionUsecase,
		Orchestrator:     c.CompletionUsecase,
		Synchronizer:     c.SessionSyncUsecase,
		Breaker:          c.Breaker,
		Cookies: handlers.CookieConfig{
			SessionName:     c.Config.SessionCookieName,
			MarkerName:      c.Config.MarkerCookieName,
			Domain:          c.Config.CookieDomain,
			Secure:          c.Config.CookieSecure,
			SupersededNames: c.Config.SupersededCookieNames,
		},
	})
}

// Close releases container resources
func (c *Container) Close() error {
	c.Logger.Info("dependency container closed")
	return nil
}
