package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"onboarding-hub/app/port"
	"onboarding-hub/app/resilience"
	"onboarding-hub/app/rest/handlers"
	custommw "onboarding-hub/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger           *slog.Logger
	SessionValidator port.SessionValidator
	Orchestrator     port.CompletionOrchestrator
	Synchronizer     port.SessionSynchronizer
	Breaker          *resilience.CircuitBreaker
	Cookies          handlers.CookieConfig
	EnableDebug      bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	onboardingHandler := handlers.NewOnboardingHandler(
		config.SessionValidator,
		config.Orchestrator,
		config.Synchronizer,
		config.Cookies,
		config.Logger,
	)
	healthHandler := handlers.NewHealthHandler(config.Breaker, config.Logger)

	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// Health endpoints
	v1 := e.Group("/v1")
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Onboarding endpoints
	onboarding := v1.Group("/onboarding")
	onboarding.POST("/complete-all", onboardingHandler.CompleteAll)
	onboarding.GET("/status", onboardingHandler.Status)

	return e
}
