package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"onboarding-hub/app/resilience"
)

var startTime = time.Now()

// HealthResponse represents a health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// HealthStatus represents the status of an individual dependency
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessResponse represents a readiness check response
type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks"`
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	breaker *resilience.CircuitBreaker
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(breaker *resilience.CircuitBreaker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		breaker: breaker,
		logger:  logger,
	}
}

// HealthCheck performs a basic health check
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/health [get]
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "onboarding-hub",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	})
}

// ReadinessCheck performs a readiness check
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /v1/ready [get]
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	checks := make(map[string]HealthStatus)

	// The breaker is the live view of backend health. An open circuit
	// means completions would fail fast, so the service is not ready.
	state := h.breaker.State()
	backendCheck := HealthStatus{Status: "healthy", Message: "circuit " + state.String()}
	ready := true
	if state == resilience.StateOpen {
		backendCheck.Status = "unhealthy"
		ready = false
	}
	checks["backend"] = backendCheck

	status := "ready"
	statusCode := http.StatusOK
	if !ready {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, ReadinessResponse{
		Status:    status,
		Timestamp: time.Now(),
		Service:   "onboarding-hub",
		Checks:    checks,
	})
}

// LivenessCheck performs a liveness check
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/live [get]
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Service:   "onboarding-hub",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	})
}
