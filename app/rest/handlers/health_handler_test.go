package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding-hub/app/resilience"
)

func newHealthTestContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newHealthBreaker() *resilience.CircuitBreaker {
	return resilience.NewCircuitBreaker(resilience.BreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		ResetTimeout:     time.Minute,
	})
}

func TestHealthCheck(t *testing.T) {
	h := NewHealthHandler(newHealthBreaker(), newTestLogger())

	c, rec := newHealthTestContext("/v1/health")
	require.NoError(t, h.HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "onboarding-hub", resp.Service)
}

func TestReadinessCheck_ClosedCircuitIsReady(t *testing.T) {
	h := NewHealthHandler(newHealthBreaker(), newTestLogger())

	c, rec := newHealthTestContext("/v1/ready")
	require.NoError(t, h.ReadinessCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, "healthy", resp.Checks["backend"].Status)
}

func TestReadinessCheck_OpenCircuitIsNotReady(t *testing.T) {
	breaker := newHealthBreaker()
	for i := 0; i < 3; i++ {
		_ = breaker.Call(func() error { return errors.New("backend down") })
	}
	require.Equal(t, resilience.StateOpen, breaker.State())

	h := NewHealthHandler(breaker, newTestLogger())

	c, rec := newHealthTestContext("/v1/ready")
	require.NoError(t, h.ReadinessCheck(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_ready", resp.Status)
	assert.Equal(t, "unhealthy", resp.Checks["backend"].Status)
}

func TestLivenessCheck(t *testing.T) {
	h := NewHealthHandler(newHealthBreaker(), newTestLogger())

	c, rec := newHealthTestContext("/v1/live")
	require.NoError(t, h.LivenessCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
