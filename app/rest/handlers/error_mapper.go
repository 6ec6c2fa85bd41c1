package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"onboarding-hub/app/domain"
)

// ErrorResponse is the failure envelope for every error class.
type ErrorResponse struct {
	Success       bool             `json:"success"`
	Error         domain.ErrorKind `json:"error"`
	Message       string           `json:"message"`
	MissingFields []string         `json:"missingFields,omitempty"`
}

// writeError converts a domain error into the appropriate HTTP response.
func writeError(c echo.Context, err error) error {
	kind := domain.KindOf(err)
	return c.JSON(statusFor(kind), ErrorResponse{
		Success: false,
		Error:   kind,
		Message: messageFor(kind),
	})
}

// writeInvalidInput reports missing or malformed request fields.
func writeInvalidInput(c echo.Context, message string, missingFields []string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Success:       false,
		Error:         domain.KindInvalidInput,
		Message:       message,
		MissingFields: missingFields,
	})
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindSchemaNotProvisioned:
		// Requires operator action, not user retry.
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(kind domain.ErrorKind) string {
	switch kind {
	case domain.KindUnauthenticated:
		return "authentication required"
	case domain.KindInvalidInput:
		return "invalid request"
	case domain.KindSchemaNotProvisioned:
		return "tenant storage is not provisioned"
	case domain.KindDependencyUnavailable:
		return "backend temporarily unavailable"
	case domain.KindBackendRejected:
		return "backend rejected the request"
	default:
		return "internal error"
	}
}
