package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy of the completion core. Every failure surfaced by a
// usecase wraps exactly one of these sentinels.
var (
	// ErrUnauthenticated means no or invalid session credential.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidInput means required request fields are missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDependencyUnavailable means the circuit is open or retries were
	// exhausted against the backend.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrBackendRejected means the backend answered non-2xx after retries.
	ErrBackendRejected = errors.New("backend rejected request")
	// ErrSchemaNotProvisioned means the backend signals missing tenant
	// storage. Requires operator action, not user retry.
	ErrSchemaNotProvisioned = errors.New("tenant schema not provisioned")
	// ErrInternal is an unexpected failure.
	ErrInternal = errors.New("internal error")
)

// ErrorKind is the wire-level name of a taxonomy member.
type ErrorKind string

const (
	KindUnauthenticated       ErrorKind = "unauthenticated"
	KindInvalidInput          ErrorKind = "invalid_input"
	KindDependencyUnavailable ErrorKind = "dependency_unavailable"
	KindBackendRejected       ErrorKind = "backend_rejected"
	KindSchemaNotProvisioned  ErrorKind = "schema_not_provisioned"
	KindInternal              ErrorKind = "internal"
)

// KindOf maps an error to its taxonomy kind.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrSchemaNotProvisioned):
		return KindSchemaNotProvisioned
	case errors.Is(err, ErrDependencyUnavailable):
		return KindDependencyUnavailable
	case errors.Is(err, ErrBackendRejected):
		return KindBackendRejected
	default:
		return KindInternal
	}
}

// PhaseError carries the phase and tenant context a failure occurred in,
// so a log line is enough to reconstruct it without replaying the request.
type PhaseError struct {
	Phase    Phase
	TenantID string
	Cause    error
}

func (e *PhaseError) Error() string {
	if e.TenantID != "" {
		return fmt.Sprintf("phase %s failed for tenant %s: %v", e.Phase, e.TenantID, e.Cause)
	}
	return fmt.Sprintf("phase %s failed: %v", e.Phase, e.Cause)
}

func (e *PhaseError) Unwrap() error {
	return e.Cause
}

// NewPhaseError wraps a failure with its phase context.
func NewPhaseError(phase Phase, tenantID string, cause error) *PhaseError {
	return &PhaseError{Phase: phase, TenantID: tenantID, Cause: cause}
}
