package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := map[string]struct {
		err    error
		expect ErrorKind
	}{
		"unauthenticated":          {ErrUnauthenticated, KindUnauthenticated},
		"invalid input":            {ErrInvalidInput, KindInvalidInput},
		"dependency unavailable":   {ErrDependencyUnavailable, KindDependencyUnavailable},
		"backend rejected":         {ErrBackendRejected, KindBackendRejected},
		"schema not provisioned":   {ErrSchemaNotProvisioned, KindSchemaNotProvisioned},
		"internal":                 {ErrInternal, KindInternal},
		"unknown error":            {errors.New("surprise"), KindInternal},
		"wrapped sentinel":         {fmt.Errorf("op: %w", ErrUnauthenticated), KindUnauthenticated},
		"phase-wrapped sentinel":   {NewPhaseError(PhaseBusinessInfo, "t-1", ErrDependencyUnavailable), KindDependencyUnavailable},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expect, KindOf(tc.err))
		})
	}
}

func TestPhaseError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewPhaseError(PhaseBusinessInfo, "tenant-1", cause)

	assert.Contains(t, err.Error(), "business_info")
	assert.Contains(t, err.Error(), "tenant-1")
	assert.ErrorIs(t, err, cause)

	var phaseErr *PhaseError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &phaseErr)
	assert.Equal(t, PhaseBusinessInfo, phaseErr.Phase)
}

func TestPhaseError_WithoutTenant(t *testing.T) {
	err := NewPhaseError(PhaseVerify, "", errors.New("timeout"))
	assert.Contains(t, err.Error(), "verify")
	assert.NotContains(t, err.Error(), "tenant ")
}
