package port

//go:generate mockgen -source=backend_port.go -destination=../mocks/mock_backend_port.go -package=mocks

import (
	"context"

	"onboarding-hub/app/domain"
)

// OnboardingBackend is the anti-corruption boundary to the remote
// identity/authorization service. Implementations classify failures into
// the domain error taxonomy and guard every call with the resilience layer.
type OnboardingBackend interface {
	// SubmitBusinessInfo creates or updates the business profile keyed by
	// the current best-known tenant id.
	SubmitBusinessInfo(ctx context.Context, tenantID, userID string, profile domain.BusinessProfile) (*domain.BusinessInfoResult, error)
	// SaveSubscription stores the selected plan and billing cycle.
	SaveSubscription(ctx context.Context, tenantID, userID string, selection domain.SubscriptionSelection) error
	// CompleteOnboarding asks the backend to mark onboarding finished.
	// The override flags bypass backend-side payment validation.
	CompleteOnboarding(ctx context.Context, tenantID, userID string, forceComplete, paymentVerified bool) error
	// ForceComplete is the stronger idempotent repair call that overwrites
	// inconsistent backend state regardless of prior step outcomes.
	ForceComplete(ctx context.Context, tenantID, userID string) error
	// ReadStatus fetches the backend's current onboarding/session state.
	ReadStatus(ctx context.Context, tenantID, userID string) (*domain.OnboardingRecord, error)
}

// BackendClient is the raw HTTP driver beneath the gateway. Errors are
// transport errors or *backendapi.APIError values; no domain classification
// happens at this level.
type BackendClient interface {
	PostBusinessInfo(ctx context.Context, tenantID, userID string, profile domain.BusinessProfile) (*domain.BusinessInfoResult, error)
	PostSubscription(ctx context.Context, tenantID, userID string, selection domain.SubscriptionSelection) error
	PostComplete(ctx context.Context, tenantID, userID string, forceComplete, paymentVerified bool) error
	PostForceComplete(ctx context.Context, tenantID, userID string) error
	GetStatus(ctx context.Context, tenantID, userID string) (*domain.OnboardingRecord, error)
}
