package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go -package=mocks

import (
	"context"

	"onboarding-hub/app/domain"
)

// SessionSealer is the black-box seal/open pair for the client-held
// session credential.
type SessionSealer interface {
	Seal(facts *domain.SessionFacts) (string, error)
	Open(token string) (*domain.SessionFacts, error)
}

// SessionValidator exchanges an opaque session credential for canonical
// session facts. Invalidate drops any cached facts for a credential whose
// canonical state has just changed.
type SessionValidator interface {
	Validate(ctx context.Context, credential string) (*domain.SessionContext, error)
	Invalidate(credential string)
}

// CompletionOrchestrator drives the onboarding completion protocol for a
// validated session.
type CompletionOrchestrator interface {
	CompleteAll(ctx context.Context, sc *domain.SessionContext, req domain.CompletionRequest) (*domain.CompletionResult, error)
}

// SessionSynchronizer seals updated session facts and produces the atomic
// credential bundle for the transport boundary.
type SessionSynchronizer interface {
	Sync(prev domain.SessionFacts, updates domain.SessionFacts) (*domain.CredentialBundle, error)
}

// TenantResolver collapses the candidate sources into one canonical
// tenant id.
type TenantResolver interface {
	Resolve(candidates domain.TenantCandidates) domain.ResolvedTenant
}
