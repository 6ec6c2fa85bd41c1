package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"onboarding-hub/app/domain"
	"onboarding-hub/app/port"
)

// SessionSyncUsecase はセッション状態をクレデンシャルと完全同期
// It merges updated facts onto the previous credential, seals the result
// and produces the atomic bundle for the transport boundary: the new
// sealed credential, the short-lived plaintext completion marker and the
// deletions for superseded credential names.
type SessionSyncUsecase struct {
	sealer          port.SessionSealer
	sessionTTL      time.Duration
	markerTTL       time.Duration
	supersededNames []string
	logger          *slog.Logger
}

// NewSessionSyncUsecase creates a new SessionSyncUsecase.
func NewSessionSyncUsecase(
	sealer port.SessionSealer,
	sessionTTL time.Duration,
	markerTTL time.Duration,
	supersededNames []string,
	logger *slog.Logger,
) *SessionSyncUsecase {
	return &SessionSyncUsecase{
		sealer:          sealer,
		sessionTTL:      sessionTTL,
		markerTTL:       markerTTL,
		supersededNames: supersededNames,
		logger:          logger.With("component", "session_sync_usecase"),
	}
}

// Sync merges updates onto prev, seals the merged facts and returns the
// credential bundle. Prior fields unrelated to the update are preserved;
// the sealed value always replaces the old one as a whole, never partially.
func (u *SessionSyncUsecase) Sync(prev domain.SessionFacts, updates domain.SessionFacts) (*domain.CredentialBundle, error) {
	merged := prev.Merge(updates)

	now := time.Now()
	if merged.ExpiresAt.IsZero() || !merged.ExpiresAt.After(now) {
		merged.ExpiresAt = now.Add(u.sessionTTL)
	}
	merged.IssuedAt = now

	token, err := u.sealer.Seal(&merged)
	if err != nil {
		u.logger.Error("failed to seal session facts",
			"user_id", merged.UserID,
			"tenant_id", merged.TenantID,
			"error", err)
		return nil, fmt.Errorf("failed to seal session facts: %w", err)
	}

	bundle := &domain.CredentialBundle{
		SessionToken:    token,
		SessionExpires:  merged.ExpiresAt,
		SupersededNames: u.supersededNames,
	}

	// The marker is a UX polling hint only; it must never be trusted for
	// authorization decisions.
	if merged.OnboardingCompleted {
		bundle.Marker = merged.TenantID
		bundle.MarkerExpires = now.Add(u.markerTTL)
	}

	u.logger.Info("session credential synchronized",
		"user_id", merged.UserID,
		"tenant_id", merged.TenantID,
		"onboarding_completed", merged.OnboardingCompleted,
		"superseded_count", len(u.supersededNames))

	return bundle, nil
}
