package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"onboarding-hub/app/cache"
	"onboarding-hub/app/domain"
	"onboarding-hub/app/port"
)

// ValidateSessionUsecase exchanges an opaque sealed credential for
// canonical session facts. Concurrent validations of the same credential
// are deduplicated and results are cached for a short TTL.
type ValidateSessionUsecase struct {
	sealer  port.SessionSealer
	backend port.OnboardingBackend
	cache   *cache.SessionCache
	group   singleflight.Group
	logger  *slog.Logger
}

// NewValidateSessionUsecase creates a new ValidateSessionUsecase.
func NewValidateSessionUsecase(
	sealer port.SessionSealer,
	backend port.OnboardingBackend,
	sessionCache *cache.SessionCache,
	logger *slog.Logger,
) *ValidateSessionUsecase {
	return &ValidateSessionUsecase{
		sealer:  sealer,
		backend: backend,
		cache:   sessionCache,
		logger:  logger.With("component", "validate_session_usecase"),
	}
}

// Validate opens the credential and returns the session context.
// Missing or unverifiable credentials are ErrUnauthenticated.
func (u *ValidateSessionUsecase) Validate(ctx context.Context, credential string) (*domain.SessionContext, error) {
	if credential == "" {
		return nil, fmt.Errorf("no session credential: %w", domain.ErrUnauthenticated)
	}

	key := credentialKey(credential)
	if sc, found := u.cache.Get(key); found {
		return sc, nil
	}

	result, err, _ := u.group.Do(key, func() (any, error) {
		return u.validate(ctx, credential)
	})
	if err != nil {
		return nil, err
	}

	// Deduplicated callers all receive the flight's result; hand each one
	// its own copy so a request mutating its context cannot touch another's.
	sc := *result.(*domain.SessionContext)
	u.cache.Set(key, sc)
	return &sc, nil
}

// Invalidate drops the cached context for a credential that has just been
// superseded by a sync.
func (u *ValidateSessionUsecase) Invalidate(credential string) {
	u.cache.Invalidate(credentialKey(credential))
}

func (u *ValidateSessionUsecase) validate(ctx context.Context, credential string) (*domain.SessionContext, error) {
	facts, err := u.sealer.Open(credential)
	if err != nil {
		u.logger.Warn("failed to open session credential", "error", err)
		return nil, fmt.Errorf("invalid session credential: %w", domain.ErrUnauthenticated)
	}

	if facts.IsExpired() {
		return nil, fmt.Errorf("session credential expired: %w", domain.ErrUnauthenticated)
	}

	sc := &domain.SessionContext{
		UserID:     facts.UserID,
		Email:      facts.Email,
		Name:       facts.Name,
		TenantID:   facts.TenantID,
		SchemaName: facts.SchemaName,
		Facts:      *facts,
	}

	// A credential without a tenant id means the sealed facts predate
	// tenant assignment. Try to fill the gap from the backend; a backend
	// outage here is not fatal, the resolver chain covers the gap later.
	if sc.TenantID == "" {
		record, err := u.backend.ReadStatus(ctx, "", sc.UserID)
		if err != nil {
			u.logger.Warn("could not refresh session facts from backend",
				"user_id", sc.UserID,
				"error", err)
			return sc, nil
		}
		u.applyRecord(sc, record)
	}

	return sc, nil
}

func (u *ValidateSessionUsecase) applyRecord(sc *domain.SessionContext, record *domain.OnboardingRecord) {
	if record.TenantID != "" {
		sc.TenantID = record.TenantID
		sc.Facts.TenantID = record.TenantID
	}
	if record.SchemaName != "" {
		sc.SchemaName = record.SchemaName
		sc.Facts.SchemaName = record.SchemaName
	}
	if record.User != nil && record.User.TenantID != "" && sc.TenantID == "" {
		sc.TenantID = record.User.TenantID
		sc.Facts.TenantID = record.User.TenantID
	}
	if record.Completed {
		sc.Facts.OnboardingCompleted = true
		sc.Facts.NeedsOnboarding = false
	}
	if record.Plan != "" && sc.Facts.SubscriptionPlan == "" {
		sc.Facts.SubscriptionPlan = record.Plan
	}

	u.logger.Info("session facts refreshed from backend",
		"user_id", sc.UserID,
		"tenant_id", sc.TenantID,
		"completed", sc.Facts.OnboardingCompleted)
}

// credentialKey derives a cache key without holding the raw credential in
// the cache.
func credentialKey(credential string) string {
	sum := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:16])
}
