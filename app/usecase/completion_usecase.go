package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"onboarding-hub/app/domain"
	"onboarding-hub/app/port"
)

// DashboardPath is where a completed user is redirected.
const DashboardPath = "/dashboard"

// CompletionUsecase sequences the onboarding completion protocol:
// BusinessInfo → Subscription → Complete → ForceComplete → Verify,
// strictly in order, each phase going through the resilience-wrapped
// gateway.
//
// The failure policy is deliberately asymmetric: BusinessInfo is the only
// fatal phase. Every later phase is best-effort, because the product
// guarantee is that a user who has supplied business information is never
// sent back into the onboarding form. Backend inconsistencies are repaired
// by the force-complete call or administratively — never by rolling the
// user back.
type CompletionUsecase struct {
	backend  port.OnboardingBackend
	resolver port.TenantResolver
	logger   *slog.Logger
}

// NewCompletionUsecase creates a new CompletionUsecase.
func NewCompletionUsecase(
	backend port.OnboardingBackend,
	resolver port.TenantResolver,
	logger *slog.Logger,
) *CompletionUsecase {
	return &CompletionUsecase{
		backend:  backend,
		resolver: resolver,
		logger:   logger.With("component", "completion_usecase"),
	}
}

// CompleteAll drives the full phase sequence for a validated session.
// On success the session facts inside sc are already marked completed;
// the caller hands them to the session synchronizer. On a fatal
// BusinessInfo failure no session state is mutated and no result exists.
func (u *CompletionUsecase) CompleteAll(ctx context.Context, sc *domain.SessionContext, req domain.CompletionRequest) (*domain.CompletionResult, error) {
	flowID := fmt.Sprintf("COMPLETE-%d", time.Now().UnixNano())
	logger := u.logger.With("flow_id", flowID, "user_id", sc.UserID)

	logger.Info("🔄 starting onboarding completion",
		"business_name", req.Profile.Name,
		"plan", req.Subscription.Plan)

	// 現時点で最良のテナントIDを解決
	resolved := u.resolver.Resolve(domain.TenantCandidates{
		Session:    sc.TenantID,
		SchemaName: sc.SchemaName,
	})
	logger.Info("initial tenant resolution",
		"tenant_id", resolved.ID,
		"source", resolved.Source)

	// Phase 1: BusinessInfo. The only phase allowed to abort the flow.
	info, err := u.backend.SubmitBusinessInfo(ctx, resolved.ID, sc.UserID, req.Profile)
	if err != nil {
		logger.Error("business info phase failed, aborting completion",
			"phase", domain.PhaseBusinessInfo,
			"tenant_id", resolved.ID,
			"error", err)
		return nil, domain.NewPhaseError(domain.PhaseBusinessInfo, resolved.ID, err)
	}

	// A resource creation may have yielded the authoritative tenant id for
	// the first time; it takes precedence over any earlier placeholder.
	resolved = u.resolveAfterCreation(sc, info)
	logger.Info("tenant resolution after business info",
		"tenant_id", resolved.ID,
		"source", resolved.Source)

	result := &domain.CompletionResult{
		TenantID:       resolved.ID,
		TenantSource:   resolved.Source,
		Plan:           req.Subscription.Plan,
		PaymentPending: req.Subscription.RequiresPayment(),
		RedirectPath:   DashboardPath,
		CompletedAt:    time.Now(),
	}

	// The client-visible state is committed here, before the remaining
	// phases run. Later failures must not take it back.
	sc.Facts.MarkCompleted(resolved.ID, req.Subscription.Plan)
	sc.TenantID = resolved.ID

	// Phase 2: Subscription. Non-fatal, plan selection can be corrected
	// later without blocking dashboard access.
	if err := u.backend.SaveSubscription(ctx, resolved.ID, sc.UserID, req.Subscription); err != nil {
		logger.Warn("subscription phase failed, continuing",
			"phase", domain.PhaseSubscription,
			"tenant_id", resolved.ID,
			"error", err)
		result.RecordFailure(domain.PhaseSubscription, err)
	}

	// Phase 3: Complete with override flags so backend payment validation
	// cannot block a flow that already collected everything client-side.
	if err := u.backend.CompleteOnboarding(ctx, resolved.ID, sc.UserID, true, true); err != nil {
		logger.Warn("complete phase failed, continuing",
			"phase", domain.PhaseComplete,
			"tenant_id", resolved.ID,
			"error", err)
		result.RecordFailure(domain.PhaseComplete, err)
	}

	// Phase 4: ForceComplete. Always attempted, it exists to overwrite any
	// inconsistent state a partial Complete failure left behind.
	if err := u.backend.ForceComplete(ctx, resolved.ID, sc.UserID); err != nil {
		logger.Warn("force complete phase failed, continuing",
			"phase", domain.PhaseForceComplete,
			"tenant_id", resolved.ID,
			"error", err)
		result.RecordFailure(domain.PhaseForceComplete, err)
	}

	// Phase 5: Verify. Diagnostic only — a mismatch never retries or rolls
	// back; the user-facing session has already advanced and flip-flopping
	// would be worse than an eventually consistent backend.
	u.verify(ctx, logger, resolved.ID, sc.UserID, result)

	result.NextSteps = nextSteps(result)

	logger.Info("✅ onboarding completion finished",
		"tenant_id", result.TenantID,
		"tenant_source", result.TenantSource,
		"payment_pending", result.PaymentPending,
		"phase_failures", len(result.PhaseFailures),
		"verify_mismatch", result.VerifyMismatch)

	return result, nil
}

// resolveAfterCreation re-runs the resolver with the creation response
// candidates included.
func (u *CompletionUsecase) resolveAfterCreation(sc *domain.SessionContext, info *domain.BusinessInfoResult) domain.ResolvedTenant {
	candidates := domain.TenantCandidates{
		CreationResponse: info.TenantID,
		Session:          sc.TenantID,
		SchemaName:       info.SchemaName,
	}
	if candidates.SchemaName == "" {
		candidates.SchemaName = sc.SchemaName
	}
	if info.User != nil {
		candidates.UserRecord = info.User.TenantID
		if candidates.SchemaName == "" {
			candidates.SchemaName = info.User.SchemaName
		}
	}
	return u.resolver.Resolve(candidates)
}

func (u *CompletionUsecase) verify(ctx context.Context, logger *slog.Logger, tenantID, userID string, result *domain.CompletionResult) {
	record, err := u.backend.ReadStatus(ctx, tenantID, userID)
	if err != nil {
		logger.Warn("verification read failed, continuing",
			"phase", domain.PhaseVerify,
			"tenant_id", tenantID,
			"error", err)
		result.RecordFailure(domain.PhaseVerify, err)
		return
	}

	if record.TenantID != "" && record.TenantID != tenantID {
		logger.Warn("verification tenant mismatch, diagnostic only",
			"phase", domain.PhaseVerify,
			"expected_tenant_id", tenantID,
			"backend_tenant_id", record.TenantID)
		result.VerifyMismatch = true
	}
	if !record.Completed {
		logger.Warn("backend still reports onboarding incomplete after force complete",
			"phase", domain.PhaseVerify,
			"tenant_id", tenantID,
			"backend_status", record.Status)
	}
}

func nextSteps(result *domain.CompletionResult) []string {
	steps := []string{"explore_dashboard"}
	if result.PaymentPending {
		steps = append([]string{"confirm_payment"}, steps...)
	}
	return steps
}
