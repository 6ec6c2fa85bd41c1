package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"onboarding-hub/app/domain"
	"onboarding-hub/app/driver/backendapi"
	"onboarding-hub/app/port"
	"onboarding-hub/app/resilience"
)

// OnboardingGateway implements port.OnboardingBackend.
// It acts as an anti-corruption layer between the domain and the remote
// identity/authorization backend: every call goes through the resilience
// executor and every failure is classified into the domain error taxonomy.
type OnboardingGateway struct {
	client   port.BackendClient
	executor *resilience.Executor
	logger   *slog.Logger
}

// NewOnboardingGateway creates a new OnboardingGateway instance.
func NewOnboardingGateway(client port.BackendClient, executor *resilience.Executor, logger *slog.Logger) *OnboardingGateway {
	return &OnboardingGateway{
		client:   client,
		executor: executor,
		logger:   logger.With("component", "onboarding_gateway"),
	}
}

// RetryClassifier decides which backend failures are worth retrying:
// transport errors and 5xx/429 responses are transient, other API
// responses are permanent.
func RetryClassifier(err error) bool {
	var apiErr *backendapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return true
}

// SubmitBusinessInfo creates or updates the business profile.
func (g *OnboardingGateway) SubmitBusinessInfo(ctx context.Context, tenantID, userID string, profile domain.BusinessProfile) (*domain.BusinessInfoResult, error) {
	g.logger.Info("submitting business info",
		"tenant_id", tenantID,
		"business_name", profile.Name)

	var result *domain.BusinessInfoResult
	err := g.executor.Do(ctx, "business_info", func(ctx context.Context) error {
		var callErr error
		result, callErr = g.client.PostBusinessInfo(ctx, tenantID, userID, profile)
		return callErr
	})
	if err != nil {
		return nil, g.classify("business info submission", err)
	}

	g.logger.Info("business info submitted",
		"tenant_id", result.TenantID,
		"created", result.Created)
	return result, nil
}

// SaveSubscription stores the selected plan.
func (g *OnboardingGateway) SaveSubscription(ctx context.Context, tenantID, userID string, selection domain.SubscriptionSelection) error {
	g.logger.Info("saving subscription selection",
		"tenant_id", tenantID,
		"plan", selection.Plan,
		"billing_cycle", selection.BillingCycle)

	err := g.executor.Do(ctx, "subscription", func(ctx context.Context) error {
		return g.client.PostSubscription(ctx, tenantID, userID, selection)
	})
	if err != nil {
		return g.classify("subscription save", err)
	}
	return nil
}

// CompleteOnboarding asks the backend to mark onboarding finished with
// override flags so backend-side payment validation cannot block progress.
func (g *OnboardingGateway) CompleteOnboarding(ctx context.Context, tenantID, userID string, forceComplete, paymentVerified bool) error {
	g.logger.Info("marking onboarding complete",
		"tenant_id", tenantID,
		"force_complete", forceComplete,
		"payment_verified", paymentVerified)

	err := g.executor.Do(ctx, "complete", func(ctx context.Context) error {
		return g.client.PostComplete(ctx, tenantID, userID, forceComplete, paymentVerified)
	})
	if err != nil {
		return g.classify("completion marking", err)
	}
	return nil
}

// ForceComplete issues the idempotent repair call.
func (g *OnboardingGateway) ForceComplete(ctx context.Context, tenantID, userID string) error {
	g.logger.Info("forcing onboarding completion", "tenant_id", tenantID)

	err := g.executor.Do(ctx, "force_complete", func(ctx context.Context) error {
		return g.client.PostForceComplete(ctx, tenantID, userID)
	})
	if err != nil {
		return g.classify("forced completion", err)
	}
	return nil
}

// ReadStatus reads the backend's onboarding state for verification.
func (g *OnboardingGateway) ReadStatus(ctx context.Context, tenantID, userID string) (*domain.OnboardingRecord, error) {
	var record *domain.OnboardingRecord
	err := g.executor.Do(ctx, "status", func(ctx context.Context) error {
		var callErr error
		record, callErr = g.client.GetStatus(ctx, tenantID, userID)
		return callErr
	})
	if err != nil {
		return nil, g.classify("status read", err)
	}
	return record, nil
}

// classify maps a raw failure into the domain error taxonomy.
func (g *OnboardingGateway) classify(op string, err error) error {
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%s: %w: circuit open", op, domain.ErrDependencyUnavailable)
	}

	var apiErr *backendapi.APIError
	if errors.As(err, &apiErr) {
		if isSchemaNotProvisioned(apiErr.Body) {
			g.logger.Error("backend reports unprovisioned tenant schema",
				"operation", op,
				"status", apiErr.StatusCode,
				"body", apiErr.Body)
			return fmt.Errorf("%s: %w", op, domain.ErrSchemaNotProvisioned)
		}
		return fmt.Errorf("%s: %w: status %d", op, domain.ErrBackendRejected, apiErr.StatusCode)
	}

	return fmt.Errorf("%s: %w: %v", op, domain.ErrDependencyUnavailable, err)
}

// isSchemaNotProvisioned scans backend error text for provisioning-related
// markers. The backend has no structured code for this condition.
func isSchemaNotProvisioned(body string) bool {
	text := strings.ToLower(body)
	if strings.Contains(text, "not provisioned") {
		return true
	}
	if strings.Contains(text, "does not exist") &&
		(strings.Contains(text, "schema") || strings.Contains(text, "relation")) {
		return true
	}
	return false
}
