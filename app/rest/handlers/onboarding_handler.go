package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"onboarding-hub/app/domain"
	"onboarding-hub/app/port"
	"onboarding-hub/app/utils/validator"
)

// CompleteAllRequest is the inbound completion payload. The three required
// fields mirror what the onboarding form must have collected.
type CompleteAllRequest struct {
	BusinessName   string `json:"businessName" validate:"required,min=1,max=200"`
	BusinessType   string `json:"businessType" validate:"required,min=1,max=100"`
	SelectedPlan   string `json:"selectedPlan" validate:"required,plan"`
	Country        string `json:"country,omitempty" validate:"omitempty,max=100"`
	LegalStructure string `json:"legalStructure,omitempty" validate:"omitempty,max=100"`
	DateFounded    string `json:"dateFounded,omitempty" validate:"omitempty,founding_date"`
	BillingCycle   string `json:"billingCycle,omitempty" validate:"omitempty,billing_cycle"`
}

// UserSummary is the user block of a successful completion response.
type UserSummary struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	TenantID string `json:"tenant_id"`
}

// CompleteAllResponse is the success envelope.
type CompleteAllResponse struct {
	Success        bool                  `json:"success"`
	TenantID       string                `json:"tenant_id"`
	Redirect       string                `json:"redirect"`
	User           UserSummary           `json:"user"`
	NextSteps      []string              `json:"next_steps"`
	PaymentPending bool                  `json:"payment_pending"`
	PhaseFailures  []domain.PhaseFailure `json:"phase_failures,omitempty"`
}

// StatusResponse reports the session's current onboarding state.
type StatusResponse struct {
	Authenticated       bool                  `json:"authenticated"`
	User                UserSummary           `json:"user"`
	NeedsOnboarding     bool                  `json:"needs_onboarding"`
	OnboardingCompleted bool                  `json:"onboarding_completed"`
	CurrentStep         domain.OnboardingStep `json:"current_step,omitempty"`
	SubscriptionPlan    string                `json:"subscription_plan,omitempty"`
}

// OnboardingHandler handles onboarding completion HTTP requests.
type OnboardingHandler struct {
	sessionValidator port.SessionValidator
	orchestrator     port.CompletionOrchestrator
	synchronizer     port.SessionSynchronizer
	validate         *validator.Validator
	cookies          CookieConfig
	logger           *slog.Logger
}

// NewOnboardingHandler creates a new onboarding handler.
func NewOnboardingHandler(
	sessionValidator port.SessionValidator,
	orchestrator port.CompletionOrchestrator,
	synchronizer port.SessionSynchronizer,
	cookies CookieConfig,
	logger *slog.Logger,
) *OnboardingHandler {
	return &OnboardingHandler{
		sessionValidator: sessionValidator,
		orchestrator:     orchestrator,
		synchronizer:     synchronizer,
		validate:         validator.New(),
		cookies:          cookies,
		logger:           logger.With("component", "onboarding_handler"),
	}
}

// CompleteAll drives the full onboarding completion protocol.
// @Summary Complete onboarding in one call
// @Tags onboarding
// @Accept json
// @Produce json
// @Success 200 {object} CompleteAllResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/onboarding/complete-all [post]
func (h *OnboardingHandler) CompleteAll(c echo.Context) error {
	ctx := c.Request().Context()

	credential := h.extractCredential(c)
	sc, err := h.sessionValidator.Validate(ctx, credential)
	if err != nil {
		h.logger.Warn("completion rejected, unauthenticated",
			"ip", c.RealIP(),
			"error", err)
		return writeError(c, err)
	}

	var req CompleteAllRequest
	if err := c.Bind(&req); err != nil {
		return writeInvalidInput(c, "request body must be valid JSON", nil)
	}
	if err := h.validate.Validate(&req); err != nil {
		var missing []string
		if verr, ok := err.(*validator.ValidationError); ok {
			missing = verr.MissingFields()
		}
		h.logger.Warn("completion rejected, invalid input",
			"user_id", sc.UserID,
			"missing_fields", missing,
			"error", err)
		return writeInvalidInput(c, err.Error(), missing)
	}

	result, err := h.orchestrator.CompleteAll(ctx, sc, domain.CompletionRequest{
		Profile: domain.BusinessProfile{
			Name:           req.BusinessName,
			Type:           req.BusinessType,
			Country:        req.Country,
			LegalStructure: req.LegalStructure,
			DateFounded:    req.DateFounded,
		},
		Subscription: domain.SubscriptionSelection{
			Plan:         req.SelectedPlan,
			BillingCycle: req.BillingCycle,
		},
	})
	if err != nil {
		// Fatal BusinessInfo failure: no session mutation is committed.
		return writeError(c, err)
	}

	// The orchestrator committed the completed facts; seal and emit the
	// whole credential set atomically.
	bundle, err := h.synchronizer.Sync(sc.Facts, domain.SessionFacts{})
	if err != nil {
		h.logger.Error("failed to sync session after completion",
			"user_id", sc.UserID,
			"tenant_id", result.TenantID,
			"error", err)
		return writeError(c, err)
	}

	h.sessionValidator.Invalidate(credential)
	applyBundle(c, h.cookies, bundle)

	return c.JSON(http.StatusOK, CompleteAllResponse{
		Success:  true,
		TenantID: result.TenantID,
		Redirect: result.RedirectPath,
		User: UserSummary{
			UserID:   sc.UserID,
			Email:    sc.Email,
			Name:     sc.Name,
			TenantID: result.TenantID,
		},
		NextSteps:      result.NextSteps,
		PaymentPending: result.PaymentPending,
		PhaseFailures:  result.PhaseFailures,
	})
}

// Status returns the current onboarding state for a validated session.
// @Summary Current onboarding state
// @Tags onboarding
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/onboarding/status [get]
func (h *OnboardingHandler) Status(c echo.Context) error {
	ctx := c.Request().Context()

	sc, err := h.sessionValidator.Validate(ctx, h.extractCredential(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Authenticated: true,
		User: UserSummary{
			UserID:   sc.UserID,
			Email:    sc.Email,
			Name:     sc.Name,
			TenantID: sc.TenantID,
		},
		NeedsOnboarding:     sc.Facts.NeedsOnboarding,
		OnboardingCompleted: sc.Facts.OnboardingCompleted,
		CurrentStep:         sc.Facts.CurrentStep,
		SubscriptionPlan:    sc.Facts.SubscriptionPlan,
	})
}

// extractCredential reads the sealed credential from the session cookie,
// falling back to a bearer token for non-browser clients.
func (h *OnboardingHandler) extractCredential(c echo.Context) string {
	if cookie, err := c.Cookie(h.cookies.SessionName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
