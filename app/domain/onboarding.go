package domain

import (
	"time"
)

// OnboardingStatus mirrors the backend's per-user onboarding state machine.
type OnboardingStatus string

const (
	OnboardingNotStarted            OnboardingStatus = "not_started"
	OnboardingBusinessInfoSubmitted OnboardingStatus = "business_info_submitted"
	OnboardingSubscriptionSelected  OnboardingStatus = "subscription_selected"
	OnboardingCompleted             OnboardingStatus = "completed"
)

// Phase identifies one step of the completion protocol.
type Phase string

const (
	PhaseBusinessInfo  Phase = "business_info"
	PhaseSubscription  Phase = "subscription"
	PhaseComplete      Phase = "complete"
	PhaseForceComplete Phase = "force_complete"
	PhaseVerify        Phase = "verify"
)

// PhaseOrder is the strict execution order of the completion protocol.
// No phase may start before the previous one has returned.
var PhaseOrder = []Phase{
	PhaseBusinessInfo,
	PhaseSubscription,
	PhaseComplete,
	PhaseForceComplete,
	PhaseVerify,
}

// FreePlan is the plan that skips payment entirely.
const FreePlan = "free"

// BusinessProfile holds the business information submitted during phase 1.
type BusinessProfile struct {
	Name           string `json:"business_name"`
	Type           string `json:"business_type"`
	Country        string `json:"country,omitempty"`
	LegalStructure string `json:"legal_structure,omitempty"`
	DateFounded    string `json:"date_founded,omitempty"`
}

// SubscriptionSelection holds the plan choice submitted during phase 2.
type SubscriptionSelection struct {
	Plan         string `json:"selected_plan"`
	BillingCycle string `json:"billing_cycle,omitempty"`
}

// RequiresPayment returns true for plans that need a payment step.
func (s SubscriptionSelection) RequiresPayment() bool {
	return s.Plan != "" && s.Plan != FreePlan
}

// CompletionRequest carries everything needed to drive the completion
// protocol for one user.
type CompletionRequest struct {
	Profile      BusinessProfile
	Subscription SubscriptionSelection
}

// BackendUser is the user sub-object returned by backend resource calls.
// Its tenant fields are resolver candidates, nothing more.
type BackendUser struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	TenantID   string `json:"tenant_id,omitempty"`
	SchemaName string `json:"schema_name,omitempty"`
}

// BusinessInfoResult is the backend response to a business profile
// submission. A resource creation may yield the authoritative tenant id
// for the first time, so all candidate fields are kept.
type BusinessInfoResult struct {
	TenantID   string       `json:"tenant_id,omitempty"`
	SchemaName string       `json:"schema_name,omitempty"`
	User       *BackendUser `json:"user,omitempty"`
	Created    bool         `json:"created"`
}

// OnboardingRecord is the read model of the backend's onboarding state,
// fetched during validation and the verification phase.
type OnboardingRecord struct {
	TenantID       string           `json:"tenant_id,omitempty"`
	SchemaName     string           `json:"schema_name,omitempty"`
	Status         OnboardingStatus `json:"status"`
	Completed      bool             `json:"completed"`
	PaymentPending bool             `json:"payment_pending"`
	Plan           string           `json:"plan,omitempty"`
	User           *BackendUser     `json:"user,omitempty"`
	UpdatedAt      time.Time        `json:"updated_at,omitempty"`
}

// PhaseFailure records a non-fatal phase error for diagnostics.
type PhaseFailure struct {
	Phase   Phase  `json:"phase"`
	Message string `json:"message"`
}

// CompletionResult is the orchestrator's outcome. By construction it only
// exists when BusinessInfo succeeded; later phase failures are carried as
// diagnostics, never as absence of a result.
type CompletionResult struct {
	TenantID       string         `json:"tenant_id"`
	TenantSource   TenantSource   `json:"tenant_source"`
	Plan           string         `json:"plan"`
	PaymentPending bool           `json:"payment_pending"`
	RedirectPath   string         `json:"redirect_path"`
	NextSteps      []string       `json:"next_steps"`
	PhaseFailures  []PhaseFailure `json:"phase_failures,omitempty"`
	VerifyMismatch bool           `json:"verify_mismatch,omitempty"`
	CompletedAt    time.Time      `json:"completed_at"`
}

// RecordFailure appends a non-fatal phase failure.
func (r *CompletionResult) RecordFailure(phase Phase, err error) {
	r.PhaseFailures = append(r.PhaseFailures, PhaseFailure{
		Phase:   phase,
		Message: err.Error(),
	})
}
