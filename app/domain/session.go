package domain

import (
	"time"
)

// OnboardingStep identifies the client-visible step of the onboarding flow.
type OnboardingStep string

const (
	StepBusinessInfo OnboardingStep = "business_info"
	StepSubscription OnboardingStep = "subscription"
	StepPayment      OnboardingStep = "payment"
	StepComplete     OnboardingStep = "complete"
)

// SessionFacts is the canonical content of the sealed session credential.
// The credential itself is an opaque sealed blob owned by the session
// synchronizer; everything else in the system works with these facts.
type SessionFacts struct {
	UserID              string         `json:"user_id"`
	Email               string         `json:"email"`
	Name                string         `json:"name,omitempty"`
	TenantID            string         `json:"tenant_id,omitempty"`
	NeedsOnboarding     bool           `json:"needs_onboarding"`
	OnboardingCompleted bool           `json:"onboarding_completed"`
	CurrentStep         OnboardingStep `json:"current_step,omitempty"`
	SubscriptionPlan    string         `json:"subscription_plan,omitempty"`
	SchemaName          string         `json:"schema_name,omitempty"`
	IssuedAt            time.Time      `json:"issued_at"`
	ExpiresAt           time.Time      `json:"expires_at"`
}

// IsExpired returns true if the facts have passed their expiry.
func (f *SessionFacts) IsExpired() bool {
	return !f.ExpiresAt.IsZero() && time.Now().After(f.ExpiresAt)
}

// MarkCompleted flips the onboarding flags to their terminal values.
// The client-visible state is authoritative once completion has been
// committed, regardless of backend replication lag.
func (f *SessionFacts) MarkCompleted(tenantID, plan string) {
	f.TenantID = tenantID
	f.NeedsOnboarding = false
	f.OnboardingCompleted = true
	f.CurrentStep = StepComplete
	if plan != "" {
		f.SubscriptionPlan = plan
	}
}

// Merge overlays non-zero fields of updates onto a copy of f.
// Unrelated prior fields are never dropped; a new credential is always a
// superset of the old one plus the changes.
func (f SessionFacts) Merge(updates SessionFacts) SessionFacts {
	merged := f

	if updates.UserID != "" {
		merged.UserID = updates.UserID
	}
	if updates.Email != "" {
		merged.Email = updates.Email
	}
	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.TenantID != "" {
		merged.TenantID = updates.TenantID
	}
	if updates.CurrentStep != "" {
		merged.CurrentStep = updates.CurrentStep
	}
	if updates.SubscriptionPlan != "" {
		merged.SubscriptionPlan = updates.SubscriptionPlan
	}
	if updates.SchemaName != "" {
		merged.SchemaName = updates.SchemaName
	}
	if !updates.IssuedAt.IsZero() {
		merged.IssuedAt = updates.IssuedAt
	}
	if !updates.ExpiresAt.IsZero() {
		merged.ExpiresAt = updates.ExpiresAt
	}

	// Completion is one-way: a merged credential never regresses from
	// completed back to pending.
	if f.OnboardingCompleted || updates.OnboardingCompleted {
		merged.OnboardingCompleted = true
		merged.NeedsOnboarding = false
	} else {
		merged.NeedsOnboarding = updates.NeedsOnboarding
	}

	return merged
}

// SessionContext represents a validated session attached to a request.
type SessionContext struct {
	UserID     string       `json:"user_id"`
	Email      string       `json:"email"`
	Name       string       `json:"name,omitempty"`
	TenantID   string       `json:"tenant_id,omitempty"`
	SchemaName string       `json:"schema_name,omitempty"`
	Facts      SessionFacts `json:"-"`
}

// CredentialBundle is the atomic output of a session sync: the sealed
// credential, the short-lived plaintext completion marker, and the set of
// superseded credential names to delete. All channels are emitted together
// or not at all.
type CredentialBundle struct {
	SessionToken    string
	SessionExpires  time.Time
	Marker          string
	MarkerExpires   time.Time
	SupersededNames []string
}
