package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionFacts_IsExpired(t *testing.T) {
	tests := map[string]struct {
		expiresAt time.Time
		expect    bool
	}{
		"zero expiry never expires":  {time.Time{}, false},
		"future expiry is valid":     {time.Now().Add(time.Hour), false},
		"past expiry is expired":     {time.Now().Add(-time.Minute), true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := SessionFacts{ExpiresAt: tc.expiresAt}
			assert.Equal(t, tc.expect, f.IsExpired())
		})
	}
}

func TestSessionFacts_MarkCompleted(t *testing.T) {
	f := SessionFacts{
		UserID:          "user-1",
		NeedsOnboarding: true,
		CurrentStep:     StepBusinessInfo,
	}

	f.MarkCompleted("tenant-1", "professional")

	assert.Equal(t, "tenant-1", f.TenantID)
	assert.True(t, f.OnboardingCompleted)
	assert.False(t, f.NeedsOnboarding)
	assert.Equal(t, StepComplete, f.CurrentStep)
	assert.Equal(t, "professional", f.SubscriptionPlan)
}

func TestSessionFacts_MarkCompletedKeepsExistingPlan(t *testing.T) {
	f := SessionFacts{UserID: "user-1", SubscriptionPlan: "enterprise"}

	f.MarkCompleted("tenant-1", "")

	assert.Equal(t, "enterprise", f.SubscriptionPlan)
}

func TestSessionFacts_MergePreservesUnrelatedFields(t *testing.T) {
	prev := SessionFacts{
		UserID:           "user-1",
		Email:            "owner@example.com",
		Name:             "Owner",
		TenantID:         "tenant-1",
		SubscriptionPlan: "free",
		SchemaName:       "tenant_abc",
		NeedsOnboarding:  true,
	}

	merged := prev.Merge(SessionFacts{CurrentStep: StepSubscription})

	// Only the step changed; everything else survives.
	assert.Equal(t, "user-1", merged.UserID)
	assert.Equal(t, "owner@example.com", merged.Email)
	assert.Equal(t, "Owner", merged.Name)
	assert.Equal(t, "tenant-1", merged.TenantID)
	assert.Equal(t, "free", merged.SubscriptionPlan)
	assert.Equal(t, "tenant_abc", merged.SchemaName)
	assert.Equal(t, StepSubscription, merged.CurrentStep)

	// The receiver itself is untouched: Merge returns a copy.
	assert.Equal(t, OnboardingStep(""), prev.CurrentStep)
}

func TestSessionFacts_MergeOverlaysNonZeroFields(t *testing.T) {
	prev := SessionFacts{UserID: "user-1", TenantID: "old-tenant"}

	merged := prev.Merge(SessionFacts{
		TenantID:            "new-tenant",
		OnboardingCompleted: true,
		SubscriptionPlan:    "professional",
	})

	assert.Equal(t, "new-tenant", merged.TenantID)
	assert.True(t, merged.OnboardingCompleted)
	assert.False(t, merged.NeedsOnboarding)
	assert.Equal(t, "professional", merged.SubscriptionPlan)
}

func TestSessionFacts_MergeCompletionIsOneWay(t *testing.T) {
	completed := SessionFacts{UserID: "user-1", OnboardingCompleted: true}

	merged := completed.Merge(SessionFacts{NeedsOnboarding: true})

	assert.True(t, merged.OnboardingCompleted)
	assert.False(t, merged.NeedsOnboarding)
}

func TestSessionFacts_MergeNeedsOnboardingFollowsUpdateWhenIncomplete(t *testing.T) {
	prev := SessionFacts{UserID: "user-1", NeedsOnboarding: true}

	merged := prev.Merge(SessionFacts{})

	// An incomplete session with an empty update drops the flag only if the
	// update says so; zero-value updates reset it.
	assert.False(t, merged.NeedsOnboarding)

	merged = prev.Merge(SessionFacts{NeedsOnboarding: true})
	assert.True(t, merged.NeedsOnboarding)
}
