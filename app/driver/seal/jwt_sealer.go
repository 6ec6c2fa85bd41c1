package seal

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"onboarding-hub/app/domain"
)

// sessionClaims carries the session facts inside the sealed credential.
type sessionClaims struct {
	Email               string                `json:"email"`
	Name                string                `json:"name,omitempty"`
	TenantID            string                `json:"tenant_id,omitempty"`
	NeedsOnboarding     bool                  `json:"needs_onboarding"`
	OnboardingCompleted bool                  `json:"onboarding_completed"`
	CurrentStep         domain.OnboardingStep `json:"current_step,omitempty"`
	SubscriptionPlan    string                `json:"subscription_plan,omitempty"`
	SchemaName          string                `json:"schema_name,omitempty"`
	jwt.RegisteredClaims
}

// JWTSealer implements port.SessionSealer with HS256-signed tokens. The
// rest of the system treats the output as an opaque sealed blob.
type JWTSealer struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
}

// NewJWTSealer creates a sealer. secret must be at least 32 bytes.
func NewJWTSealer(secret, issuer string, lifetime time.Duration) (*JWTSealer, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("seal secret must be at least 32 bytes, got %d", len(secret))
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("seal lifetime must be positive")
	}
	return &JWTSealer{
		secret:   []byte(secret),
		issuer:   issuer,
		lifetime: lifetime,
	}, nil
}

// Seal produces a new sealed credential from the facts. The previous value
// is never mutated; the caller replaces it atomically at the transport
// boundary.
func (s *JWTSealer) Seal(facts *domain.SessionFacts) (string, error) {
	if facts.UserID == "" {
		return "", fmt.Errorf("cannot seal facts without a user id")
	}

	now := time.Now()
	expires := facts.ExpiresAt
	if expires.IsZero() || !expires.After(now) {
		expires = now.Add(s.lifetime)
	}

	claims := sessionClaims{
		Email:               facts.Email,
		Name:                facts.Name,
		TenantID:            facts.TenantID,
		NeedsOnboarding:     facts.NeedsOnboarding,
		OnboardingCompleted: facts.OnboardingCompleted,
		CurrentStep:         facts.CurrentStep,
		SubscriptionPlan:    facts.SubscriptionPlan,
		SchemaName:          facts.SchemaName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   facts.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Open verifies a sealed credential and returns the facts inside it.
func (s *JWTSealer) Open(credential string) (*domain.SessionFacts, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(credential, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to open credential: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("credential is not valid")
	}

	facts := &domain.SessionFacts{
		UserID:              claims.Subject,
		Email:               claims.Email,
		Name:                claims.Name,
		TenantID:            claims.TenantID,
		NeedsOnboarding:     claims.NeedsOnboarding,
		OnboardingCompleted: claims.OnboardingCompleted,
		CurrentStep:         claims.CurrentStep,
		SubscriptionPlan:    claims.SubscriptionPlan,
		SchemaName:          claims.SchemaName,
	}
	if claims.IssuedAt != nil {
		facts.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		facts.ExpiresAt = claims.ExpiresAt.Time
	}
	return facts, nil
}
