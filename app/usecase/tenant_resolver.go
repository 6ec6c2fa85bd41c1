package usecase

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"onboarding-hub/app/domain"
)

// tenantSchemaPattern matches schema names of the form
// tenant_<uuid-with-underscores> with the full 8-4-4-4-12 hex grouping.
var tenantSchemaPattern = regexp.MustCompile(
	`(?i)^tenant_([0-9a-f]{8})_([0-9a-f]{4})_([0-9a-f]{4})_([0-9a-f]{4})_([0-9a-f]{12})$`)

// TenantResolver collapses the heterogeneous tenant id sources into one
// canonical value. Precedence, highest first: backend creation response,
// session facts, user sub-object, schema name, generated placeholder.
// It never returns "none" — absence of all sources triggers generation.
type TenantResolver struct {
	logger *slog.Logger
}

// NewTenantResolver creates a new TenantResolver.
func NewTenantResolver(logger *slog.Logger) *TenantResolver {
	return &TenantResolver{
		logger: logger.With("component", "tenant_resolver"),
	}
}

// Resolve returns the single canonical tenant id for the given candidates.
func (r *TenantResolver) Resolve(candidates domain.TenantCandidates) domain.ResolvedTenant {
	if id, ok := normalizeTenantID(candidates.CreationResponse); ok {
		return domain.ResolvedTenant{ID: id, Source: domain.TenantSourceCreation}
	}
	if id, ok := normalizeTenantID(candidates.Session); ok {
		return domain.ResolvedTenant{ID: id, Source: domain.TenantSourceSession}
	}
	if id, ok := normalizeTenantID(candidates.UserRecord); ok {
		return domain.ResolvedTenant{ID: id, Source: domain.TenantSourceUserRecord}
	}
	if id, ok := ParseSchemaName(candidates.SchemaName); ok {
		return domain.ResolvedTenant{ID: id, Source: domain.TenantSourceSchemaName}
	}

	// Last resort. This indicates an upstream data problem: the user made
	// it this far without any source knowing their tenant.
	generated := uuid.New().String()
	r.logger.Warn("tenant resolution failed, generated placeholder id",
		"generated_id", generated,
		"session_candidate", candidates.Session,
		"user_record_candidate", candidates.UserRecord,
		"schema_name_candidate", candidates.SchemaName)
	return domain.ResolvedTenant{ID: generated, Source: domain.TenantSourceGenerated}
}

// ParseSchemaName decodes tenant_<uuid-with-underscores> into a canonical
// tenant id. The strict 8-4-4-4-12 pattern is tried first; a looser prefix
// match is the fallback for irregular legacy schema names.
func ParseSchemaName(schema string) (string, bool) {
	if schema == "" {
		return "", false
	}

	if m := tenantSchemaPattern.FindStringSubmatch(schema); m != nil {
		return strings.ToLower(strings.Join(m[1:], "-")), true
	}

	// Loose fallback: strip the prefix, convert underscores back to
	// hyphens and accept whatever still parses as a UUID.
	trimmed := strings.TrimPrefix(strings.ToLower(schema), "tenant_")
	if trimmed == schema {
		return "", false
	}
	return normalizeTenantID(strings.ReplaceAll(trimmed, "_", "-"))
}

// normalizeTenantID accepts only UUID-shaped candidates and canonicalizes
// them to lowercase hyphenated form.
func normalizeTenantID(candidate string) (string, bool) {
	if candidate == "" {
		return "", false
	}
	parsed, err := uuid.Parse(candidate)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
