package domain

// TenantSource identifies which candidate produced the canonical tenant id.
type TenantSource string

const (
	// TenantSourceCreation is a tenant id returned by a backend
	// resource-creation call in the current request. Highest precedence:
	// once observed it wins over any earlier placeholder.
	TenantSourceCreation TenantSource = "creation_response"
	// TenantSourceSession is the tenant id embedded in the session facts.
	TenantSourceSession TenantSource = "session"
	// TenantSourceUserRecord is a tenant id nested under the user sub-object.
	TenantSourceUserRecord TenantSource = "user_record"
	// TenantSourceSchemaName is a tenant id decoded from a schema-name
	// string of the form tenant_<uuid-with-underscores>.
	TenantSourceSchemaName TenantSource = "schema_name"
	// TenantSourceGenerated is a last-resort freshly generated UUID.
	// Seeing this source means an upstream data problem.
	TenantSourceGenerated TenantSource = "generated"
)

// TenantCandidates is the ordered set of optional tenant id sources fed to
// the resolver. Fields are listed in precedence order, highest first.
type TenantCandidates struct {
	CreationResponse string
	Session          string
	UserRecord       string
	SchemaName       string
}

// ResolvedTenant is the resolver output: exactly one canonical id plus the
// source it came from, for diagnostics.
type ResolvedTenant struct {
	ID     string
	Source TenantSource
}
