package domain

import "fmt"

// Tier is a dashboard permission level. Higher tiers include lower ones.
type Tier int

const (
	TierNone  Tier = 0
	TierView  Tier = 1
	TierEdit  Tier = 2
	TierAdmin Tier = 3
)

func (t Tier) String() string {
	switch t {
	case TierView:
		return "view"
	case TierEdit:
		return "edit"
	case TierAdmin:
		return "admin"
	}
	return "none"
}

func (t Tier) IsValid() bool {
	return t >= TierView && t <= TierAdmin
}

// ParseTier converts "view", "edit" or "admin" into a Tier.
func ParseTier(s string) (Tier, bool) {
	switch s {
	case "view":
		return TierView, true
	case "edit":
		return TierEdit, true
	case "admin":
		return TierAdmin, true
	}
	return TierNone, false
}

func (t Tier) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid tier %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	parsed, ok := ParseTier(string(b))
	if !ok {
		return fmt.Errorf("invalid tier %q", string(b))
	}
	*t = parsed
	return nil
}

// ChartKind is the visual representation requested for a query.
type ChartKind string

const (
	ChartKindBar     ChartKind = "bar"
	ChartKindLine    ChartKind = "line"
	ChartKindArea    ChartKind = "area"
	ChartKindPie     ChartKind = "pie"
	ChartKindDonut   ChartKind = "donut"
	ChartKindRadar   ChartKind = "radar"
	ChartKindHeatmap ChartKind = "heatmap"
	ChartKindScatter ChartKind = "scatter"
	ChartKindMixed   ChartKind = "mixed"
)

func (k ChartKind) String() string { return string(k) }

func (k ChartKind) IsValid() bool {
	switch k {
	case ChartKindBar, ChartKindLine, ChartKindArea, ChartKindPie, ChartKindDonut,
		ChartKindRadar, ChartKindHeatmap, ChartKindScatter, ChartKindMixed:
		return true
	}
	return false
}

// ChartKinds lists every accepted chart kind in display order.
func ChartKinds() []ChartKind {
	return []ChartKind{
		ChartKindBar, ChartKindLine, ChartKindArea, ChartKindPie, ChartKindDonut,
		ChartKindRadar, ChartKindHeatmap, ChartKindScatter, ChartKindMixed,
	}
}

// QueryType describes how a query definition was authored.
type QueryType string

const (
	QueryTypeNative  QueryType = "native"
	QueryTypeBuilder QueryType = "builder"
	QueryTypeAI      QueryType = "ai"
)

func (t QueryType) String() string { return string(t) }

func (t QueryType) IsValid() bool {
	switch t {
	case QueryTypeNative, QueryTypeBuilder, QueryTypeAI:
		return true
	}
	return false
}

// DataSourceKind is the family of an external data source.
type DataSourceKind string

const (
	DataSourceKindSQL   DataSourceKind = "sql"
	DataSourceKindNoSQL DataSourceKind = "nosql"
	DataSourceKindAPI   DataSourceKind = "api"
)

func (k DataSourceKind) String() string { return string(k) }

func (k DataSourceKind) IsValid() bool {
	switch k {
	case DataSourceKindSQL, DataSourceKindNoSQL, DataSourceKindAPI:
		return true
	}
	return false
}

// AuditAction is the kind of privileged mutation recorded in the audit log.
type AuditAction string

const (
	AuditUserDeleted      AuditAction = "USER_DELETED"
	AuditUserDeactivated  AuditAction = "USER_DEACTIVATED"
	AuditUserActivated    AuditAction = "USER_ACTIVATED"
	AuditUserRoleAssigned AuditAction = "USER_ROLE_ASSIGNED"
	AuditRoleCreated      AuditAction = "ROLE_CREATED"
	AuditRoleModified     AuditAction = "ROLE_MODIFIED"
	AuditRoleDeleted      AuditAction = "ROLE_DELETED"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditUserDeleted, AuditUserDeactivated, AuditUserActivated, AuditUserRoleAssigned,
		AuditRoleCreated, AuditRoleModified, AuditRoleDeleted:
		return true
	}
	return false
}
