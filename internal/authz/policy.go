package authz

import "github.com/uvcaspaces/booking-portal/internal/models"

// Rule says who may perform an action on a resource.
type Rule int

const (
	// Public needs no identity at all.
	Public Rule = iota
	// Authenticated needs any valid identity.
	Authenticated
	// AdminOnly needs the admin role.
	AdminOnly
	// OwnerOrAdmin needs the admin role or ownership of the target resource.
	OwnerOrAdmin
)

type key struct {
	Resource string
	Action   string
}

// policy is the single source of truth for role and ownership checks.
// Handlers consult it instead of re-implementing the conditions inline.
var policy = map[key]Rule{
	{"service", "list"}:   Public,
	{"service", "get"}:    Public,
	{"service", "create"}: AdminOnly,
	{"service", "update"}: AdminOnly,
	{"service", "delete"}: AdminOnly,

	{"booking", "create"}:    Authenticated,
	{"booking", "list_mine"}: Authenticated,
	{"booking", "list_all"}:  AdminOnly,
	{"booking", "get"}:       OwnerOrAdmin,
	{"booking", "update"}:    OwnerOrAdmin,
	{"booking", "delete"}:    OwnerOrAdmin,

	{"contact", "submit"}:        Public,
	{"contact", "list"}:          AdminOnly,
	{"contact", "update_status"}: AdminOnly,

	{"user", "list"}:          AdminOnly,
	{"user", "promote_admin"}: AdminOnly,
	{"profile", "update"}:     Authenticated,

	{"audit_log", "list"}: AdminOnly,
}

// RuleFor returns the policy entry for a resource/action pair. Unknown
// pairs fail closed as AdminOnly.
func RuleFor(resource, action string) Rule {
	if r, ok := policy[key{resource, action}]; ok {
		return r
	}
	return AdminOnly
}

// Allowed evaluates a rule for a role. owner reports whether the caller
// owns the target resource; it is ignored unless the rule requires it.
func Allowed(rule Rule, role string, owner bool) bool {
	switch rule {
	case Public:
		return true
	case Authenticated:
		return role != ""
	case AdminOnly:
		return role == models.RoleAdmin
	case OwnerOrAdmin:
		return role == models.RoleAdmin || (role != "" && owner)
	}
	return false
}

// Can is the one-call form used by handlers.
func Can(role, resource, action string, owner bool) bool {
	return Allowed(RuleFor(resource, action), role, owner)
}
