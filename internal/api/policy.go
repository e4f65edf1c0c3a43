package api

import "github.com/accessgate/rbac-system/internal/core/domain"

// RoutePolicies is the static policy table: each protected route bound
// to the explicit set of roles allowed to call it. Admin appears only
// where enumerated; there is no implied inclusion. The table is built
// once at startup and read-only afterwards.
var RoutePolicies = map[string]domain.AllowList{
	"/dashboard":   {domain.RoleUser, domain.RoleModerator, domain.RoleAdmin},
	"/admin-panel": {domain.RoleAdmin},
	"/mod-panel":   {domain.RoleAdmin, domain.RoleModerator},
	"/user-panel":  {domain.RoleAdmin, domain.RoleModerator, domain.RoleUser},
}
