package guard

import (
	"github.com/petcarex/console/internal/domain"
)

// Console routes the guard maps roles onto.
const (
	RouteEntry     = "/"
	RouteDashboard = "/dashboard"
	RouteStaff     = "/staff"
	RoutePortal    = "/portal"
)

// landing is the single role-to-destination table used after login and when
// an authenticated user visits the entry point. Per-page role chains must
// consume this table instead of re-deriving the mapping.
var landing = map[domain.Role]string{
	domain.RoleCustomer:      RoutePortal,
	domain.RoleBranchManager: RouteDashboard,
	domain.RoleStaff:         RouteStaff,
	domain.RoleSalesStaff:    RouteStaff,
	domain.RoleVetStaff:      RouteStaff,
	domain.RoleReceptionist:  RouteStaff,
}

// LandingRoute returns the default destination for the session's role.
// Unauthenticated sessions and unknown roles land on the entry point; the
// caller must only redirect when the destination differs from the current
// route, so the entry page never redirects to itself.
func LandingRoute(state domain.SessionState) string {
	if !state.Authenticated() {
		return RouteEntry
	}
	if route, ok := landing[state.Claims.Role]; ok {
		return route
	}
	return RouteEntry
}

// desks is the second-level mapping from staff sub-role to its work surface
// inside the staff console.
var desks = map[domain.Role]domain.Desk{
	domain.RoleSalesStaff:    domain.DeskSales,
	domain.RoleReceptionist:  domain.DeskReception,
	domain.RoleVetStaff:      domain.DeskClinical,
	domain.RoleStaff:         domain.DeskSales,
	domain.RoleBranchManager: domain.DeskSales,
}

// DeskFor returns the staff console desk a role lands on. Generic staff and
// branch managers default to the sales desk.
func DeskFor(role domain.Role) (domain.Desk, bool) {
	desk, ok := desks[role]
	return desk, ok
}

// VisibleDesks returns the desks a role may open. Specialized staff see
// only their own desk; generic staff and branch managers see all three.
func VisibleDesks(role domain.Role) []domain.Desk {
	switch role {
	case domain.RoleStaff, domain.RoleBranchManager:
		return []domain.Desk{domain.DeskSales, domain.DeskReception, domain.DeskClinical}
	}
	if desk, ok := desks[role]; ok {
		return []domain.Desk{desk}
	}
	return nil
}
