package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petcarex/console/internal/domain"
)

func authenticated(role domain.Role) domain.SessionState {
	return domain.SessionState{
		Token:  "x.y.z",
		Claims: &domain.Claims{Subject: "U001", Role: role},
	}
}

func TestEvaluate_UnauthenticatedStates(t *testing.T) {
	cases := []struct {
		name  string
		state domain.SessionState
	}{
		{"no token", domain.SessionState{}},
		{"token without claims", domain.SessionState{Token: "a.b.c"}},
		{"expired", domain.SessionState{
			Token:   "x.y.z",
			Claims:  &domain.Claims{Subject: "KH001", Role: domain.RoleCustomer, ExpiresAt: 1},
			Expired: true,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// denied even when the role would otherwise be allowed
			assert.Equal(t, DenyUnauthenticated, Evaluate(tc.state, domain.Roles...))
			assert.Equal(t, DenyUnauthenticated, Evaluate(tc.state))
		})
	}
}

func TestEvaluate_RoleAllowList(t *testing.T) {
	assert.Equal(t, Allow,
		Evaluate(authenticated(domain.RoleBranchManager), domain.RoleBranchManager, domain.RoleStaff))
	assert.Equal(t, DenyForbidden,
		Evaluate(authenticated(domain.RoleSalesStaff), domain.RoleBranchManager))
	assert.Equal(t, DenyForbidden,
		Evaluate(authenticated(domain.RoleCustomer), domain.RoleBranchManager, domain.RoleStaff))

	// empty allow-list forbids every authenticated role
	for _, role := range domain.Roles {
		assert.Equal(t, DenyForbidden, Evaluate(authenticated(role)))
	}
}

func TestEvaluate_TotalAndIdempotent(t *testing.T) {
	allowLists := [][]domain.Role{
		nil,
		{domain.RoleCustomer},
		{domain.RoleBranchManager, domain.RoleStaff},
		domain.Roles,
	}
	states := []domain.SessionState{{}, {Token: "a.b.c"}}
	for _, role := range domain.Roles {
		states = append(states, authenticated(role))
	}

	for _, state := range states {
		for _, allowed := range allowLists {
			first := Evaluate(state, allowed...)
			assert.Contains(t, []Decision{Allow, DenyUnauthenticated, DenyForbidden}, first)
			assert.Equal(t, first, Evaluate(state, allowed...))
		}
	}
}

func TestLandingRoute(t *testing.T) {
	cases := map[domain.Role]string{
		domain.RoleCustomer:      RoutePortal,
		domain.RoleBranchManager: RouteDashboard,
		domain.RoleStaff:         RouteStaff,
		domain.RoleSalesStaff:    RouteStaff,
		domain.RoleVetStaff:      RouteStaff,
		domain.RoleReceptionist:  RouteStaff,
	}
	for role, want := range cases {
		assert.Equal(t, want, LandingRoute(authenticated(role)), "role %s", role)
	}

	assert.Equal(t, RouteEntry, LandingRoute(domain.SessionState{}))
	assert.Equal(t, RouteEntry, LandingRoute(authenticated(domain.Role("auditor"))))
}

func TestDeskFor(t *testing.T) {
	cases := map[domain.Role]domain.Desk{
		domain.RoleSalesStaff:    domain.DeskSales,
		domain.RoleReceptionist:  domain.DeskReception,
		domain.RoleVetStaff:      domain.DeskClinical,
		domain.RoleStaff:         domain.DeskSales,
		domain.RoleBranchManager: domain.DeskSales,
	}
	for role, want := range cases {
		desk, ok := DeskFor(role)
		assert.True(t, ok, "role %s", role)
		assert.Equal(t, want, desk)
	}

	_, ok := DeskFor(domain.RoleCustomer)
	assert.False(t, ok)
}

func TestVisibleDesks(t *testing.T) {
	all := []domain.Desk{domain.DeskSales, domain.DeskReception, domain.DeskClinical}
	assert.Equal(t, all, VisibleDesks(domain.RoleStaff))
	assert.Equal(t, all, VisibleDesks(domain.RoleBranchManager))
	assert.Equal(t, []domain.Desk{domain.DeskReception}, VisibleDesks(domain.RoleReceptionist))
	assert.Equal(t, []domain.Desk{domain.DeskClinical}, VisibleDesks(domain.RoleVetStaff))
	assert.Equal(t, []domain.Desk{domain.DeskSales}, VisibleDesks(domain.RoleSalesStaff))
	assert.Nil(t, VisibleDesks(domain.RoleCustomer))
}
