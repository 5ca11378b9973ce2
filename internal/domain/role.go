package domain

// Role tags issued by the PetCareX API inside session tokens.
type Role string

const (
	RoleCustomer      Role = "customer"
	RoleStaff         Role = "staff"
	RoleBranchManager Role = "branch_manager"
	RoleSalesStaff    Role = "sales_staff"
	RoleVetStaff      Role = "veterinarian_staff"
	RoleReceptionist  Role = "receptionist_staff"
)

// Roles enumerates every role the console understands.
var Roles = []Role{
	RoleCustomer,
	RoleStaff,
	RoleBranchManager,
	RoleSalesStaff,
	RoleVetStaff,
	RoleReceptionist,
}

// IsStaff reports whether the role belongs to the staff console.
func (r Role) IsStaff() bool {
	switch r {
	case RoleStaff, RoleSalesStaff, RoleVetStaff, RoleReceptionist:
		return true
	}
	return false
}

// Known reports whether the role is part of the fixed role set.
func (r Role) Known() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Desk identifies a specialized work surface inside the staff console.
type Desk string

const (
	DeskSales     Desk = "sales"
	DeskReception Desk = "reception"
	DeskClinical  Desk = "clinical"
)
