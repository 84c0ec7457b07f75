package user

// Role is the effective role of a user for a single request. It is resolved
// once from stored membership facts and then passed explicitly through
// commands and queries.
//
// Resolution precedence (first match wins):
//
//	superuser flag        -> Administrator
//	zero group members    -> Customer
//	member of "Delivery"  -> DeliveryCrew
//	anything else         -> Manager (the catch-all)
//
// A user may hold both Manager and Delivery memberships; the precedence
// above decides which role applies.
type Role int

const (
	// RoleUnknown represents an unresolved role. The zero value never
	// passes authorization checks.
	RoleUnknown Role = iota

	// RoleCustomer is a user with no group memberships.
	RoleCustomer

	// RoleDeliveryCrew is a member of the Delivery group.
	RoleDeliveryCrew

	// RoleManager is a member of the Manager group.
	RoleManager

	// RoleAdministrator is a superuser.
	RoleAdministrator
)

// ResolveRole derives the effective role from membership facts.
// This is the only place in the codebase that interprets group membership.
func ResolveRole(isSuperuser bool, groups []Group) Role {
	if isSuperuser {
		return RoleAdministrator
	}
	if len(groups) == 0 {
		return RoleCustomer
	}
	for _, g := range groups {
		if g == GroupDelivery {
			return RoleDeliveryCrew
		}
	}
	return RoleManager
}

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:       "Unknown",
		RoleCustomer:      "Customer",
		RoleDeliveryCrew:  "DeliveryCrew",
		RoleManager:       "Manager",
		RoleAdministrator: "Administrator",
	}
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// SeesAllOrders reports whether the role may list every order in the store.
func (r Role) SeesAllOrders() bool {
	return r == RoleAdministrator || r == RoleManager
}

// MayUpdateOrders reports whether the role may mutate existing orders.
// Customers are rejected by policy; everyone else may update.
func (r Role) MayUpdateOrders() bool {
	return r == RoleAdministrator || r == RoleManager || r == RoleDeliveryCrew
}

// MayMutateGroup reports whether the role may add or remove members of the
// given group. Manager-group mutations require an administrator; Delivery
// mutations allow administrators and managers.
func (r Role) MayMutateGroup(g Group) bool {
	switch g {
	case GroupManager:
		return r == RoleAdministrator
	case GroupDelivery:
		return r == RoleAdministrator || r == RoleManager
	default:
		return false
	}
}
