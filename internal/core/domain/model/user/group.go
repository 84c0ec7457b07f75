package user

import (
	"fmt"

	"littlelemon/internal/pkg/errs"
)

// Group identifies a role group a user may belong to. Exactly two groups
// exist: Manager and Delivery. Users outside both groups are customers.
type Group int

const (
	// GroupUnknown represents an invalid or undefined group.
	// This value (0) helps catch uninitialized Group values.
	GroupUnknown Group = iota

	// GroupManager grants near-administrator privileges over orders and
	// delivery crew membership.
	GroupManager

	// GroupDelivery marks members of the delivery crew.
	GroupDelivery
)

func getValidGroupNames() map[Group]string {
	//nolint:exhaustive // GroupUnknown is intentionally excluded as it's invalid
	return map[Group]string{
		GroupManager:  "Manager",
		GroupDelivery: "Delivery",
	}
}

// GroupFromName parses a stored or request-supplied group name.
// Returns an error for anything other than "Manager" or "Delivery".
func GroupFromName(name string) (Group, error) {
	for g, n := range getValidGroupNames() {
		if n == name {
			return g, nil
		}
	}
	return GroupUnknown, errs.NewValueIsInvalidErrorWithCause(
		"group",
		fmt.Errorf("%q is not a known group", name),
	)
}

// Name returns the persisted name of the group.
// Implements fmt.Stringer via String below.
func (g Group) Name() string {
	if n, ok := getValidGroupNames()[g]; ok {
		return n
	}
	return "Unknown"
}

func (g Group) String() string {
	return g.Name()
}

// Validate checks that the Group is one of the two known groups.
func (g Group) Validate() error {
	if _, ok := getValidGroupNames()[g]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"group",
			fmt.Errorf("%d is not a valid group", g),
		)
	}
	return nil
}
