package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrListGroupMembersQueryIsNotConstructed = errors.New(
	"ListGroupMembersQuery must be created via NewListGroupMembersQuery constructor",
)

// ListGroupMembersQuery retrieves all users belonging to a role group.
// Who may see which group is decided at the HTTP boundary; the query itself
// is unrestricted.
type ListGroupMembersQuery struct {
	group user.Group

	guard guard.ConstructorGuard
}

// NewListGroupMembersQuery creates a group member listing query.
func NewListGroupMembersQuery(group user.Group) (ListGroupMembersQuery, error) {
	if err := group.Validate(); err != nil {
		return ListGroupMembersQuery{}, err
	}

	return ListGroupMembersQuery{
		group: group,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListGroupMembersQuery) Validate() error {
	return q.guard.Validate(ErrListGroupMembersQueryIsNotConstructed)
}

// Group returns the listed group.
func (q ListGroupMembersQuery) Group() user.Group {
	return q.group
}

// ListGroupMembersQueryResponse represents one group member.
type ListGroupMembersQueryResponse struct {
	ID       kernel.UUID
	Username string
	Email    string
}
