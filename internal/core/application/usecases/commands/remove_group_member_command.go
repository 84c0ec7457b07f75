package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrRemoveGroupMemberCommandIsNotConstructed = errors.New(
	"RemoveGroupMemberCommand must be created via NewRemoveGroupMemberCommand constructor",
)

// RemoveGroupMemberCommand represents a request to remove a user, addressed
// by username, from a role group.
type RemoveGroupMemberCommand struct { //nolint:recvcheck //using for validation
	actorRole user.Role
	username  string
	group     user.Group

	guard guard.ConstructorGuard
}

// NewRemoveGroupMemberCommand creates a group membership revoke command.
func NewRemoveGroupMemberCommand(
	actorRole user.Role,
	username string,
	group user.Group,
) (RemoveGroupMemberCommand, error) {
	cmd := RemoveGroupMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setUsername(username),
		cmd.setGroup(group),
	); err != nil {
		return RemoveGroupMemberCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveGroupMemberCommand) Validate() error {
	return c.guard.Validate(ErrRemoveGroupMemberCommandIsNotConstructed)
}

// ActorRole returns the acting user's resolved role.
func (c RemoveGroupMemberCommand) ActorRole() user.Role {
	return c.actorRole
}

// Username returns the target user's username.
func (c RemoveGroupMemberCommand) Username() string {
	return c.username
}

// Group returns the group being revoked.
func (c RemoveGroupMemberCommand) Group() user.Group {
	return c.group
}

func (c *RemoveGroupMemberCommand) setActorRole(r user.Role) error {
	if r == user.RoleUnknown {
		return errs.NewValueIsRequiredError("actorRole")
	}
	c.actorRole = r
	return nil
}

func (c *RemoveGroupMemberCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *RemoveGroupMemberCommand) setGroup(g user.Group) error {
	if err := g.Validate(); err != nil {
		return err
	}
	c.group = g
	return nil
}
