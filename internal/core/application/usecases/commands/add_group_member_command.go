package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrAddGroupMemberCommandIsNotConstructed = errors.New(
	"AddGroupMemberCommand must be created via NewAddGroupMemberCommand constructor",
)

// AddGroupMemberCommand represents a request to add a user, addressed by
// username, to a role group.
type AddGroupMemberCommand struct { //nolint:recvcheck //using for validation
	actorRole user.Role
	username  string
	group     user.Group

	guard guard.ConstructorGuard
}

// NewAddGroupMemberCommand creates a group membership grant command.
func NewAddGroupMemberCommand(actorRole user.Role, username string, group user.Group) (AddGroupMemberCommand, error) {
	cmd := AddGroupMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setUsername(username),
		cmd.setGroup(group),
	); err != nil {
		return AddGroupMemberCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddGroupMemberCommand) Validate() error {
	return c.guard.Validate(ErrAddGroupMemberCommandIsNotConstructed)
}

// ActorRole returns the acting user's resolved role.
func (c AddGroupMemberCommand) ActorRole() user.Role {
	return c.actorRole
}

// Username returns the target user's username.
func (c AddGroupMemberCommand) Username() string {
	return c.username
}

// Group returns the group being granted.
func (c AddGroupMemberCommand) Group() user.Group {
	return c.group
}

func (c *AddGroupMemberCommand) setActorRole(r user.Role) error {
	if r == user.RoleUnknown {
		return errs.NewValueIsRequiredError("actorRole")
	}
	c.actorRole = r
	return nil
}

func (c *AddGroupMemberCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *AddGroupMemberCommand) setGroup(g user.Group) error {
	if err := g.Validate(); err != nil {
		return err
	}
	c.group = g
	return nil
}
