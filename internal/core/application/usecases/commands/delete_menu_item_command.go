package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand represents a request to remove a menu item from the
// catalog.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	actorRole user.Role
	itemID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a menu item delete command.
func NewDeleteMenuItemCommand(actorRole user.Role, itemID kernel.UUID) (DeleteMenuItemCommand, error) {
	cmd := DeleteMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setItemID(itemID),
	); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// ActorRole returns the acting user's resolved role.
func (c DeleteMenuItemCommand) ActorRole() user.Role {
	return c.actorRole
}

// ItemID returns the target item's identifier.
func (c DeleteMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *DeleteMenuItemCommand) setActorRole(r user.Role) error {
	if r == user.RoleUnknown {
		return errs.NewValueIsRequiredError("actorRole")
	}
	c.actorRole = r
	return nil
}

func (c *DeleteMenuItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}
