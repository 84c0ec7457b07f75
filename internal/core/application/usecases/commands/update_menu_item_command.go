package commands

import (
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a partial update of a menu item. Nil
// fields are left untouched.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	actorRole user.Role
	itemID    kernel.UUID
	title     *string
	price     *float64
	featured  *bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a menu item update command.
func NewUpdateMenuItemCommand(
	actorRole user.Role,
	itemID kernel.UUID,
	title *string,
	price *float64,
	featured *bool,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		featured: featured,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setItemID(itemID),
		cmd.setTitle(title),
		cmd.setPrice(price),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// ActorRole returns the acting user's resolved role.
func (c UpdateMenuItemCommand) ActorRole() user.Role {
	return c.actorRole
}

// ItemID returns the target item's identifier.
func (c UpdateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Title returns the new title, if any.
func (c UpdateMenuItemCommand) Title() *string {
	return c.title
}

// Price returns the new price, if any.
func (c UpdateMenuItemCommand) Price() *float64 {
	return c.price
}

// Featured returns the new featured flag, if any.
func (c UpdateMenuItemCommand) Featured() *bool {
	return c.featured
}

func (c *UpdateMenuItemCommand) setActorRole(r user.Role) error {
	if r == user.RoleUnknown {
		return errs.NewValueIsRequiredError("actorRole")
	}
	c.actorRole = r
	return nil
}

func (c *UpdateMenuItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}

func (c *UpdateMenuItemCommand) setTitle(title *string) error {
	if title == nil {
		return nil
	}
	if *title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price *float64) error {
	if price == nil {
		return nil
	}
	if *price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%v is not greater than 0", *price),
		)
	}
	c.price = price
	return nil
}
