package commands

import (
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to add a menu item to the
// catalog.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	actorRole  user.Role
	title      string
	price      float64
	categoryID kernel.UUID
	featured   bool

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a menu item creation command.
func NewCreateMenuItemCommand(
	actorRole user.Role,
	title string,
	price float64,
	categoryID kernel.UUID,
	featured bool,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		featured: featured,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setTitle(title),
		cmd.setPrice(price),
		cmd.setCategoryID(categoryID),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// ActorRole returns the acting user's resolved role.
func (c CreateMenuItemCommand) ActorRole() user.Role {
	return c.actorRole
}

// Title returns the item title.
func (c CreateMenuItemCommand) Title() string {
	return c.title
}

// Price returns the item's menu price.
func (c CreateMenuItemCommand) Price() float64 {
	return c.price
}

// CategoryID returns the owning category's identifier.
func (c CreateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Featured reports whether the item is flagged as featured.
func (c CreateMenuItemCommand) Featured() bool {
	return c.featured
}

func (c *CreateMenuItemCommand) setActorRole(r user.Role) error {
	if r == user.RoleUnknown {
		return errs.NewValueIsRequiredError("actorRole")
	}
	c.actorRole = r
	return nil
}

func (c *CreateMenuItemCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%v is not greater than 0", price),
		)
	}
	c.price = price
	return nil
}

func (c *CreateMenuItemCommand) setCategoryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.categoryID = id
	return nil
}
