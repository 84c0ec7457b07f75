package commands

import (
	"errors"
	"fmt"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrAddCartLineCommandIsNotConstructed = errors.New(
		"AddCartLineCommand must be created via NewAddCartLineCommand constructor",
	)
)

// AddCartLineCommand represents a request to add one pending line to the
// requesting customer's cart. No price travels in the command: the unit
// price is read from the catalog and the line price is derived from it, so
// the client can never influence what a line costs.
type AddCartLineCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	addedAt    time.Time

	guard guard.ConstructorGuard
}

// NewAddCartLineCommand creates a command to add a cart line.
// Quantity must be positive.
func NewAddCartLineCommand(
	customerID kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	addedAt time.Time,
) (AddCartLineCommand, error) {
	cmd := AddCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
		cmd.setAddedAt(addedAt),
	); err != nil {
		return AddCartLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartLineCommand) Validate() error {
	return c.guard.Validate(ErrAddCartLineCommandIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (c AddCartLineCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// MenuItemID returns the referenced menu item's identifier.
func (c AddCartLineCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the requested unit count.
func (c AddCartLineCommand) Quantity() int {
	return c.quantity
}

// AddedAt returns the request time.
func (c AddCartLineCommand) AddedAt() time.Time {
	return c.addedAt
}

func (c *AddCartLineCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *AddCartLineCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.menuItemID = id
	return nil
}

func (c *AddCartLineCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	c.quantity = quantity
	return nil
}

func (c *AddCartLineCommand) setAddedAt(addedAt time.Time) error {
	if addedAt.IsZero() {
		return errs.NewValueIsRequiredError("addedAt")
	}
	c.addedAt = addedAt
	return nil
}
