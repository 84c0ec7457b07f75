// Package cart provides the cart line entity: one pending item a customer
// intends to order, prior to checkout. Lines are owned by exactly one
// customer and are consumed as a whole when an order is placed.
package cart

import (
	"errors"
	"fmt"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	// ErrCartLineIsNotConstructed is returned when a CartLine instance was not
	// created through NewCartLine or RestoreCartLine.
	ErrCartLineIsNotConstructed = errors.New("CartLine must be created via NewCartLine or RestoreCartLine constructor")
)

// CartLine is a pending order line owned by a single customer.
//
// Invariants:
//   - Quantity and unit price must be positive
//   - Price is always quantity * unitPrice, computed server-side at
//     construction; a client-supplied price is never trusted
//   - Repeated adds for the same menu item create separate lines; lines
//     are never merged
type CartLine struct {
	id         kernel.UUID
	customerID kernel.UUID
	menuItemID kernel.UUID
	unitPrice  float64
	quantity   int
	price      float64
	addedAt    time.Time

	isConstructed bool
}

// NewCartLine creates a cart line, deriving price from quantity and unit
// price. Any client-supplied price is ignored by callers in favor of this
// computation.
func NewCartLine(
	id kernel.UUID,
	customerID kernel.UUID,
	menuItemID kernel.UUID,
	unitPrice float64,
	quantity int,
	addedAt time.Time,
) (*CartLine, error) {
	line := &CartLine{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setCustomerID(customerID),
		line.setMenuItemID(menuItemID),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
		line.setAddedAt(addedAt),
	); err != nil {
		return nil, err
	}

	line.price = float64(line.quantity) * line.unitPrice
	return line, nil
}

// RestoreCartLine reconstructs a cart line from persistence with its stored
// price. Used only by repository implementations.
func RestoreCartLine(
	id kernel.UUID,
	customerID kernel.UUID,
	menuItemID kernel.UUID,
	unitPrice float64,
	quantity int,
	price float64,
	addedAt time.Time,
) (*CartLine, error) {
	line, err := NewCartLine(id, customerID, menuItemID, unitPrice, quantity, addedAt)
	if err != nil {
		return nil, err
	}

	line.price = price
	return line, nil
}

// Validate ensures the CartLine instance was properly constructed.
func (l *CartLine) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrCartLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *CartLine) ID() kernel.UUID {
	return l.id
}

// CustomerID returns the owning customer's identifier.
func (l *CartLine) CustomerID() kernel.UUID {
	return l.customerID
}

// MenuItemID returns the referenced menu item's identifier.
func (l *CartLine) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// UnitPrice returns the per-unit price captured when the line was added.
func (l *CartLine) UnitPrice() float64 {
	return l.unitPrice
}

// Quantity returns the number of units.
func (l *CartLine) Quantity() int {
	return l.quantity
}

// Price returns the derived line total (quantity * unit price).
func (l *CartLine) Price() float64 {
	return l.price
}

// AddedAt returns when the line entered the cart. Stale lines are purged by
// the cart cleanup job.
func (l *CartLine) AddedAt() time.Time {
	return l.addedAt
}

func (l *CartLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *CartLine) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.customerID = id
	return nil
}

func (l *CartLine) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.menuItemID = id
	return nil
}

func (l *CartLine) setUnitPrice(unitPrice float64) error {
	if unitPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%v is not greater than 0", unitPrice),
		)
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *CartLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *CartLine) setAddedAt(addedAt time.Time) error {
	if addedAt.IsZero() {
		return errs.NewValueIsRequiredError("addedAt")
	}
	l.addedAt = addedAt
	return nil
}
