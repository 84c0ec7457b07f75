package order

import (
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	// ErrOrderItemIsNotConstructed is returned when an OrderItem was not
	// created through NewOrderItem.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")
)

// OrderItem is an immutable snapshot of one cart line at checkout time.
// Price is copied verbatim from the consumed cart line, never recomputed:
// this is the snapshot price, frozen even if catalog prices change later.
type OrderItem struct {
	menuItemID kernel.UUID
	quantity   int
	price      float64

	isConstructed bool
}

// NewOrderItem creates an order item from the values captured in a cart
// line. The price parameter is stored as-is.
func NewOrderItem(menuItemID kernel.UUID, quantity int, price float64) (OrderItem, error) {
	item := OrderItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

// Validate ensures the OrderItem was properly constructed.
func (i OrderItem) Validate() error {
	if !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the referenced menu item's identifier.
func (i OrderItem) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered unit count.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// Price returns the snapshot price captured at checkout.
func (i OrderItem) Price() float64 {
	return i.price
}

func (i *OrderItem) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%v is not greater than 0", price),
		)
	}
	i.price = price
	return nil
}
