package order

import (
	"errors"
	"slices"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when an order would be created without
	// any items. Checkout handles the empty cart before reaching this point;
	// the constructor enforces the invariant regardless.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// Order is the aggregate created by checkout. The owning customer is fixed
// at creation; the total equals the sum of the item snapshot prices and is
// computed exactly once.
//
// Invariants:
//   - Must have a valid unique identifier and owner
//   - Must contain at least one item
//   - Total is derived from items at construction and never recomputed
//   - Delivery crew is unassigned until a privileged role assigns one
type Order struct {
	id             kernel.UUID
	customerID     kernel.UUID
	deliveryCrewID *kernel.UUID
	status         Status
	date           time.Time
	total          float64
	items          []OrderItem

	isConstructed bool
}

// NewOrder creates a pending order owned by customerID from the given item
// snapshots. Total is computed here as the sum of item prices.
func NewOrder(id kernel.UUID, customerID kernel.UUID, date time.Time, items []OrderItem) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDate(date),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		o.total += item.Price()
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored total,
// status and assignment. Used only by repository implementations.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryCrewID *kernel.UUID,
	status Status,
	date time.Time,
	total float64,
	items []OrderItem,
) (*Order, error) {
	o, err := NewOrder(id, customerID, date, items)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	if deliveryCrewID != nil {
		if err := deliveryCrewID.Validate(); err != nil {
			return nil, err
		}
	}

	o.deliveryCrewID = deliveryCrewID
	o.status = status
	o.total = total
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier. Immutable after
// creation.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryCrewID returns the assigned delivery crew member's ID.
// Returns nil if no crew is assigned yet.
func (o *Order) DeliveryCrewID() *kernel.UUID {
	return o.deliveryCrewID
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// Date returns the order date.
func (o *Order) Date() time.Time {
	return o.date
}

// Total returns the total computed at creation time.
func (o *Order) Total() float64 {
	return o.total
}

// Items returns a copy of the item snapshots.
func (o *Order) Items() []OrderItem {
	return slices.Clone(o.items)
}

// AssignDeliveryCrew assigns the order to a delivery crew member.
// Reassignment is allowed.
func (o *Order) AssignDeliveryCrew(crewID kernel.UUID) error {
	if err := crewID.Validate(); err != nil {
		return err
	}

	o.deliveryCrewID = &crewID
	return nil
}

// ChangeStatus sets the fulfillment status. Any valid status may be set:
// order updates follow standard update semantics for privileged roles
// rather than a one-way state machine.
func (o *Order) ChangeStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}

	o.status = s
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	o.date = date
	return nil
}

func (o *Order) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = slices.Clone(items)
	return nil
}
