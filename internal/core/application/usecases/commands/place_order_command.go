package commands

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a checkout request: consume the requesting
// customer's cart into a new order. The owner is always the requesting
// customer; any user reference in the request body is ignored by the HTTP
// adapter before this command is built.
//
// Delivery crew and status are optional pass-through fields validated
// against the order schema; date defaults to the request time at the HTTP
// boundary.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID     kernel.UUID
	date           time.Time
	deliveryCrewID *kernel.UUID
	status         *order.Status

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command for the given customer.
// deliveryCrewID and status may be nil; when set they are validated here.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	date time.Time,
	deliveryCrewID *kernel.UUID,
	status *order.Status,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDate(date),
		cmd.setDeliveryCrewID(deliveryCrewID),
		cmd.setStatus(status),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the requesting customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Date returns the order date.
func (c PlaceOrderCommand) Date() time.Time {
	return c.date
}

// DeliveryCrewID returns the optional delivery crew assignment.
func (c PlaceOrderCommand) DeliveryCrewID() *kernel.UUID {
	return c.deliveryCrewID
}

// Status returns the optional initial status override.
func (c PlaceOrderCommand) Status() *order.Status {
	return c.status
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = date
	return nil
}

func (c *PlaceOrderCommand) setDeliveryCrewID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryCrewID = id
	return nil
}

func (c *PlaceOrderCommand) setStatus(s *order.Status) error {
	if s == nil {
		return nil
	}
	if err := s.Validate(); err != nil {
		return err
	}
	c.status = s
	return nil
}
