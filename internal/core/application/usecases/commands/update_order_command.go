package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrNothingToUpdate = errors.New("update must change delivery crew or status")
)

// UpdateOrderCommand represents a role-gated request to mutate an existing
// order's delivery crew assignment or status. The acting user's role is
// resolved once at the HTTP boundary and carried explicitly here.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actorRole      user.Role
	orderID        kernel.UUID
	deliveryCrewID *kernel.UUID
	status         *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an order update command. At least one of
// deliveryCrewID and status must be set.
func NewUpdateOrderCommand(
	actorRole user.Role,
	orderID kernel.UUID,
	deliveryCrewID *kernel.UUID,
	status *order.Status,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setOrderID(orderID),
		cmd.setDeliveryCrewID(deliveryCrewID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	if cmd.deliveryCrewID == nil && cmd.status == nil {
		return UpdateOrderCommand{}, ErrNothingToUpdate
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// ActorRole returns the acting user's resolved role.
func (c UpdateOrderCommand) ActorRole() user.Role {
	return c.actorRole
}

// OrderID returns the target order's identifier.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryCrewID returns the requested crew assignment, if any.
func (c UpdateOrderCommand) DeliveryCrewID() *kernel.UUID {
	return c.deliveryCrewID
}

// Status returns the requested status, if any.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setActorRole(r user.Role) error {
	if r == user.RoleUnknown {
		return errs.NewValueIsRequiredError("actorRole")
	}
	c.actorRole = r
	return nil
}

func (c *UpdateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setDeliveryCrewID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryCrewID = id
	return nil
}

func (c *UpdateOrderCommand) setStatus(s *order.Status) error {
	if s == nil {
		return nil
	}
	if err := s.Validate(); err != nil {
		return err
	}
	c.status = s
	return nil
}
