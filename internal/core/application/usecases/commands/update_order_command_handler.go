package commands

import (
	"context"

	"littlelemon/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies delivery crew assignment and status
// changes to an existing order.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
//
// Customers may never update orders, not even their own. A requested crew
// assignment is verified against the user store before it is applied, so a
// dangling crew reference can never be persisted.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.ActorRole().MayUpdateOrders() {
		return errs.NewPolicyRejectedError("update order")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if crewID := cmd.DeliveryCrewID(); crewID != nil {
		if _, userErr := uow.UserRepository().Get(ctx, *crewID); userErr != nil {
			return userErr
		}
		if assignErr := target.AssignDeliveryCrew(*crewID); assignErr != nil {
			return assignErr
		}
	}

	if status := cmd.Status(); status != nil {
		if statusErr := target.ChangeStatus(*status); statusErr != nil {
			return statusErr
		}
	}

	if err = uow.OrderRepository().Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
