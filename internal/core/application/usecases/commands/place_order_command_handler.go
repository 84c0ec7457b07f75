package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
)

// PlaceOrderResult is the outcome of a checkout attempt. An empty cart
// yields a declined result rather than an error: nothing was created and
// nothing was consumed.
type PlaceOrderResult struct {
	order *order.Order
}

// Declined reports whether checkout was declined because the cart was empty.
func (r PlaceOrderResult) Declined() bool {
	return r.order == nil
}

// Order returns the created order, or nil when the checkout was declined.
func (r PlaceOrderResult) Order() *order.Order {
	return r.order
}

// PlaceOrderCommandHandler handles the checkout workflow: it consumes the
// customer's cart into a new order inside a single transaction.
//
// The whole sequence is atomic. Reading the cart snapshot, computing the
// total, inserting the order with its item snapshots, and clearing the cart
// commit together or not at all, so a concurrent add-to-cart or a second
// checkout by the same customer can never corrupt totals or duplicate
// items.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
//
// If the customer's cart is empty the result is declined and no state is
// mutated. Otherwise every cart line is snapshot-copied verbatim into an
// order item (price is copied, not recomputed), the order total is the sum
// of the consumed line prices, and the cart is cleared. Any failure rolls
// the whole transaction back, leaving no partial state.
//
// The cart read locks its rows. Two simultaneous checkouts of the same cart
// serialize on those locks: the second blocks until the first commits, then
// finds the cart empty and is declined.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lines, err := uow.CartRepository().GetAllByCustomerForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if len(lines) == 0 {
		return PlaceOrderResult{}, nil
	}

	items := make([]order.OrderItem, 0, len(lines))
	for _, line := range lines {
		item, itemErr := order.NewOrderItem(line.MenuItemID(), line.Quantity(), line.Price())
		if itemErr != nil {
			return PlaceOrderResult{}, itemErr
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), cmd.Date(), items)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if crewID := cmd.DeliveryCrewID(); crewID != nil {
		if _, userErr := uow.UserRepository().Get(ctx, *crewID); userErr != nil {
			return PlaceOrderResult{}, userErr
		}
		if assignErr := newOrder.AssignDeliveryCrew(*crewID); assignErr != nil {
			return PlaceOrderResult{}, assignErr
		}
	}

	if status := cmd.Status(); status != nil {
		if statusErr := newOrder.ChangeStatus(*status); statusErr != nil {
			return PlaceOrderResult{}, statusErr
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.CartRepository().DeleteAllByCustomer(ctx, cmd.CustomerID()); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{order: newOrder}, nil
}
