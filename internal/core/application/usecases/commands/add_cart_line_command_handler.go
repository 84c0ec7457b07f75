package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
)

// AddCartLineCommandHandler adds a line to a customer's cart. The unit
// price is captured from the referenced menu item's current price at add
// time. Repeated adds for the same item create separate lines; lines are
// never merged.
type AddCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartLineCommandHandler creates a handler for add-to-cart operations.
func NewAddCartLineCommandHandler(uowFactory CartUoWFactory) AddCartLineCommandHandler {
	return AddCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command and returns the created line.
func (h *AddCartLineCommandHandler) Handle(ctx context.Context, cmd AddCartLineCommand) (*cart.CartLine, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.MenuRepository().GetItem(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	line, err := cart.NewCartLine(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.MenuItemID(),
		item.Price(),
		cmd.Quantity(),
		cmd.AddedAt(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.CartRepository().Add(ctx, line); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return line, nil
}
