package commands

import (
	"context"
)

// DeleteMenuItemCommandHandler removes menu items from the catalog.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewDeleteMenuItemCommandHandler creates a handler for menu item deletion.
func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item delete command. Deleting a missing item is
// a not-found error. Existing cart lines and order item snapshots keep their
// captured prices and quantities.
func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.MenuRepository().GetItem(ctx, cmd.ItemID()); err != nil {
		return err
	}

	if err := uow.MenuRepository().DeleteItem(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
