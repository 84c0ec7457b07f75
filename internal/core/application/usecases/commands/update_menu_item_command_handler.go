package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/menu"
)

// UpdateMenuItemCommandHandler applies partial updates to menu items.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item update command. Price changes never touch
// existing cart lines or order item snapshots.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (*menu.MenuItem, error) {
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

	item, err := uow.MenuRepository().GetItem(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if title := cmd.Title(); title != nil {
		if err = item.SetTitle(*title); err != nil {
			return nil, err
		}
	}

	if price := cmd.Price(); price != nil {
		if err = item.SetPrice(*price); err != nil {
			return nil, err
		}
	}

	if featured := cmd.Featured(); featured != nil {
		item.SetFeatured(*featured)
	}

	if err = uow.MenuRepository().UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
