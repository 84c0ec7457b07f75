package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler adds menu items to the catalog.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item creation command. The owning category must
// exist; a dangling category reference is a not-found error.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*menu.MenuItem, error) {
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

	if _, err := uow.MenuRepository().GetCategory(ctx, cmd.CategoryID()); err != nil {
		return nil, err
	}

	item, err := menu.NewMenuItem(kernel.NewUUID(), cmd.Title(), cmd.Price(), cmd.CategoryID(), cmd.Featured())
	if err != nil {
		return nil, err
	}

	if err = uow.MenuRepository().AddItem(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
