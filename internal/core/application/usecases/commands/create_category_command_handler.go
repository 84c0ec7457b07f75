package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"
)

// CreateCategoryCommandHandler adds catalog categories.
type CreateCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory MenuUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the category creation command.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*menu.Category, error) {
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

	category, err := menu.NewCategory(kernel.NewUUID(), cmd.Title(), cmd.Slug())
	if err != nil {
		return nil, err
	}

	if err = uow.MenuRepository().AddCategory(ctx, category); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return category, nil
}
