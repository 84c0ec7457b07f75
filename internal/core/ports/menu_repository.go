package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for the catalog:
// categories and menu items.
type MenuRepository interface {
	// AddCategory persists a new category.
	AddCategory(ctx context.Context, category *menu.Category) error

	// GetCategory retrieves a category by unique identifier.
	GetCategory(ctx context.Context, id kernel.UUID) (*menu.Category, error)

	// AddItem persists a new menu item. The referenced category must exist.
	AddItem(ctx context.Context, item *menu.MenuItem) error

	// GetItem retrieves a menu item by unique identifier.
	GetItem(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// UpdateItem persists changes to an existing menu item.
	UpdateItem(ctx context.Context, item *menu.MenuItem) error

	// DeleteItem removes a menu item. Returns ObjectNotFound if absent.
	DeleteItem(ctx context.Context, id kernel.UUID) error
}
