package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrListCategoriesQueryIsNotConstructed = errors.New(
		"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
	)
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
	)
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
)

// ListCategoriesQuery retrieves all catalog categories.
type ListCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewListCategoriesQuery creates a parameterless category listing query.
func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

// ListCategoriesQueryResponse represents one catalog category.
type ListCategoriesQueryResponse struct {
	ID    kernel.UUID
	Title string
	Slug  string
}

// ListMenuItemsQuery retrieves menu items, optionally filtered by category.
type ListMenuItemsQuery struct {
	categoryID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListMenuItemsQuery creates a menu item listing query. A nil categoryID
// lists the whole catalog.
func NewListMenuItemsQuery(categoryID *kernel.UUID) (ListMenuItemsQuery, error) {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return ListMenuItemsQuery{}, err
		}
	}

	return ListMenuItemsQuery{
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

// CategoryID returns the optional category filter.
func (q ListMenuItemsQuery) CategoryID() *kernel.UUID {
	return q.categoryID
}

// ListMenuItemsQueryResponse represents one menu item.
type ListMenuItemsQueryResponse struct {
	ID         kernel.UUID
	Title      string
	Price      float64
	CategoryID kernel.UUID
	Featured   bool
}

// GetMenuItemQuery retrieves a single menu item.
type GetMenuItemQuery struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery creates a single menu item query.
func NewGetMenuItemQuery(itemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}

	return GetMenuItemQuery{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// ItemID returns the requested item's identifier.
func (q GetMenuItemQuery) ItemID() kernel.UUID {
	return q.itemID
}
