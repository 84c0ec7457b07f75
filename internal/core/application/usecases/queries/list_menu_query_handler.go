package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCategoriesQueryHandler reads catalog categories from the database.
type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewListCategoriesQueryHandler creates a handler for category listings.
func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

// Handle executes the query. Categories are sorted by title.
func (h ListCategoriesQueryHandler) Handle(
	ctx context.Context,
	query ListCategoriesQuery,
) ([]ListCategoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]ListCategoriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, title, slug
		FROM categories
		ORDER BY title
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListCategoriesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Title, &resp.Slug); err != nil {
			return nil, err
		}

		categoryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = categoryID

		categories = append(categories, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// ListMenuItemsQueryHandler reads menu items from the database.
type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewListMenuItemsQueryHandler creates a handler for menu item listings.
func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

// Handle executes the query. Items are sorted by title.
func (h ListMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query ListMenuItemsQuery,
) ([]ListMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, title, price, category_id, featured
		FROM menu_items
	`
	args := make([]any, 0, 1)
	if categoryID := query.CategoryID(); categoryID != nil {
		sql += ` WHERE category_id = ?`
		args = append(args, categoryID.Bytes())
	}
	sql += ` ORDER BY title`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ListMenuItemsQueryResponse, 0)
	for rows.Next() {
		resp, scanErr := scanMenuItem(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetMenuItemQueryHandler reads a single menu item from the database.
type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemQueryHandler creates a handler for single item queries.
func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle executes the query.
func (h GetMenuItemQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemQuery,
) (ListMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListMenuItemsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, title, price, category_id, featured
		FROM menu_items
		WHERE id = ?
	`, query.ItemID().Bytes()).Rows()
	if err != nil {
		return ListMenuItemsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ListMenuItemsQueryResponse{}, err
		}
		return ListMenuItemsQueryResponse{}, errs.NewObjectNotFoundError("menuItem", query.ItemID().String())
	}

	return scanMenuItem(rows.Scan)
}

func scanMenuItem(scan func(dest ...any) error) (ListMenuItemsQueryResponse, error) {
	var resp ListMenuItemsQueryResponse
	var id, categoryID uuid.UUID

	err := scan(&id, &resp.Title, &resp.Price, &categoryID, &resp.Featured)
	if err != nil {
		return ListMenuItemsQueryResponse{}, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ListMenuItemsQueryResponse{}, err
	}
	resp.ID = itemID

	catID, err := kernel.UUIDFromBytes(categoryID[:])
	if err != nil {
		return ListMenuItemsQueryResponse{}, err
	}
	resp.CategoryID = catID

	return resp, nil
}
