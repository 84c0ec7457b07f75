package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCartQueryHandler reads a customer's cart lines from the database.
type ListCartQueryHandler struct {
	db *gorm.DB
}

// NewListCartQueryHandler creates a handler for cart listing queries.
func NewListCartQueryHandler(db *gorm.DB) ListCartQueryHandler {
	return ListCartQueryHandler{db: db}
}

// Handle executes the query. Lines are returned oldest first; an empty cart
// yields an empty slice.
func (h ListCartQueryHandler) Handle(ctx context.Context, query ListCartQuery) ([]ListCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines := make([]ListCartQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			menu_item_id,
			unit_price,
			quantity,
			price
		FROM cart_lines
		WHERE customer_id = ?
		ORDER BY added_at
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListCartQueryResponse
		var id, menuItemID uuid.UUID

		err = rows.Scan(
			&id,
			&menuItemID,
			&resp.UnitPrice,
			&resp.Quantity,
			&resp.Price,
		)
		if err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = lineID

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.MenuItemID = itemID

		lines = append(lines, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
