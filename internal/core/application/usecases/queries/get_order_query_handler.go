package queries

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single role-scoped order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound both for absent orders
// and for orders outside the actor's visibility.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	sql := `
		SELECT
			o.id,
			o.customer_id,
			o.delivery_crew_id,
			o.status,
			o.date,
			o.total,
			i.menu_item_id,
			i.quantity,
			i.price
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.id = ?
	`
	args := []any{query.OrderID().Bytes()}

	switch {
	case query.ActorRole().SeesAllOrders():
		// no extra filter
	case query.ActorRole() == user.RoleDeliveryCrew:
		sql += ` AND o.delivery_crew_id = ?`
		args = append(args, query.ActorID().Bytes())
	default:
		sql += ` AND o.customer_id = ?`
		args = append(args, query.ActorID().Bytes())
	}

	sql += ` ORDER BY i.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	var resp ListOrdersQueryResponse
	found := false
	for rows.Next() {
		var (
			id, customerID, menuItemID uuid.UUID
			crewID                     *uuid.UUID
			status                     int
			date                       time.Time
			total, price               float64
			quantity                   int
		)

		err = rows.Scan(
			&id, &customerID, &crewID, &status, &date, &total,
			&menuItemID, &quantity, &price,
		)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		if !found {
			resp, err = newListOrdersResponse(id, customerID, crewID, status, date, total)
			if err != nil {
				return ListOrdersQueryResponse{}, err
			}
			found = true
		}

		item, itemErr := newOrderItemResponse(menuItemID, quantity, price)
		if itemErr != nil {
			return ListOrdersQueryResponse{}, itemErr
		}
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	if !found {
		return ListOrdersQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return resp, nil
}
