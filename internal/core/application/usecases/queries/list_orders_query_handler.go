package queries

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads role-scoped order listings from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are joined with their item snapshots
// and returned sorted by order ID for consistent output.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
	`
	args := make([]any, 0, 1)

	switch {
	case query.ActorRole().SeesAllOrders():
		// no filter
	case query.ActorRole() == user.RoleDeliveryCrew:
		sql += ` WHERE o.delivery_crew_id = ?`
		args = append(args, query.ActorID().Bytes())
	default:
		sql += ` WHERE o.customer_id = ?`
		args = append(args, query.ActorID().Bytes())
	}

	sql += ` ORDER BY o.id, i.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
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
			return nil, err
		}

		item, itemErr := newOrderItemResponse(menuItemID, quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}

		if n := len(orders); n > 0 && orders[n-1].ID.Bytes() == id {
			orders[n-1].Items = append(orders[n-1].Items, item)
			continue
		}

		resp, respErr := newListOrdersResponse(id, customerID, crewID, status, date, total)
		if respErr != nil {
			return nil, respErr
		}
		resp.Items = append(resp.Items, item)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func newOrderItemResponse(menuItemID uuid.UUID, quantity int, price float64) (OrderItemResponse, error) {
	id, err := kernel.UUIDFromBytes(menuItemID[:])
	if err != nil {
		return OrderItemResponse{}, err
	}

	return OrderItemResponse{
		MenuItemID: id,
		Quantity:   quantity,
		Price:      price,
	}, nil
}

func newListOrdersResponse(
	id, customerID uuid.UUID,
	crewID *uuid.UUID,
	status int,
	date time.Time,
	total float64,
) (ListOrdersQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	var deliveryCrewID *kernel.UUID
	if crewID != nil {
		cID, crewErr := kernel.UUIDFromBytes((*crewID)[:])
		if crewErr != nil {
			return ListOrdersQueryResponse{}, crewErr
		}
		deliveryCrewID = &cID
	}

	return ListOrdersQueryResponse{
		ID:             orderID,
		CustomerID:     ownerID,
		DeliveryCrewID: deliveryCrewID,
		Status:         order.Status(status).String(),
		Date:           date,
		Total:          total,
		Items:          make([]OrderItemResponse, 0, 1),
	}, nil
}
