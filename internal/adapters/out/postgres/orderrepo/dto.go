// Package orderrepo provides GORM persistence for order aggregates and
// their item snapshots. Item rows are written once at checkout and never
// updated afterwards.
package orderrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer for the role-scoped listings and by delivery crew for
// the crew's assigned order view.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryCrewID *uuid.UUID `gorm:"type:uuid;index"`
	Status         int
	Date           time.Time
	Total          float64
	Items          []OrderItemDTO `gorm:"foreignKey:OrderID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents an order item snapshot row. Price is the captured
// cart line price, not the current menu price.
type OrderItemDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Quantity   int
	Price      float64
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var crewID *uuid.UUID
	if id := aggregate.DeliveryCrewID(); id != nil {
		raw := id.Bytes()
		crewID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		DeliveryCrewID: crewID,
		Status:         int(aggregate.Status()),
		Date:           aggregate.Date(),
		Total:          aggregate.Total(),
		Items:          items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var crewID *kernel.UUID
	if dto.DeliveryCrewID != nil {
		cID, crewErr := kernel.UUIDFromBytes((*dto.DeliveryCrewID)[:])
		if crewErr != nil {
			return nil, crewErr
		}
		crewID = &cID
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewOrderItem(menuItemID, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, crewID,
		order.Status(dto.Status), dto.Date, dto.Total, items,
	)
}
