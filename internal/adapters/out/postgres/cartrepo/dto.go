// Package cartrepo provides GORM persistence for cart lines. Cart lines map
// one to one onto rows; the stored price is the captured line price and is
// never recomputed on read.
package cartrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartLineDTO represents the database structure for persisting cart lines.
// Indexed by customer for the per-customer list and clear operations, and by
// added_at for the stale line cleanup job.
type CartLineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	UnitPrice  float64
	Quantity   int
	Price      float64
	AddedAt    time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "cart_lines".
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(line *cart.CartLine) CartLineDTO {
	return CartLineDTO{
		ID:         line.ID().Bytes(),
		CustomerID: line.CustomerID().Bytes(),
		MenuItemID: line.MenuItemID().Bytes(),
		UnitPrice:  line.UnitPrice(),
		Quantity:   line.Quantity(),
		Price:      line.Price(),
		AddedAt:    line.AddedAt(),
	}
}

func toDomain(dto CartLineDTO) (*cart.CartLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	return cart.RestoreCartLine(
		id, customerID, menuItemID,
		dto.UnitPrice, dto.Quantity, dto.Price, dto.AddedAt,
	)
}
