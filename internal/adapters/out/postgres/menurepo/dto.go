// Package menurepo provides GORM persistence for the catalog: categories
// and menu items.
package menurepo

import (
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for persisting categories.
type CategoryDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string
	Slug  string `gorm:"uniqueIndex"`
}

// TableName overrides GORM's default naming to use "categories".
func (CategoryDTO) TableName() string {
	return "categories"
}

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title      string
	Price      float64
	CategoryID uuid.UUID `gorm:"type:uuid;index"`
	Featured   bool
}

// TableName overrides GORM's default naming to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func categoryFromDomain(category *menu.Category) CategoryDTO {
	return CategoryDTO{
		ID:    category.ID().Bytes(),
		Title: category.Title(),
		Slug:  category.Slug(),
	}
}

func categoryToDomain(dto CategoryDTO) (*menu.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.NewCategory(id, dto.Title, dto.Slug)
}

func itemFromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         item.ID().Bytes(),
		Title:      item.Title(),
		Price:      item.Price(),
		CategoryID: item.CategoryID().Bytes(),
		Featured:   item.Featured(),
	}
}

func itemToDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	return menu.NewMenuItem(id, dto.Title, dto.Price, categoryID, dto.Featured)
}
