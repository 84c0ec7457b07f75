// Package menu provides the catalog entities: categories and menu items.
// These carry no business rules beyond referential integrity and positive
// prices; cart and order logic never depends on their current prices after
// checkout.
package menu

import (
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// Category groups menu items for presentation.
type Category struct {
	id    kernel.UUID
	title string
	slug  string

	isConstructed bool
}

// NewCategory creates a catalog category.
func NewCategory(id kernel.UUID, title, slug string) (*Category, error) {
	c := &Category{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setTitle(title),
		c.setSlug(slug),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Category was properly constructed.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.UUID { return c.id }
func (c *Category) Title() string   { return c.title }
func (c *Category) Slug() string    { return c.slug }

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *Category) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	c.slug = slug
	return nil
}

// MenuItem is a purchasable catalog entry. Its price is the current menu
// price; cart lines capture their own unit price at add time.
type MenuItem struct {
	id         kernel.UUID
	title      string
	price      float64
	categoryID kernel.UUID
	featured   bool

	isConstructed bool
}

// NewMenuItem creates a menu item within a category.
func NewMenuItem(id kernel.UUID, title string, price float64, categoryID kernel.UUID, featured bool) (*MenuItem, error) {
	m := &MenuItem{
		featured:      featured,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setTitle(title),
		m.setPrice(price),
		m.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the MenuItem was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID         { return m.id }
func (m *MenuItem) Title() string           { return m.title }
func (m *MenuItem) Price() float64          { return m.price }
func (m *MenuItem) CategoryID() kernel.UUID { return m.categoryID }
func (m *MenuItem) Featured() bool          { return m.featured }

// SetTitle updates the displayed title.
func (m *MenuItem) SetTitle(title string) error {
	return m.setTitle(title)
}

// SetPrice updates the current menu price. Existing cart lines and order
// item snapshots are unaffected.
func (m *MenuItem) SetPrice(price float64) error {
	return m.setPrice(price)
}

// SetFeatured toggles the featured flag.
func (m *MenuItem) SetFeatured(featured bool) {
	m.featured = featured
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	m.title = title
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%v is not greater than 0", price),
		)
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategoryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.categoryID = id
	return nil
}
