package http

import (
	"time"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/model/user"
)

// Error is the shared error response contract.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Message is the acknowledgement contract for operations with no payload.
type Message struct {
	Message string `json:"message"`
}

// RegisterUserRequest is the body of POST /api/users.
type RegisterUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents a user in responses. The password hash never
// leaves the server.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenRequest is the body of POST /api/token.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// CategoryRequest is the body of POST /api/categories.
type CategoryRequest struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// CategoryResponse represents a catalog category.
type CategoryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// MenuItemRequest is the body of POST /api/menu-items.
type MenuItemRequest struct {
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"category_id"`
	Featured   bool    `json:"featured"`
}

// MenuItemUpdateRequest is the body of PUT /api/menu-items/:id. Absent
// fields are left unchanged.
type MenuItemUpdateRequest struct {
	Title    *string  `json:"title"`
	Price    *float64 `json:"price"`
	Featured *bool    `json:"featured"`
}

// MenuItemResponse represents a menu item.
type MenuItemResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"category_id"`
	Featured   bool    `json:"featured"`
}

// CartLineRequest is the body of POST /api/cart/menu-items. The price is
// always derived server-side from the menu item's current price.
type CartLineRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// CartLineResponse represents one cart line.
type CartLineResponse struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menu_item_id"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// PlaceOrderRequest is the body of POST /api/orders. Both fields are
// optional; any customer reference in the body is ignored, the order always
// belongs to the requesting user.
type PlaceOrderRequest struct {
	DeliveryCrewID *string `json:"delivery_crew_id"`
	Status         *string `json:"status"`
}

// UpdateOrderRequest is the body of PUT /api/orders/:id.
type UpdateOrderRequest struct {
	DeliveryCrewID *string `json:"delivery_crew_id"`
	Status         *string `json:"status"`
}

// OrderItemResponse represents one order item snapshot.
type OrderItemResponse struct {
	MenuItemID string  `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// OrderResponse represents an order with its item snapshots.
type OrderResponse struct {
	ID             string              `json:"id"`
	CustomerID     string              `json:"customer_id"`
	DeliveryCrewID *string             `json:"delivery_crew_id"`
	Status         string              `json:"status"`
	Date           time.Time           `json:"date"`
	Total          float64             `json:"total"`
	Items          []OrderItemResponse `json:"items"`
}

// GroupMemberRequest is the body of group membership mutations.
type GroupMemberRequest struct {
	Username string `json:"username"`
}

// GroupMemberResponse represents one group member.
type GroupMemberResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func newUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:       u.ID().String(),
		Username: u.Username(),
		Email:    u.Email(),
	}
}

func newCategoryResponse(c *menu.Category) CategoryResponse {
	return CategoryResponse{
		ID:    c.ID().String(),
		Title: c.Title(),
		Slug:  c.Slug(),
	}
}

func newMenuItemResponse(m *menu.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:         m.ID().String(),
		Title:      m.Title(),
		Price:      m.Price(),
		CategoryID: m.CategoryID().String(),
		Featured:   m.Featured(),
	}
}

func newCartLineResponse(line *cart.CartLine) CartLineResponse {
	return CartLineResponse{
		ID:         line.ID().String(),
		MenuItemID: line.MenuItemID().String(),
		UnitPrice:  line.UnitPrice(),
		Quantity:   line.Quantity(),
		Price:      line.Price(),
	}
}

func newOrderResponse(o *order.Order) OrderResponse {
	var crewID *string
	if id := o.DeliveryCrewID(); id != nil {
		s := id.String()
		crewID = &s
	}

	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			MenuItemID: item.MenuItemID().String(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
		})
	}

	return OrderResponse{
		ID:             o.ID().String(),
		CustomerID:     o.CustomerID().String(),
		DeliveryCrewID: crewID,
		Status:         o.Status().String(),
		Date:           o.Date(),
		Total:          o.Total(),
		Items:          items,
	}
}

func orderResponseFromQuery(resp queries.ListOrdersQueryResponse) OrderResponse {
	var crewID *string
	if id := resp.DeliveryCrewID; id != nil {
		s := id.String()
		crewID = &s
	}

	items := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}

	return OrderResponse{
		ID:             resp.ID.String(),
		CustomerID:     resp.CustomerID.String(),
		DeliveryCrewID: crewID,
		Status:         resp.Status,
		Date:           resp.Date,
		Total:          resp.Total,
		Items:          items,
	}
}
