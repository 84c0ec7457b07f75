// Package http exposes the REST API over echo. Handlers translate wire
// contracts into commands and queries; all authorization decisions live in
// the application and domain layers, the handlers only carry the identity
// through.
package http

import (
	"errors"
	"net/http"
	"time"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/auth"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	RegisterUser      commands.RegisterUserCommandHandler
	AddCartLine       commands.AddCartLineCommandHandler
	ClearCart         commands.ClearCartCommandHandler
	PlaceOrder        commands.PlaceOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	AddGroupMember    commands.AddGroupMemberCommandHandler
	RemoveGroupMember commands.RemoveGroupMemberCommandHandler
	CreateCategory    commands.CreateCategoryCommandHandler
	CreateMenuItem    commands.CreateMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
	DeleteMenuItem    commands.DeleteMenuItemCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	ListCart         queries.ListCartQueryHandler
	ListOrders       queries.ListOrdersQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	ListCategories   queries.ListCategoriesQueryHandler
	ListMenuItems    queries.ListMenuItemsQueryHandler
	GetMenuItem      queries.GetMenuItemQueryHandler
	ListGroupMembers queries.ListGroupMembersQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	tokens *auth.TokenService
	hasher auth.BcryptHasher
	users  ports.UserRepository

	cmds CommandHandlers
	qrys QueryHandlers
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(
	tokens *auth.TokenService,
	hasher auth.BcryptHasher,
	users ports.UserRepository,
	cmds CommandHandlers,
	qrys QueryHandlers,
) *Server {
	return &Server{
		tokens: tokens,
		hasher: hasher,
		users:  users,
		cmds:   cmds,
		qrys:   qrys,
	}
}

// RegisterRoutes wires all routes onto the echo instance. Authenticated
// routes go through the provided middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, authMW *AuthMiddleware) {
	e.POST("/api/users", s.RegisterUser)
	e.POST("/api/token", s.IssueToken)
	e.GET("/api/categories", s.ListCategories)
	e.GET("/api/menu-items", s.ListMenuItems)
	e.GET("/api/menu-items/:id", s.GetMenuItem)

	authed := e.Group("/api", authMW.Require())
	authed.GET("/users/me", s.CurrentUser)
	authed.POST("/categories", s.CreateCategory)
	authed.POST("/menu-items", s.CreateMenuItem)
	authed.PUT("/menu-items/:id", s.UpdateMenuItem)
	authed.DELETE("/menu-items/:id", s.DeleteMenuItem)
	authed.GET("/cart/menu-items", s.ListCart)
	authed.POST("/cart/menu-items", s.AddCartLine)
	authed.DELETE("/cart/menu-items", s.ClearCart)
	authed.GET("/orders", s.ListOrders)
	authed.POST("/orders", s.PlaceOrder)
	authed.GET("/orders/:id", s.GetOrder)
	authed.PUT("/orders/:id", s.UpdateOrder)
	authed.GET("/groups/manager/all", s.ListManagers)
	authed.POST("/groups/manager/all", s.AddManager)
	authed.DELETE("/groups/manager/all", s.RemoveManager)
	authed.GET("/groups/delivery-crew/all", s.ListDeliveryCrew)
	authed.POST("/groups/delivery-crew/all", s.AddDeliveryCrew)
	authed.DELETE("/groups/delivery-crew/all", s.RemoveDeliveryCrew)
}

// RegisterUser handles POST /api/users - self-service registration.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(req.Username, req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.cmds.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newUserResponse(created))
}

// IssueToken handles POST /api/token - credentials for a bearer token.
func (s *Server) IssueToken(ctx echo.Context) error {
	var req TokenRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	subject, err := s.users.GetByUsername(ctx.Request().Context(), req.Username)
	if err != nil || !s.hasher.Check(subject.PasswordHash(), req.Password) {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}

	token, err := s.tokens.Generate(subject.ID().String(), subject.Username())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// CurrentUser handles GET /api/users/me.
func (s *Server) CurrentUser(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	subject, err := s.users.Get(ctx.Request().Context(), identity.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newUserResponse(subject))
}

// ListCategories handles GET /api/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	query := queries.NewListCategoriesQuery()

	categories, err := s.qrys.ListCategories.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		response = append(response, CategoryResponse{
			ID:    c.ID.String(),
			Title: c.Title,
			Slug:  c.Slug,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req CategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCategoryCommand(identity.Role, req.Title, req.Slug)
	if err != nil {
		return writeError(ctx, err)
	}

	category, err := s.cmds.CreateCategory.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newCategoryResponse(category))
}

// ListMenuItems handles GET /api/menu-items. An optional ?category=<uuid>
// filters by category.
func (s *Server) ListMenuItems(ctx echo.Context) error {
	var categoryID *kernel.UUID
	if raw := ctx.QueryParam("category"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid category filter")
		}
		categoryID = &id
	}

	query, err := queries.NewListMenuItemsQuery(categoryID)
	if err != nil {
		return writeError(ctx, err)
	}

	items, err := s.qrys.ListMenuItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, menuItemResponseFromQuery(item))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItem handles GET /api/menu-items/:id.
func (s *Server) GetMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	query, err := queries.NewGetMenuItemQuery(itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.qrys.GetMenuItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, menuItemResponseFromQuery(item))
}

// CreateMenuItem handles POST /api/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req MenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return badRequest(ctx, "Invalid category id")
	}

	cmd, err := commands.NewCreateMenuItemCommand(identity.Role, req.Title, req.Price, categoryID, req.Featured)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.cmds.CreateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newMenuItemResponse(item))
}

// UpdateMenuItem handles PUT /api/menu-items/:id - partial update.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	var req MenuItemUpdateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateMenuItemCommand(identity.Role, itemID, req.Title, req.Price, req.Featured)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.cmds.UpdateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newMenuItemResponse(item))
}

// DeleteMenuItem handles DELETE /api/menu-items/:id.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	cmd, err := commands.NewDeleteMenuItemCommand(identity.Role, itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cmds.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "menu item deleted"})
}

// ListCart handles GET /api/cart/menu-items.
func (s *Server) ListCart(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewListCartQuery(identity.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	lines, err := s.qrys.ListCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		response = append(response, CartLineResponse{
			ID:         line.ID.String(),
			MenuItemID: line.MenuItemID.String(),
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCartLine handles POST /api/cart/menu-items.
func (s *Server) AddCartLine(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req CartLineRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(req.MenuItemID)
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	cmd, err := commands.NewAddCartLineCommand(identity.UserID, menuItemID, req.Quantity, time.Now())
	if err != nil {
		return writeError(ctx, err)
	}

	line, err := s.cmds.AddCartLine.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newCartLineResponse(line))
}

// ClearCart handles DELETE /api/cart/menu-items.
func (s *Server) ClearCart(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	cmd, err := commands.NewClearCartCommand(identity.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cmds.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "cart cleared"})
}

// ListOrders handles GET /api/orders - role-scoped listing.
func (s *Server) ListOrders(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewListOrdersQuery(identity.UserID, identity.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.qrys.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponseFromQuery(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/orders - checkout. The order always belongs
// to the requesting user; an empty cart yields a 200 acknowledgement, not
// an error.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	crewID, status, err := parseOrderFields(req.DeliveryCrewID, req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(identity.UserID, time.Now(), crewID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.cmds.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	if result.Declined() {
		return ctx.JSON(http.StatusOK, Message{Message: "no item in cart"})
	}

	return ctx.JSON(http.StatusCreated, newOrderResponse(result.Order()))
}

// GetOrder handles GET /api/orders/:id - role-scoped retrieval.
func (s *Server) GetOrder(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, identity.UserID, identity.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.qrys.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(resp))
}

// UpdateOrder handles PUT /api/orders/:id - crew assignment and status
// changes. Customers are rejected by policy.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	crewID, status, err := parseOrderFields(req.DeliveryCrewID, req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(identity.Role, orderID, crewID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cmds.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "order updated"})
}

// ListManagers handles GET /api/groups/manager/all. Only administrators
// may inspect the manager group.
func (s *Server) ListManagers(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	if identity.Role != user.RoleAdministrator {
		return writeError(ctx, errs.NewAccessForbiddenError("list managers"))
	}

	return s.listGroupMembers(ctx, user.GroupManager)
}

// AddManager handles POST /api/groups/manager/all.
func (s *Server) AddManager(ctx echo.Context) error {
	return s.mutateGroup(ctx, user.GroupManager, true)
}

// RemoveManager handles DELETE /api/groups/manager/all.
func (s *Server) RemoveManager(ctx echo.Context) error {
	return s.mutateGroup(ctx, user.GroupManager, false)
}

// ListDeliveryCrew handles GET /api/groups/delivery-crew/all. Any
// authenticated user may see the crew roster.
func (s *Server) ListDeliveryCrew(ctx echo.Context) error {
	if _, ok := identityFrom(ctx); !ok {
		return unauthorized(ctx)
	}

	return s.listGroupMembers(ctx, user.GroupDelivery)
}

// AddDeliveryCrew handles POST /api/groups/delivery-crew/all.
func (s *Server) AddDeliveryCrew(ctx echo.Context) error {
	return s.mutateGroup(ctx, user.GroupDelivery, true)
}

// RemoveDeliveryCrew handles DELETE /api/groups/delivery-crew/all.
func (s *Server) RemoveDeliveryCrew(ctx echo.Context) error {
	return s.mutateGroup(ctx, user.GroupDelivery, false)
}

func (s *Server) listGroupMembers(ctx echo.Context, group user.Group) error {
	query, err := queries.NewListGroupMembersQuery(group)
	if err != nil {
		return writeError(ctx, err)
	}

	members, err := s.qrys.ListGroupMembers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]GroupMemberResponse, 0, len(members))
	for _, m := range members {
		response = append(response, GroupMemberResponse{
			ID:       m.ID.String(),
			Username: m.Username,
			Email:    m.Email,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) mutateGroup(ctx echo.Context, group user.Group, grant bool) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req GroupMemberRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reqCtx := ctx.Request().Context()
	if grant {
		cmd, err := commands.NewAddGroupMemberCommand(identity.Role, req.Username, group)
		if err != nil {
			return writeError(ctx, err)
		}
		if err = s.cmds.AddGroupMember.Handle(reqCtx, cmd); err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusCreated, Message{Message: "membership granted"})
	}

	cmd, err := commands.NewRemoveGroupMemberCommand(identity.Role, req.Username, group)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.cmds.RemoveGroupMember.Handle(reqCtx, cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Message{Message: "membership revoked"})
}

func parseOrderFields(rawCrewID, rawStatus *string) (*kernel.UUID, *order.Status, error) {
	var crewID *kernel.UUID
	if rawCrewID != nil {
		id, err := kernel.UUIDFromString(*rawCrewID)
		if err != nil {
			return nil, nil, err
		}
		crewID = &id
	}

	var status *order.Status
	if rawStatus != nil {
		s, err := order.StatusFromName(*rawStatus)
		if err != nil {
			return nil, nil, err
		}
		status = &s
	}

	return crewID, status, nil
}

func menuItemResponseFromQuery(item queries.ListMenuItemsQueryResponse) MenuItemResponse {
	return MenuItemResponse{
		ID:         item.ID.String(),
		Title:      item.Title,
		Price:      item.Price,
		CategoryID: item.CategoryID.String(),
		Featured:   item.Featured,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Authentication required",
	})
}

// writeError maps application errors onto the wire contract. Policy and
// access rejections both read as 403; the distinction stays in the message.
func writeError(ctx echo.Context, err error) error {
	var (
		notFound  *errs.ObjectNotFoundError
		forbidden *errs.AccessForbiddenError
		rejected  *errs.PolicyRejectedError
	)

	switch {
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &forbidden), errors.As(err, &rejected):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNothingToUpdate):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
