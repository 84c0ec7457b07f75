package cmd

import (
	httpadapter "littlelemon/internal/adapters/in/http"
	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/auth"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tokens     *auth.TokenService
	hasher     auth.BcryptHasher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	tokens, err := auth.NewTokenService(config.JWTSecret, config.TokenLifetime)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     tokens,
		hasher:     auth.NewBcryptHasher(),
	}, nil
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateAddCartLineCommandHandler() commands.AddCartLineCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartLineCommandHandler(f)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearCartCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeStaleCartLinesCommandHandler() commands.PurgeStaleCartLinesCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeStaleCartLinesCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddGroupMemberCommandHandler() commands.AddGroupMemberCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddGroupMemberCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveGroupMemberCommandHandler() commands.RemoveGroupMemberCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveGroupMemberCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateListCartQueryHandler() queries.ListCartQueryHandler {
	return queries.NewListCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListGroupMembersQueryHandler() queries.ListGroupMembersQueryHandler {
	return queries.NewListGroupMembersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires all handlers into the REST API server.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.tokens,
		c.hasher,
		c.userRepository(),
		httpadapter.CommandHandlers{
			RegisterUser:      c.CreateRegisterUserCommandHandler(),
			AddCartLine:       c.CreateAddCartLineCommandHandler(),
			ClearCart:         c.CreateClearCartCommandHandler(),
			PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
			UpdateOrder:       c.CreateUpdateOrderCommandHandler(),
			AddGroupMember:    c.CreateAddGroupMemberCommandHandler(),
			RemoveGroupMember: c.CreateRemoveGroupMemberCommandHandler(),
			CreateCategory:    c.CreateCreateCategoryCommandHandler(),
			CreateMenuItem:    c.CreateCreateMenuItemCommandHandler(),
			UpdateMenuItem:    c.CreateUpdateMenuItemCommandHandler(),
			DeleteMenuItem:    c.CreateDeleteMenuItemCommandHandler(),
		},
		httpadapter.QueryHandlers{
			ListCart:         c.CreateListCartQueryHandler(),
			ListOrders:       c.CreateListOrdersQueryHandler(),
			GetOrder:         c.CreateGetOrderQueryHandler(),
			ListCategories:   c.CreateListCategoriesQueryHandler(),
			ListMenuItems:    c.CreateListMenuItemsQueryHandler(),
			GetMenuItem:      c.CreateGetMenuItemQueryHandler(),
			ListGroupMembers: c.CreateListGroupMembersQueryHandler(),
		},
	)
}

// CreateAuthMiddleware wires token validation with a per-request user load,
// so role changes take effect without reissuing tokens.
func (c *CompositionRoot) CreateAuthMiddleware() *httpadapter.AuthMiddleware {
	return httpadapter.NewAuthMiddleware(c.tokens, c.userRepository())
}

// userRepository returns a repository bound to the connection pool rather
// than a transaction, for read paths that need no unit of work.
func (c *CompositionRoot) userRepository() *userrepo.GormUserRepository {
	return userrepo.NewGormUserRepository(c.gormDB, noopTracker{})
}

// noopTracker satisfies the repository's tracking hook outside a unit of
// work, where there is no transaction to associate aggregates with.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}
