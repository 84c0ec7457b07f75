package queries_test

import (
	"context"
	"testing"
	"time"

	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderVisibilityQueryTestSuite exercises order listing and retrieval for
// every role over a shared fixture of two customers, one crew member, and
// three orders.
type OrderVisibilityQueryTestSuite struct {
	suite.Suite
	container   *postgrescontainer.PostgresContainer
	db          *gorm.DB
	listHandler queries.ListOrdersQueryHandler
	getHandler  queries.GetOrderQueryHandler

	customerA kernel.UUID
	customerB kernel.UUID
	crewID    kernel.UUID

	orderA1 kernel.UUID // customer A, assigned to crew
	orderA2 kernel.UUID // customer A, unassigned
	orderB1 kernel.UUID // customer B, unassigned
}

func (suite *OrderVisibilityQueryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.MembershipDTO{},
		&cartrepo.CartLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	suite.Require().NoError(err)

	suite.listHandler = queries.NewListOrdersQueryHandler(db)
	suite.getHandler = queries.NewGetOrderQueryHandler(db)

	suite.seedOrders(ctx, postgres.NewGormUnitOfWorkFactory(db))
}

func (suite *OrderVisibilityQueryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderVisibilityQueryTestSuite) seedOrders(ctx context.Context, factory *postgres.GormUnitOfWorkFactory) {
	suite.customerA = kernel.NewUUID()
	suite.customerB = kernel.NewUUID()
	suite.crewID = kernel.NewUUID()

	uow := factory.Create()

	item, err := order.NewOrderItem(kernel.NewUUID(), 2, 9.50)
	suite.Require().NoError(err)

	orderA1, err := order.NewOrder(kernel.NewUUID(), suite.customerA, time.Now(), []order.OrderItem{item})
	suite.Require().NoError(err)
	suite.Require().NoError(orderA1.AssignDeliveryCrew(suite.crewID))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, orderA1))
	suite.orderA1 = orderA1.ID()

	orderA2, err := order.NewOrder(kernel.NewUUID(), suite.customerA, time.Now(), []order.OrderItem{item})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, orderA2))
	suite.orderA2 = orderA2.ID()

	orderB1, err := order.NewOrder(kernel.NewUUID(), suite.customerB, time.Now(), []order.OrderItem{item})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, orderB1))
	suite.orderB1 = orderB1.ID()
}

func orderIDs(responses []queries.ListOrdersQueryResponse) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(responses))
	for _, r := range responses {
		ids = append(ids, r.ID)
	}
	return ids
}

func (suite *OrderVisibilityQueryTestSuite) TestHandle_Customer_SeesOwnOrdersOnly() {
	query, err := queries.NewListOrdersQuery(suite.customerA, user.RoleCustomer)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.ElementsMatch([]kernel.UUID{suite.orderA1, suite.orderA2}, orderIDs(result))
}

func (suite *OrderVisibilityQueryTestSuite) TestHandle_DeliveryCrew_SeesAssignedOrdersOnly() {
	query, err := queries.NewListOrdersQuery(suite.crewID, user.RoleDeliveryCrew)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.ElementsMatch([]kernel.UUID{suite.orderA1}, orderIDs(result))
	suite.Require().Len(result, 1)
	suite.Require().NotNil(result[0].DeliveryCrewID)
	suite.Equal(suite.crewID, *result[0].DeliveryCrewID)
}

func (suite *OrderVisibilityQueryTestSuite) TestHandle_Manager_SeesEveryOrder() {
	query, err := queries.NewListOrdersQuery(kernel.NewUUID(), user.RoleManager)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.ElementsMatch(
		[]kernel.UUID{suite.orderA1, suite.orderA2, suite.orderB1},
		orderIDs(result),
	)
}

func (suite *OrderVisibilityQueryTestSuite) TestHandle_ResponseCarriesItemsAndTotal() {
	query, err := queries.NewListOrdersQuery(suite.customerB, user.RoleCustomer)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].Items, 1)
	suite.Equal(2, result[0].Items[0].Quantity)
	suite.InDelta(9.50, result[0].Items[0].Price, 0.001)
	suite.InDelta(19.00, result[0].Total, 0.001)
	suite.Equal(order.Pending.String(), result[0].Status)
}

func (suite *OrderVisibilityQueryTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListOrdersQuery{}

	result, err := suite.listHandler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListOrdersQuery constructor")
}

func (suite *OrderVisibilityQueryTestSuite) TestGetOrder_OwnerRetrievesOrder() {
	query, err := queries.NewGetOrderQuery(suite.orderB1, suite.customerB, user.RoleCustomer)
	suite.Require().NoError(err)

	result, err := suite.getHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(suite.orderB1, result.ID)
	suite.Equal(suite.customerB, result.CustomerID)
}

func (suite *OrderVisibilityQueryTestSuite) TestGetOrder_ForeignOrderReadsAsNotFound() {
	query, err := queries.NewGetOrderQuery(suite.orderB1, suite.customerA, user.RoleCustomer)
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *OrderVisibilityQueryTestSuite) TestGetOrder_CrewRetrievesAssignedOrder() {
	query, err := queries.NewGetOrderQuery(suite.orderA1, suite.crewID, user.RoleDeliveryCrew)
	suite.Require().NoError(err)

	result, err := suite.getHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(suite.orderA1, result.ID)
}

func (suite *OrderVisibilityQueryTestSuite) TestGetOrder_AbsentOrderReadsAsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID(), user.RoleAdministrator)
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func TestOrderVisibilityQueryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderVisibilityQueryTestSuite))
}
