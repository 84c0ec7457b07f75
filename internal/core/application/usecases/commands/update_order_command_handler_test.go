package commands_test

import (
	"testing"
	"time"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderFixture(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewOrderItem(kernel.NewUUID(), 2, 7.50)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), []order.OrderItem{item})
	require.NoError(t, err)
	return o
}

func userFixture(t *testing.T, groups ...user.Group) *user.User {
	t.Helper()
	u, err := user.RestoreUser(
		kernel.NewUUID(), "crew1", "crew1@example.com", "hash", false, groups,
	)
	require.NoError(t, err)
	return u
}

func TestUpdateOrderCommandHandler_Handle_AssignCrewAndStatus(t *testing.T) {
	ctx := t.Context()
	target := orderFixture(t)
	crew := userFixture(t, user.GroupDelivery)
	crewID := crew.ID()
	status := order.Delivered

	cmd, err := commands.NewUpdateOrderCommand(user.RoleManager, target.ID(), &crewID, &status)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, crewID).Return(crew, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, target.DeliveryCrewID())
	require.True(t, target.DeliveryCrewID().IsEqual(crewID))
	require.Equal(t, order.Delivered, target.Status())
	orderRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_CustomerRejectedByPolicy(t *testing.T) {
	ctx := t.Context()
	status := order.Delivered
	cmd, err := commands.NewUpdateOrderCommand(user.RoleCustomer, kernel.NewUUID(), nil, &status)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var rejected *errs.PolicyRejectedError
	require.ErrorAs(t, err, &rejected)

	// policy gate fires before any transaction work
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderCommandHandler_Handle_CrewNotFound(t *testing.T) {
	ctx := t.Context()
	target := orderFixture(t)
	crewID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(user.RoleAdministrator, target.ID(), &crewID, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockOrderUoW)
	notFound := errs.NewObjectNotFoundError("userId", crewID.String())
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, crewID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var targetErr *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &targetErr)
	require.Nil(t, target.DeliveryCrewID())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_NothingToUpdate(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(user.RoleManager, kernel.NewUUID(), nil, nil)
	require.ErrorIs(t, err, commands.ErrNothingToUpdate)
}
