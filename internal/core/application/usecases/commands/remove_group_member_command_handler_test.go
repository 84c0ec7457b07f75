package commands_test

import (
	"testing"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveGroupMemberCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	member := userFixture(t, user.GroupDelivery)
	cmd, err := commands.NewRemoveGroupMemberCommand(user.RoleManager, member.Username(), user.GroupDelivery)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUsername", mock.Anything, member.Username()).Return(member, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Update", mock.Anything, member).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveGroupMemberCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.False(t, member.IsMemberOf(user.GroupDelivery))
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveGroupMemberCommandHandler_Handle_DeliveryCrewForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemoveGroupMemberCommand(user.RoleDeliveryCrew, "someone", user.GroupDelivery)
	require.NoError(t, err)

	factory := new(MockUserUoWFactory)
	h := commands.NewRemoveGroupMemberCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var forbidden *errs.AccessForbiddenError
	require.ErrorAs(t, err, &forbidden)
	factory.AssertNotCalled(t, "Create")
}
