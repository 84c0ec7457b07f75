package commands_test

import (
	"testing"
	"time"

	"littlelemon/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPurgeStaleCartLinesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().Add(-24 * time.Hour)
	cmd, err := commands.NewPurgeStaleCartLinesCommand(cutoff)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("DeleteOlderThan", mock.Anything, cutoff).Return(int64(7), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurgeStaleCartLinesCommandHandler(factory)
	purged, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.EqualValues(t, 7, purged)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPurgeStaleCartLinesCommand_RequiresCutoff(t *testing.T) {
	_, err := commands.NewPurgeStaleCartLinesCommand(time.Time{})
	require.Error(t, err)
}
