package commands

import (
	"context"
)

// PurgeStaleCartLinesCommandHandler deletes abandoned cart lines. It runs
// from the background cleanup job, never from a request path.
type PurgeStaleCartLinesCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewPurgeStaleCartLinesCommandHandler creates a handler for cart purges.
func NewPurgeStaleCartLinesCommandHandler(uowFactory CartUoWFactory) PurgeStaleCartLinesCommandHandler {
	return PurgeStaleCartLinesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and reports how many lines were
// deleted.
func (h *PurgeStaleCartLinesCommandHandler) Handle(ctx context.Context, cmd PurgeStaleCartLinesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.CartRepository().DeleteOlderThan(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
