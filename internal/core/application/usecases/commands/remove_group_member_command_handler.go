package commands

import (
	"context"

	"littlelemon/internal/pkg/errs"
)

// RemoveGroupMemberCommandHandler revokes group membership from a user.
type RemoveGroupMemberCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRemoveGroupMemberCommandHandler creates a handler for membership revokes.
func NewRemoveGroupMemberCommandHandler(uowFactory UserUoWFactory) RemoveGroupMemberCommandHandler {
	return RemoveGroupMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the membership revoke command. Revoking a membership the
// user does not hold is a no-op.
func (h *RemoveGroupMemberCommandHandler) Handle(ctx context.Context, cmd RemoveGroupMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.ActorRole().MayMutateGroup(cmd.Group()) {
		return errs.NewAccessForbiddenError("manage group membership")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	member, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if err != nil {
		return err
	}

	if err = member.RemoveFromGroup(cmd.Group()); err != nil {
		return err
	}

	if err = uow.UserRepository().Update(ctx, member); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
