package commands

import (
	"context"

	"littlelemon/internal/pkg/errs"
)

// AddGroupMemberCommandHandler grants group membership to a user.
type AddGroupMemberCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewAddGroupMemberCommandHandler creates a handler for membership grants.
func NewAddGroupMemberCommandHandler(uowFactory UserUoWFactory) AddGroupMemberCommandHandler {
	return AddGroupMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the membership grant command. Granting a membership the
// user already holds is a no-op.
func (h *AddGroupMemberCommandHandler) Handle(ctx context.Context, cmd AddGroupMemberCommand) error {
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

	if err = member.AddToGroup(cmd.Group()); err != nil {
		return err
	}

	if err = uow.UserRepository().Update(ctx, member); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
