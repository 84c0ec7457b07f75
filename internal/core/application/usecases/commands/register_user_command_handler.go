package commands

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"
)

// ErrUsernameIsTaken is returned when registration requests a username that
// already belongs to another account.
var ErrUsernameIsTaken = errors.New("username is already taken")

// PasswordHasher turns plain-text passwords into storable hashes. The
// concrete implementation lives in the auth package; the application layer
// only depends on this contract.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// RegisterUserCommandHandler creates new customer accounts.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command. Usernames are unique; a taken
// username is reported as a validation error.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if err == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("username", ErrUsernameIsTaken)
	}
	var notFound *errs.ObjectNotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	newUser, err := user.NewUser(kernel.NewUUID(), cmd.Username(), cmd.Email(), hash)
	if err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newUser, nil
}
