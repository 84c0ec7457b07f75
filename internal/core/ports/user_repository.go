package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates and
// their group memberships.
type UserRepository interface {
	// Add persists a new user. Fails if the username is already taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user, including membership
	// changes. Membership writes are idempotent at the store level so
	// concurrent add/remove for the same (group, user) pair cannot lose
	// updates.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by unique identifier with memberships loaded.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user by username with memberships loaded.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
