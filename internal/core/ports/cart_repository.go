package ports

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart lines.
// All operations are scoped to a single owning customer; ownership
// partitions the data, so no cross-customer coordination is needed.
type CartRepository interface {
	// Add persists a new cart line.
	Add(ctx context.Context, line *cart.CartLine) error

	// GetAllByCustomer retrieves all cart lines owned by the customer,
	// oldest first. Returns an empty slice for an empty cart.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*cart.CartLine, error)

	// GetAllByCustomerForUpdate retrieves the customer's cart lines under a
	// row-level write lock. Must run inside a transaction; a concurrent
	// checkout of the same cart blocks here until the first commits, then
	// reads the emptied cart.
	GetAllByCustomerForUpdate(ctx context.Context, customerID kernel.UUID) ([]*cart.CartLine, error)

	// DeleteAllByCustomer removes every cart line owned by the customer.
	// Idempotent: deleting an empty cart succeeds.
	DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error

	// DeleteOlderThan removes cart lines added before the cutoff across all
	// customers. Used by the cart cleanup job. Returns the number of lines
	// removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
