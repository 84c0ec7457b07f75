// Package queries contains read-side operations. Query handlers bypass the
// domain model and read projections straight from the database, returning
// plain response structs shaped for the HTTP layer.
package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrListCartQueryIsNotConstructed = errors.New(
	"ListCartQuery must be created via NewListCartQuery constructor",
)

// ListCartQuery retrieves the requesting customer's cart lines.
type ListCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListCartQuery creates a query for the given customer's cart.
func NewListCartQuery(customerID kernel.UUID) (ListCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListCartQuery{}, err
	}

	return ListCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCartQuery) Validate() error {
	return q.guard.Validate(ErrListCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q ListCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// ListCartQueryResponse represents one cart line.
type ListCartQueryResponse struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	UnitPrice  float64
	Quantity   int
	Price      float64
}
