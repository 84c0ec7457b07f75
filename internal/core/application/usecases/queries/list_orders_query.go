package queries

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders visible to the acting user. Visibility
// follows the role:
//
//	Administrator, Manager -> every order
//	DeliveryCrew           -> orders assigned to the actor
//	Customer               -> orders owned by the actor
type ListOrdersQuery struct {
	actorID   kernel.UUID
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a role-scoped order listing query.
func NewListOrdersQuery(actorID kernel.UUID, actorRole user.Role) (ListOrdersQuery, error) {
	if err := actorID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if actorRole == user.RoleUnknown {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("actorRole")
	}

	return ListOrdersQuery{
		actorID:   actorID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (q ListOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the acting user's resolved role.
func (q ListOrdersQuery) ActorRole() user.Role {
	return q.actorRole
}

// ListOrdersQueryResponse represents one order with its item snapshots.
type ListOrdersQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	DeliveryCrewID *kernel.UUID
	Status         string
	Date           time.Time
	Total          float64
	Items          []OrderItemResponse
}

// OrderItemResponse represents one order item snapshot.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Quantity   int
	Price      float64
}
