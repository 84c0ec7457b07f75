package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its items. The same role
// visibility as ListOrdersQuery applies; an order outside the actor's scope
// reads as not found, never as someone else's data.
type GetOrderQuery struct {
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a role-scoped single order query.
func NewGetOrderQuery(orderID, actorID kernel.UUID, actorRole user.Role) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := actorID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if actorRole == user.RoleUnknown {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("actorRole")
	}

	return GetOrderQuery{
		orderID:   orderID,
		actorID:   actorID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the acting user's identifier.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the acting user's resolved role.
func (q GetOrderQuery) ActorRole() user.Role {
	return q.actorRole
}
