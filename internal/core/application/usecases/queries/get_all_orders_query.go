package queries

import (
	"errors"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every order across all organizations for the
// staff dashboard. Staff only.
type GetAllOrdersQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for the full order list.
func NewGetAllOrdersQuery(actor kernel.Actor) GetAllOrdersQuery {
	return GetAllOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Actor returns the caller identity.
func (q GetAllOrdersQuery) Actor() kernel.Actor {
	return q.actor
}
