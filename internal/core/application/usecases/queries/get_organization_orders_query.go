package queries

import (
	"errors"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/pkg/errs"
	"foodbank/internal/pkg/guard"
)

var (
	ErrGetOrganizationOrdersQueryIsNotConstructed = errors.New(
		"GetOrganizationOrdersQuery must be created via NewGetOrganizationOrdersQuery constructor",
	)
)

// GetOrganizationOrdersQuery retrieves the order history of one partner
// organization. Partners may only read their own history.
type GetOrganizationOrdersQuery struct {
	actor        kernel.Actor
	organization string

	guard guard.ConstructorGuard
}

// NewGetOrganizationOrdersQuery creates a query for one organization's
// orders.
func NewGetOrganizationOrdersQuery(actor kernel.Actor, organization string) (GetOrganizationOrdersQuery, error) {
	if organization == "" {
		return GetOrganizationOrdersQuery{}, errs.NewValueIsRequiredError("organization")
	}

	return GetOrganizationOrdersQuery{
		actor:        actor,
		organization: organization,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrganizationOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrganizationOrdersQueryIsNotConstructed)
}

// Actor returns the caller identity.
func (q GetOrganizationOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// Organization returns the requested organization name.
func (q GetOrganizationOrdersQuery) Organization() string {
	return q.organization
}
