package queries

import (
	"errors"
	"time"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/pkg/errs"
	"foodbank/internal/pkg/guard"
)

var (
	ErrGetPickSheetQueryIsNotConstructed = errors.New(
		"GetPickSheetQuery must be created via NewGetPickSheetQuery constructor",
	)
)

// GetPickSheetQuery retrieves the warehouse pick sheet: accepted orders
// bucketed by pickup day across an inclusive date range. Staff only.
type GetPickSheetQuery struct {
	actor kernel.Actor
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewGetPickSheetQuery creates a pick sheet query for [start, end].
func NewGetPickSheetQuery(actor kernel.Actor, start, end time.Time) (GetPickSheetQuery, error) {
	if start.IsZero() {
		return GetPickSheetQuery{}, errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return GetPickSheetQuery{}, errs.NewValueIsRequiredError("end")
	}
	if end.Before(start) {
		return GetPickSheetQuery{}, errs.NewValueIsInvalidError("end is before start")
	}

	return GetPickSheetQuery{
		actor: actor,
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickSheetQuery) Validate() error {
	return q.guard.Validate(ErrGetPickSheetQueryIsNotConstructed)
}

// Actor returns the caller identity.
func (q GetPickSheetQuery) Actor() kernel.Actor {
	return q.actor
}

// Start returns the first day of the range.
func (q GetPickSheetQuery) Start() time.Time {
	return q.start
}

// End returns the last day of the range, inclusive.
func (q GetPickSheetQuery) End() time.Time {
	return q.end
}

// PickSheetDayResponse is one calendar day of the pick sheet. Orders is
// empty, never absent, for days without accepted orders.
type PickSheetDayResponse struct {
	Key    string          `json:"key"`
	Orders []OrderResponse `json:"orders"`
}
