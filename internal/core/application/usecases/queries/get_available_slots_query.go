package queries

import (
	"errors"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/pkg/guard"
)

var (
	ErrGetAvailableSlotsQueryIsNotConstructed = errors.New(
		"GetAvailableSlotsQuery must be created via NewGetAvailableSlotsQuery constructor",
	)
)

// GetAvailableSlotsQuery retrieves the open pickup slots of the booking
// window. EditingOrderID, when set, names an order being rescheduled: its
// own slot stays on offer so saving without moving the pickup remains valid.
type GetAvailableSlotsQuery struct {
	actor          kernel.Actor
	editingOrderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableSlotsQuery creates an availability query.
// editingOrderID is optional; pass nil for a fresh booking.
func NewGetAvailableSlotsQuery(actor kernel.Actor, editingOrderID *kernel.UUID) (GetAvailableSlotsQuery, error) {
	if editingOrderID != nil {
		if err := editingOrderID.Validate(); err != nil {
			return GetAvailableSlotsQuery{}, err
		}
	}

	return GetAvailableSlotsQuery{
		actor:          actor,
		editingOrderID: editingOrderID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableSlotsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableSlotsQueryIsNotConstructed)
}

// Actor returns the caller identity.
func (q GetAvailableSlotsQuery) Actor() kernel.Actor {
	return q.actor
}

// EditingOrderID returns the order being rescheduled, or nil.
func (q GetAvailableSlotsQuery) EditingOrderID() *kernel.UUID {
	return q.editingOrderID
}

// DayAvailabilityResponse is one calendar day of the booking window with its
// still-open pickup times rendered for display, e.g. "10:00 AM". Times is
// empty, never absent, for days with no availability.
type DayAvailabilityResponse struct {
	Key   string   `json:"key"`
	Times []string `json:"times"`
}
