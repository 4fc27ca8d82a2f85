package ports

import (
	"context"
	"time"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The implementation must enforce slot
	// exclusivity atomically: if another active order already holds the
	// same pickup timestamp, Add fails with a SlotIsTakenError and nothing
	// is written.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored state of an existing order.
	// Returns an ObjectNotFoundError if the order does not exist and a
	// SlotIsTakenError if a pickup change lands on an occupied slot.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByPickup retrieves the active (Pending, Approved, or
	// Released) orders booked at the exact pickup timestamp. Used as the
	// in-transaction conflict pre-check before Add.
	GetActiveByPickup(ctx context.Context, pickup time.Time) ([]*order.Order, error)

	// GetAllActive retrieves every active order. Used by the daily sweep.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
