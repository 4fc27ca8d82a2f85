package ports

import (
	"context"

	"foodbank/internal/core/domain/model/order"
)

// Notifier delivers outbound notifications for lifecycle decisions.
// Calls happen after the transition has been committed; a notifier error is
// surfaced to the caller as a warning and never rolls the transition back.
type Notifier interface {
	// NotifyApproved tells the partner and staff an order was approved.
	NotifyApproved(ctx context.Context, aggregate *order.Order) error

	// NotifyRejected tells the partner and staff an order was rejected.
	NotifyRejected(ctx context.Context, aggregate *order.Order) error

	// NotifyModifiedAndApproved tells both parties an order was edited by
	// staff and approved in the same step.
	NotifyModifiedAndApproved(ctx context.Context, aggregate *order.Order) error
}
