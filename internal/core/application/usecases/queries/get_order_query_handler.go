package queries

import (
	"context"

	"gorm.io/gorm"

	"foodbank/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order, or an ObjectNotFoundError when no order has the
// given identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	aggregate, err := scanOrder(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	if !query.Actor().CanActFor(aggregate.Organization()) {
		return OrderResponse{}, errs.NewActionIsForbiddenError("read order for " + aggregate.Organization())
	}

	return NewOrderResponse(aggregate), nil
}
