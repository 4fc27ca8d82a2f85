package queries

import (
	"context"

	"gorm.io/gorm"

	"foodbank/internal/pkg/errs"
)

// GetAllOrdersQueryHandler reads every order for the staff dashboard,
// newest pickup first.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for full order list reads.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns all orders sorted by pickup descending.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsAdmin() {
		return nil, errs.NewActionIsForbiddenError("read all orders")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY pickup DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]OrderResponse, 0)
	for rows.Next() {
		aggregate, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		responses = append(responses, NewOrderResponse(aggregate))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
