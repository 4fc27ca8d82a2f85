package queries

import (
	"context"

	"gorm.io/gorm"

	"foodbank/internal/core/domain/model/order"
	"foodbank/internal/core/domain/services"
	"foodbank/internal/pkg/errs"
)

// GetPickSheetQueryHandler builds the warehouse pick sheet from accepted
// orders in the requested range.
type GetPickSheetQueryHandler struct {
	db *gorm.DB
}

// NewGetPickSheetQueryHandler creates a handler for pick sheet reads.
func NewGetPickSheetQueryHandler(db *gorm.DB) GetPickSheetQueryHandler {
	return GetPickSheetQueryHandler{db: db}
}

// Handle returns one entry per calendar day of the range, in ascending date
// order, each holding that day's accepted orders.
func (h GetPickSheetQueryHandler) Handle(
	ctx context.Context,
	query GetPickSheetQuery,
) ([]PickSheetDayResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsAdmin() {
		return nil, errs.NewActionIsForbiddenError("read pick sheet")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status IN (?, ?, ?)
		AND pickup >= ?
		AND pickup < ?
		ORDER BY pickup
	`,
		order.Approved, order.Released, order.Completed,
		query.Start(), query.End().AddDate(0, 0, 1),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aggregates := make([]*order.Order, 0)
	for rows.Next() {
		aggregate, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		aggregates = append(aggregates, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sheet := services.BuildPickSheet(query.Start(), query.End(), aggregates)

	responses := make([]PickSheetDayResponse, 0, len(sheet))
	for _, day := range sheet {
		orders := make([]OrderResponse, 0, len(day.Orders))
		for _, aggregate := range day.Orders {
			orders = append(orders, NewOrderResponse(aggregate))
		}
		responses = append(responses, PickSheetDayResponse{Key: day.Key, Orders: orders})
	}

	return responses, nil
}
