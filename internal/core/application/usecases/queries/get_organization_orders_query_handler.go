package queries

import (
	"context"

	"gorm.io/gorm"

	"foodbank/internal/pkg/errs"
)

// GetOrganizationOrdersQueryHandler reads one organization's order history,
// newest pickup first.
type GetOrganizationOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrganizationOrdersQueryHandler creates a handler for organization
// order history reads.
func NewGetOrganizationOrdersQueryHandler(db *gorm.DB) GetOrganizationOrdersQueryHandler {
	return GetOrganizationOrdersQueryHandler{db: db}
}

// Handle returns the organization's orders sorted by pickup descending.
func (h GetOrganizationOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrganizationOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().CanActFor(query.Organization()) {
		return nil, errs.NewActionIsForbiddenError("read orders for " + query.Organization())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE organization = ?
		ORDER BY pickup DESC
	`, query.Organization()).Rows()
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
