// Package queries contains read operations in the CQRS architecture.
// Query handlers read the database directly and return response structs;
// they never mutate state and bypass the unit of work.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/core/domain/model/order"
)

// orderColumns is the shared column list for order reads. Scan order must
// match scanOrder.
const orderColumns = `
	id,
	organization,
	advanced,
	produce,
	meat,
	vito,
	dry,
	retail_rescue,
	comment,
	status,
	pickup
`

// LineItemResponse is one requested item in an itemized category or the
// retail-rescue list.
type LineItemResponse struct {
	Item    string `json:"item"`
	Comment string `json:"comment,omitempty"`
}

// CategoryResponse is one goods category. Exactly one of Count and Items is
// meaningful, depending on the order's mode.
type CategoryResponse struct {
	Count *int               `json:"count,omitempty"`
	Items []LineItemResponse `json:"items,omitempty"`
}

// OrderResponse is the read model of a single order.
type OrderResponse struct {
	ID           kernel.UUID        `json:"id"`
	Organization string             `json:"organization"`
	Advanced     bool               `json:"advanced"`
	Produce      CategoryResponse   `json:"produce"`
	Meat         CategoryResponse   `json:"meat"`
	Vito         CategoryResponse   `json:"vito"`
	Dry          CategoryResponse   `json:"dry"`
	RetailRescue []LineItemResponse `json:"retailRescue"`
	Comment      string             `json:"comment,omitempty"`
	Status       string             `json:"status"`
	Pickup       time.Time          `json:"pickup"`
}

// NewOrderResponse maps an order aggregate to its read model.
func NewOrderResponse(aggregate *order.Order) OrderResponse {
	goods := aggregate.Goods()
	return OrderResponse{
		ID:           aggregate.ID(),
		Organization: aggregate.Organization(),
		Advanced:     aggregate.Advanced(),
		Produce:      newCategoryResponse(goods.Produce),
		Meat:         newCategoryResponse(goods.Meat),
		Vito:         newCategoryResponse(goods.Vito),
		Dry:          newCategoryResponse(goods.Dry),
		RetailRescue: newLineItemResponses(aggregate.RetailRescue()),
		Comment:      aggregate.Comment(),
		Status:       aggregate.Status().String(),
		Pickup:       aggregate.Pickup(),
	}
}

func newCategoryResponse(c order.Category) CategoryResponse {
	if c.Itemized() {
		items := newLineItemResponses(c.Items())
		if items == nil {
			items = []LineItemResponse{}
		}
		return CategoryResponse{Items: items}
	}
	count := c.Count()
	return CategoryResponse{Count: &count}
}

func newLineItemResponses(items []order.LineItem) []LineItemResponse {
	if items == nil {
		return nil
	}
	responses := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, LineItemResponse{Item: item.Item, Comment: item.Comment})
	}
	return responses
}

// categoryDoc mirrors the jsonb document stored per category column.
type categoryDoc struct {
	Count *int          `json:"count,omitempty"`
	Items []lineItemDoc `json:"items,omitempty"`
}

type lineItemDoc struct {
	Item    string `json:"item"`
	Comment string `json:"comment,omitempty"`
}

// scanOrder reads one row selected with orderColumns and restores the order
// aggregate, so query results go through the same field validation as
// command-side reads.
func scanOrder(rows *sql.Rows) (*order.Order, error) {
	var (
		id                                  uuid.UUID
		organization, comment               string
		advanced                            bool
		produce, meat, vito, dry, retailRaw []byte
		status                              int
		pickup                              time.Time
	)

	err := rows.Scan(
		&id,
		&organization,
		&advanced,
		&produce,
		&meat,
		&vito,
		&dry,
		&retailRaw,
		&comment,
		&status,
		&pickup,
	)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	var goods order.Goods
	for _, c := range []struct {
		raw []byte
		dst *order.Category
	}{
		{produce, &goods.Produce},
		{meat, &goods.Meat},
		{vito, &goods.Vito},
		{dry, &goods.Dry},
	} {
		category, catErr := decodeCategory(c.raw, advanced)
		if catErr != nil {
			return nil, catErr
		}
		*c.dst = category
	}

	retailRescue, err := decodeLineItems(retailRaw)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		orderID,
		organization,
		advanced,
		goods,
		retailRescue,
		comment,
		order.Status(status),
		pickup,
	)
}

func decodeCategory(raw []byte, itemized bool) (order.Category, error) {
	var doc categoryDoc
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return order.Category{}, err
		}
	}

	if itemized {
		items := make([]order.LineItem, 0, len(doc.Items))
		for _, item := range doc.Items {
			items = append(items, order.LineItem{Item: item.Item, Comment: item.Comment})
		}
		return order.NewItemizedCategory(items)
	}

	count := 0
	if doc.Count != nil {
		count = *doc.Count
	}
	return order.NewCountCategory(count)
}

func decodeLineItems(raw []byte) ([]order.LineItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var docs []lineItemDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, order.LineItem{Item: doc.Item, Comment: doc.Comment})
	}
	return items, nil
}
