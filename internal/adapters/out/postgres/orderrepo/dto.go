// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and their database
// representation. The goods categories and the retail-rescue list are stored
// as jsonb documents; slot exclusivity is enforced by a partial unique index
// over the pickup column.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The partial unique index on pickup covers the active statuses
// only, so canceled and rejected orders free their slot while any live
// booking blocks a second insert at the same timestamp.
type OrderDTO struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Organization string       `gorm:"index"`
	Advanced     bool         ``
	Produce      CategoryDTO  `gorm:"type:jsonb"`
	Meat         CategoryDTO  `gorm:"type:jsonb"`
	Vito         CategoryDTO  `gorm:"type:jsonb"`
	Dry          CategoryDTO  `gorm:"type:jsonb"`
	RetailRescue LineItemsDTO `gorm:"type:jsonb"`
	Comment      string       ``
	Status       int          `gorm:"index"`
	Pickup       time.Time    `gorm:"uniqueIndex:idx_orders_active_pickup,where:status IN (1,2,3)"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one requested item within a jsonb document.
type LineItemDTO struct {
	Item    string `json:"item"`
	Comment string `json:"comment,omitempty"`
}

// CategoryDTO is the jsonb document stored per goods category. Exactly one
// of Count and Items is set, matching the order's basic/advanced mode.
type CategoryDTO struct {
	Count *int          `json:"count,omitempty"`
	Items []LineItemDTO `json:"items,omitempty"`
}

// Value serializes the category for a jsonb column.
func (c CategoryDTO) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan deserializes the category from a jsonb column.
func (c *CategoryDTO) Scan(value any) error {
	return scanJSON(value, c)
}

// LineItemsDTO is the jsonb document stored for the retail-rescue list.
type LineItemsDTO []LineItemDTO

// Value serializes the list for a jsonb column.
func (l LineItemsDTO) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]LineItemDTO{})
	}
	return json.Marshal(l)
}

// Scan deserializes the list from a jsonb column.
func (l *LineItemsDTO) Scan(value any) error {
	return scanJSON(value, l)
}

func scanJSON(value, dst any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	goods := aggregate.Goods()
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Organization: aggregate.Organization(),
		Advanced:     aggregate.Advanced(),
		Produce:      categoryFromDomain(goods.Produce),
		Meat:         categoryFromDomain(goods.Meat),
		Vito:         categoryFromDomain(goods.Vito),
		Dry:          categoryFromDomain(goods.Dry),
		RetailRescue: lineItemsFromDomain(aggregate.RetailRescue()),
		Comment:      aggregate.Comment(),
		Status:       int(aggregate.Status()),
		Pickup:       aggregate.Pickup(),
	}
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, so corrupt rows fail loudly instead of producing invalid
// aggregates.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var goods order.Goods
	for _, c := range []struct {
		src CategoryDTO
		dst *order.Category
	}{
		{dto.Produce, &goods.Produce},
		{dto.Meat, &goods.Meat},
		{dto.Vito, &goods.Vito},
		{dto.Dry, &goods.Dry},
	} {
		category, catErr := categoryToDomain(c.src, dto.Advanced)
		if catErr != nil {
			return nil, catErr
		}
		*c.dst = category
	}

	retailRescue := make([]order.LineItem, 0, len(dto.RetailRescue))
	for _, item := range dto.RetailRescue {
		retailRescue = append(retailRescue, order.LineItem{Item: item.Item, Comment: item.Comment})
	}

	return order.RestoreOrder(
		id,
		dto.Organization,
		dto.Advanced,
		goods,
		retailRescue,
		dto.Comment,
		order.Status(dto.Status),
		dto.Pickup,
	)
}

func categoryFromDomain(c order.Category) CategoryDTO {
	if c.Itemized() {
		items := c.Items()
		dto := CategoryDTO{Items: make([]LineItemDTO, 0, len(items))}
		for _, item := range items {
			dto.Items = append(dto.Items, LineItemDTO{Item: item.Item, Comment: item.Comment})
		}
		return dto
	}

	count := c.Count()
	return CategoryDTO{Count: &count}
}

func categoryToDomain(dto CategoryDTO, itemized bool) (order.Category, error) {
	if itemized {
		items := make([]order.LineItem, 0, len(dto.Items))
		for _, item := range dto.Items {
			items = append(items, order.LineItem{Item: item.Item, Comment: item.Comment})
		}
		return order.NewItemizedCategory(items)
	}

	count := 0
	if dto.Count != nil {
		count = *dto.Count
	}
	return order.NewCountCategory(count)
}

func lineItemsFromDomain(items []order.LineItem) LineItemsDTO {
	dto := make(LineItemsDTO, 0, len(items))
	for _, item := range items {
		dto = append(dto, LineItemDTO{Item: item.Item, Comment: item.Comment})
	}
	return dto
}
