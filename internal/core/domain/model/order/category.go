package order

import (
	"fmt"

	"foodbank/internal/pkg/errs"
)

// LineItem is a single requested item within an itemized category or the
// retail-rescue list. Item is required; Comment is a free-text note.
type LineItem struct {
	Item    string
	Comment string
}

// Category is the value of one goods category (produce, meat, vito, dry) on
// an order. It is a tagged union: in basic ordering mode it holds a plain
// non-negative count, in advanced mode an ordered list of line items. The
// representation is fixed when the order is created and never reinterpreted.
type Category struct {
	count    int
	items    []LineItem
	itemized bool
}

// NewCountCategory creates a basic-mode category holding a plain count.
func NewCountCategory(count int) (Category, error) {
	if count < 0 {
		return Category{}, errs.NewValueIsInvalidErrorWithCause("category count",
			fmt.Errorf("%d is negative", count))
	}

	return Category{count: count}, nil
}

// NewItemizedCategory creates an advanced-mode category from line items.
// Every item must have a non-empty name. The slice is copied so the
// category stays immutable.
func NewItemizedCategory(items []LineItem) (Category, error) {
	for i, item := range items {
		if item.Item == "" {
			return Category{}, errs.NewValueIsRequiredError(fmt.Sprintf("item name at index %d", i))
		}
	}

	copied := make([]LineItem, len(items))
	copy(copied, items)
	return Category{items: copied, itemized: true}, nil
}

// Itemized reports whether the category holds line items (advanced mode)
// rather than a plain count.
func (c Category) Itemized() bool {
	return c.itemized
}

// Count returns the basic-mode count. Zero for itemized categories.
func (c Category) Count() int {
	return c.count
}

// Items returns a copy of the advanced-mode line items.
// Nil for count categories.
func (c Category) Items() []LineItem {
	if c.items == nil {
		return nil
	}
	copied := make([]LineItem, len(c.items))
	copy(copied, c.items)
	return copied
}

// IsEmpty reports whether the category requests nothing: a zero count or an
// empty item list.
func (c Category) IsEmpty() bool {
	if c.itemized {
		return len(c.items) == 0
	}
	return c.count == 0
}
