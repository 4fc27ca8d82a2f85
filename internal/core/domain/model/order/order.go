package order

import (
	"errors"
	"time"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// releaseWindow is how close a pickup must be before the daily sweep hands
// the order to fulfillment staff.
const releaseWindow = 72 * time.Hour

// Goods groups the four category values of an order. All four share the
// basic/advanced representation chosen when the order was placed.
type Goods struct {
	Produce Category
	Meat    Category
	Vito    Category
	Dry     Category
}

// Changes is a field patch applied to a Pending order by the modify
// operations. Nil fields are left untouched; non-nil fields replace the
// current value wholesale.
type Changes struct {
	Goods        *Goods
	RetailRescue *[]LineItem
	Comment      *string
	Pickup       *time.Time
}

// Order is the aggregate root of the ordering domain: a partner
// organization's request for goods, scheduled into a pickup slot and moved
// through its lifecycle by staff decisions and the daily sweep.
//
// Invariants:
//   - organization is immutable after creation
//   - the basic/advanced representation of the goods is fixed at creation
//   - status only changes through the transition methods
//   - pickup is always a concrete timestamp (date plus time of day)
//
// Orders are never deleted; terminal states are retained for history.
type Order struct {
	id           kernel.UUID
	organization string
	advanced     bool
	goods        Goods
	retailRescue []LineItem
	comment      string
	status       Status
	pickup       time.Time

	isConstructed bool
}

// NewOrder creates a partner submission in Pending status.
//
// Validation: the id must be constructed, organization non-empty, and
// pickup non-zero. Slot bookability and conflict checks are the caller's
// responsibility; the aggregate does not know the calendar.
func NewOrder(
	id kernel.UUID,
	organization string,
	advanced bool,
	goods Goods,
	retailRescue []LineItem,
	comment string,
	pickup time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		advanced:      advanced,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrganization(organization),
		order.setGoods(goods),
		order.setRetailRescue(retailRescue),
		order.setPickup(pickup),
	); err != nil {
		return nil, err
	}

	order.comment = comment
	return order, nil
}

// RestoreOrder reconstructs an order from persistence with its stored
// status. It runs the same field validation as NewOrder plus a status
// check, so corrupt rows surface as errors instead of invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	organization string,
	advanced bool,
	goods Goods,
	retailRescue []LineItem,
	comment string,
	status Status,
	pickup time.Time,
) (*Order, error) {
	order, err := NewOrder(id, organization, advanced, goods, retailRescue, comment, pickup)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	return order, nil
}

// Validate ensures the Order was created through a factory function.
// Called when aggregates cross the persistence boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Organization returns the submitting partner organization.
func (o *Order) Organization() string {
	return o.organization
}

// Advanced reports the ordering mode snapshot taken when the order was
// placed: true means the goods categories hold line items.
func (o *Order) Advanced() bool {
	return o.advanced
}

// Goods returns the four category values.
func (o *Order) Goods() Goods {
	return o.goods
}

// RetailRescue returns a copy of the retail-rescue line items.
func (o *Order) RetailRescue() []LineItem {
	copied := make([]LineItem, len(o.retailRescue))
	copy(copied, o.retailRescue)
	return copied
}

// Comment returns the order-level note.
func (o *Order) Comment() string {
	return o.comment
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Pickup returns the booked slot timestamp.
func (o *Order) Pickup() time.Time {
	return o.pickup
}

// Approve marks a Pending order as accepted by staff.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject marks a Pending order as declined by staff.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks a Pending order as withdrawn by the partner.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ApplyChanges applies a field patch to a Pending order. The organization
// and the advanced-mode snapshot are immutable and not part of Changes.
// Fails with a StateIsInvalidError once the order has left Pending.
func (o *Order) ApplyChanges(changes Changes) error {
	if _, err := o.status.Modify(); err != nil {
		return err
	}

	if changes.Goods != nil {
		if err := o.setGoods(*changes.Goods); err != nil {
			return err
		}
	}

	if changes.RetailRescue != nil {
		if err := o.setRetailRescue(*changes.RetailRescue); err != nil {
			return err
		}
	}

	if changes.Comment != nil {
		o.comment = *changes.Comment
	}

	if changes.Pickup != nil {
		if err := o.setPickup(*changes.Pickup); err != nil {
			return err
		}
	}

	return nil
}

// AdvanceForPickup applies the time-based sweep rules and reports whether
// the status changed:
//
//   - pickup in the past: the order is Completed
//   - pickup within the release window: a Pending or Approved order is
//     Released
//
// Past-due wins over "within the window". Orders outside the active
// statuses are never touched, which makes the sweep idempotent.
func (o *Order) AdvanceForPickup(now time.Time) bool {
	if !o.status.IsActive() {
		return false
	}

	if o.pickup.Before(now) {
		newStatus, err := o.status.Complete()
		if err != nil {
			return false
		}
		o.status = newStatus
		return true
	}

	if o.pickup.Sub(now) <= releaseWindow && o.status != Released {
		newStatus, err := o.status.Release()
		if err != nil {
			return false
		}
		o.status = newStatus
		return true
	}

	return false
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrganization(organization string) error {
	if organization == "" {
		return errs.NewValueIsRequiredError("organization")
	}
	o.organization = organization
	return nil
}

func (o *Order) setGoods(goods Goods) error {
	// The representation of every category must match the order's mode.
	for _, c := range []Category{goods.Produce, goods.Meat, goods.Vito, goods.Dry} {
		if c.Itemized() != o.advanced {
			return errs.NewValueIsInvalidError("category representation does not match ordering mode")
		}
	}
	o.goods = goods
	return nil
}

func (o *Order) setRetailRescue(items []LineItem) error {
	for _, item := range items {
		if item.Item == "" {
			return errs.NewValueIsRequiredError("retail rescue item name")
		}
	}
	copied := make([]LineItem, len(items))
	copy(copied, items)
	o.retailRescue = copied
	return nil
}

func (o *Order) setPickup(pickup time.Time) error {
	if pickup.IsZero() {
		return errs.NewValueIsRequiredError("pickup")
	}
	o.pickup = pickup
	return nil
}
