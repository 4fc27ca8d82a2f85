package commands

import (
	"errors"
	"time"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/core/domain/model/order"
	"foodbank/internal/pkg/errs"
	"foodbank/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a partner's request to submit a new pickup
// order. The organization, goods, and pickup slot are fixed at submission;
// the order always enters the lifecycle as Pending.
//
// Example:
//
//	actor, _ := kernel.NewActor("Community Fridge", false)
//	goods := order.Goods{Produce: produce, Meat: meat, Vito: vito, Dry: dry}
//	cmd, err := commands.NewCreateOrderCommand(
//	    actor, "Community Fridge", false, goods, nil, "back entrance", pickup)
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor        kernel.Actor
	organization string
	advanced     bool
	goods        order.Goods
	retailRescue []order.LineItem
	comment      string
	pickup       time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order submission command.
// The organization and pickup are required; the caller identity is carried
// for the handler's authorization check.
func NewCreateOrderCommand(
	actor kernel.Actor,
	organization string,
	advanced bool,
	goods order.Goods,
	retailRescue []order.LineItem,
	comment string,
	pickup time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		actor:    actor,
		advanced: advanced,
		goods:    goods,
		comment:  comment,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrganization(organization),
		cmd.setRetailRescue(retailRescue),
		cmd.setPickup(pickup),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Organization returns the submitting partner organization.
func (c CreateOrderCommand) Organization() string {
	return c.organization
}

// Advanced returns the ordering-mode snapshot for the new order.
func (c CreateOrderCommand) Advanced() bool {
	return c.advanced
}

// Goods returns the requested category values.
func (c CreateOrderCommand) Goods() order.Goods {
	return c.goods
}

// RetailRescue returns the requested retail-rescue items.
func (c CreateOrderCommand) RetailRescue() []order.LineItem {
	return c.retailRescue
}

// Comment returns the order-level note.
func (c CreateOrderCommand) Comment() string {
	return c.comment
}

// Pickup returns the requested pickup slot timestamp.
func (c CreateOrderCommand) Pickup() time.Time {
	return c.pickup
}

func (c *CreateOrderCommand) setOrganization(organization string) error {
	if organization == "" {
		return errs.NewValueIsRequiredError("organization")
	}
	c.organization = organization
	return nil
}

func (c *CreateOrderCommand) setRetailRescue(items []order.LineItem) error {
	for _, item := range items {
		if item.Item == "" {
			return errs.NewValueIsRequiredError("retail rescue item name")
		}
	}
	c.retailRescue = items
	return nil
}

func (c *CreateOrderCommand) setPickup(pickup time.Time) error {
	if pickup.IsZero() {
		return errs.NewValueIsRequiredError("pickup")
	}
	c.pickup = pickup
	return nil
}
