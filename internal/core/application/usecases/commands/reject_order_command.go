package commands

import (
	"errors"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/pkg/guard"
)

var (
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
)

// RejectOrderCommand represents a staff decision to decline a pending order.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a validated rejection command.
func NewRejectOrderCommand(actor kernel.Actor, orderID kernel.UUID) (RejectOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RejectOrderCommand{}, err
	}

	return RejectOrderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c RejectOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to reject.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
