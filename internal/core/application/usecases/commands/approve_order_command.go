package commands

import (
	"errors"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/pkg/guard"
)

var (
	ErrApproveOrderCommandIsNotConstructed = errors.New(
		"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
	)
)

// ApproveOrderCommand represents a staff decision to accept a pending order.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a validated approval command.
func NewApproveOrderCommand(actor kernel.Actor, orderID kernel.UUID) (ApproveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ApproveOrderCommand{}, err
	}

	return ApproveOrderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c ApproveOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to approve.
func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
