package commands

import (
	"errors"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/core/domain/model/order"
	"foodbank/internal/pkg/guard"
)

var (
	ErrModifyAndApproveOrderCommandIsNotConstructed = errors.New(
		"ModifyAndApproveOrderCommand must be created via NewModifyAndApproveOrderCommand constructor",
	)
)

// ModifyAndApproveOrderCommand represents the staff decision to edit a
// pending order and approve the edited version in one step, so partners
// never see an intermediate state.
type ModifyAndApproveOrderCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID
	changes order.Changes

	guard guard.ConstructorGuard
}

// NewModifyAndApproveOrderCommand creates a validated staff edit-and-approve
// command.
func NewModifyAndApproveOrderCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	changes order.Changes,
) (ModifyAndApproveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ModifyAndApproveOrderCommand{}, err
	}

	if err := validateChanges(changes); err != nil {
		return ModifyAndApproveOrderCommand{}, err
	}

	return ModifyAndApproveOrderCommand{
		actor:   actor,
		orderID: orderID,
		changes: changes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ModifyAndApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrModifyAndApproveOrderCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c ModifyAndApproveOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to edit and approve.
func (c ModifyAndApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Changes returns the field patch.
func (c ModifyAndApproveOrderCommand) Changes() order.Changes {
	return c.changes
}
