package commands

import (
	"errors"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/core/domain/model/order"
	"foodbank/internal/pkg/errs"
	"foodbank/internal/pkg/guard"
)

var (
	ErrModifyOrderCommandIsNotConstructed = errors.New(
		"ModifyOrderCommand must be created via NewModifyOrderCommand constructor",
	)
)

// ModifyOrderCommand represents a partner's request to edit their own
// pending order. Only the fields present in the patch are touched; the
// order stays Pending afterwards.
type ModifyOrderCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID
	changes order.Changes

	guard guard.ConstructorGuard
}

// NewModifyOrderCommand creates a validated partner-edit command.
func NewModifyOrderCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	changes order.Changes,
) (ModifyOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ModifyOrderCommand{}, err
	}

	if err := validateChanges(changes); err != nil {
		return ModifyOrderCommand{}, err
	}

	return ModifyOrderCommand{
		actor:   actor,
		orderID: orderID,
		changes: changes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ModifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrModifyOrderCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c ModifyOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to edit.
func (c ModifyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Changes returns the field patch.
func (c ModifyOrderCommand) Changes() order.Changes {
	return c.changes
}

// validateChanges checks the parts of a patch that can be rejected without
// loading the order. Mode-dependent checks stay in the aggregate.
func validateChanges(changes order.Changes) error {
	if changes.Pickup != nil && changes.Pickup.IsZero() {
		return errs.NewValueIsRequiredError("pickup")
	}

	if changes.RetailRescue != nil {
		for _, item := range *changes.RetailRescue {
			if item.Item == "" {
				return errs.NewValueIsRequiredError("retail rescue item name")
			}
		}
	}

	return nil
}
