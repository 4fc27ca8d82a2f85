package commands

import (
	"context"
	"fmt"

	"foodbank/internal/core/ports"
	"foodbank/internal/pkg/errs"
)

// ModifyAndApproveOrderCommandHandler applies a staff edit and the approval
// in one transaction, then sends a single combined notification.
//
// Staff edits skip the availability calendar on purpose: staff resolve slot
// disputes with partners out of band and may place an order into a slot the
// calendar would not offer. The slot uniqueness constraint still holds.
type ModifyAndApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewModifyAndApproveOrderCommandHandler creates a handler for staff
// edit-and-approve decisions.
func NewModifyAndApproveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) ModifyAndApproveOrderCommandHandler {
	return ModifyAndApproveOrderCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle edits and approves the order. A non-empty warning means the
// transition was committed but the notification could not be delivered.
func (h *ModifyAndApproveOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ModifyAndApproveOrderCommand,
) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	if !cmd.Actor().IsAdmin() {
		return "", errs.NewActionIsForbiddenError("modify and approve order")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	if err = aggregate.ApplyChanges(cmd.Changes()); err != nil {
		return "", err
	}

	if err = aggregate.Approve(); err != nil {
		return "", err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	if err = h.notifier.NotifyModifiedAndApproved(ctx, aggregate); err != nil {
		return fmt.Sprintf("order modified and approved, but notification failed: %s", err), nil
	}

	return "", nil
}
