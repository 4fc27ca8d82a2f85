package commands

import (
	"context"
	"fmt"

	"foodbank/internal/core/ports"
	"foodbank/internal/pkg/errs"
)

// ApproveOrderCommandHandler moves a pending order to Approved and notifies
// the partner after the transition is committed.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewApproveOrderCommandHandler creates a handler for staff approvals.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle approves the order. A non-empty warning means the transition was
// committed but the notification could not be delivered; the caller decides
// how to surface it.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	if !cmd.Actor().IsAdmin() {
		return "", errs.NewActionIsForbiddenError("approve order")
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

	if err = aggregate.Approve(); err != nil {
		return "", err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	// The decision is already durable; a delivery failure must not undo it.
	if err = h.notifier.NotifyApproved(ctx, aggregate); err != nil {
		return fmt.Sprintf("order approved, but notification failed: %s", err), nil
	}

	return "", nil
}
