package commands

import (
	"context"
	"fmt"

	"foodbank/internal/core/ports"
	"foodbank/internal/pkg/errs"
)

// RejectOrderCommandHandler moves a pending order to Rejected and notifies
// the partner after the transition is committed. Rejection frees the pickup
// slot for other partners.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewRejectOrderCommandHandler creates a handler for staff rejections.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle rejects the order. A non-empty warning means the transition was
// committed but the notification could not be delivered.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	if !cmd.Actor().IsAdmin() {
		return "", errs.NewActionIsForbiddenError("reject order")
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

	if err = aggregate.Reject(); err != nil {
		return "", err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	if err = h.notifier.NotifyRejected(ctx, aggregate); err != nil {
		return fmt.Sprintf("order rejected, but notification failed: %s", err), nil
	}

	return "", nil
}
