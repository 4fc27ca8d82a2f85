package commands

import (
	"context"
	"time"
)

// SweepOrdersCommandHandler advances active orders whose pickup time has
// arrived or is near: past-due orders are completed, orders inside the
// release window are released. Non-active orders are never touched, so
// running the sweep twice in a row is a no-op.
type SweepOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewSweepOrdersCommandHandler creates a handler for the daily sweep.
func NewSweepOrdersCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) SweepOrdersCommandHandler {
	if now == nil {
		now = time.Now
	}
	return SweepOrdersCommandHandler{uowFactory: uowFactory, now: now}
}

// Handle runs one sweep pass and returns the number of orders advanced.
func (h *SweepOrdersCommandHandler) Handle(ctx context.Context, cmd SweepOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	active, err := orderRepo.GetAllActive(ctx)
	if err != nil {
		return 0, err
	}

	now := h.now()
	advanced := 0

	for _, aggregate := range active {
		if !aggregate.AdvanceForPickup(now) {
			continue
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		advanced++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return advanced, nil
}
