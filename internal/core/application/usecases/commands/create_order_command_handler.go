package commands

import (
	"context"
	"time"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/core/domain/model/order"
	"foodbank/internal/core/domain/services"
	"foodbank/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order submission:
// authorization, slot validation against the availability calendar, the
// in-transaction conflict check, and persistence.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	calendar   *services.SlotCalendar
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order submissions.
// now supplies the current time; tests inject a fixed clock.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	calendar *services.SlotCalendar,
	now func() time.Time,
) CreateOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calendar:   calendar,
		now:        now,
	}
}

// Handle processes the submission and returns the new order's identifier.
//
// The slot conflict check and the insert run in one transaction, and the
// repository's partial unique index backs the check, so two concurrent
// submissions for the same slot cannot both succeed.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if !cmd.Actor().CanActFor(cmd.Organization()) {
		return kernel.UUID{}, errs.NewActionIsForbiddenError("create order for " + cmd.Organization())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	st, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.calendar.EnsureBookable(h.now(), st, cmd.Pickup()); err != nil {
		return kernel.UUID{}, err
	}

	orderRepo := uow.OrderRepository()

	taken, err := orderRepo.GetActiveByPickup(ctx, cmd.Pickup())
	if err != nil {
		return kernel.UUID{}, err
	}
	if len(taken) > 0 {
		return kernel.UUID{}, errs.NewSlotIsTakenError(cmd.Pickup().Format("1/2/2006 3:04 PM"))
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Organization(),
		cmd.Advanced(),
		cmd.Goods(),
		cmd.RetailRescue(),
		cmd.Comment(),
		cmd.Pickup(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newOrder.ID(), nil
}
