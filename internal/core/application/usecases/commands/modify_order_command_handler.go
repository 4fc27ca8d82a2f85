package commands

import (
	"context"
	"time"

	"foodbank/internal/core/domain/services"
	"foodbank/internal/pkg/errs"
)

// ModifyOrderCommandHandler applies a partner's edit to their own pending
// order. A changed pickup slot is validated against the availability
// calendar the same way a new submission is.
type ModifyOrderCommandHandler struct {
	uowFactory UoWFactory
	calendar   *services.SlotCalendar
	now        func() time.Time
}

// NewModifyOrderCommandHandler creates a handler for partner edits.
func NewModifyOrderCommandHandler(
	uowFactory UoWFactory,
	calendar *services.SlotCalendar,
	now func() time.Time,
) ModifyOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return ModifyOrderCommandHandler{
		uowFactory: uowFactory,
		calendar:   calendar,
		now:        now,
	}
}

// Handle applies the patch to the order.
func (h *ModifyOrderCommandHandler) Handle(ctx context.Context, cmd ModifyOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !cmd.Actor().CanActFor(aggregate.Organization()) {
		return errs.NewActionIsForbiddenError("modify order for " + aggregate.Organization())
	}

	changes := cmd.Changes()
	if changes.Pickup != nil && !changes.Pickup.Equal(aggregate.Pickup()) {
		st, settingsErr := uow.SettingsRepository().Get(ctx)
		if settingsErr != nil {
			return settingsErr
		}

		if err = h.calendar.EnsureBookable(h.now(), st, *changes.Pickup); err != nil {
			return err
		}

		taken, takenErr := orderRepo.GetActiveByPickup(ctx, *changes.Pickup)
		if takenErr != nil {
			return takenErr
		}
		for _, other := range taken {
			if !other.IsEqual(aggregate) {
				return errs.NewSlotIsTakenError(changes.Pickup.Format("1/2/2006 3:04 PM"))
			}
		}
	}

	if err = aggregate.ApplyChanges(changes); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
