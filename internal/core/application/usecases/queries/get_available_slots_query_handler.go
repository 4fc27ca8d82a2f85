package queries

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"foodbank/internal/core/domain/model/order"
	"foodbank/internal/core/domain/model/settings"
	"foodbank/internal/core/domain/services"
	"foodbank/internal/pkg/errs"
)

// GetAvailableSlotsQueryHandler computes the open pickup slots of the
// booking window from the settings document and the booked pickups.
type GetAvailableSlotsQueryHandler struct {
	db       *gorm.DB
	calendar *services.SlotCalendar
	now      func() time.Time
}

// NewGetAvailableSlotsQueryHandler creates a handler for availability reads.
// now supplies the current time; tests inject a fixed clock.
func NewGetAvailableSlotsQueryHandler(
	db *gorm.DB,
	calendar *services.SlotCalendar,
	now func() time.Time,
) GetAvailableSlotsQueryHandler {
	if now == nil {
		now = time.Now
	}
	return GetAvailableSlotsQueryHandler{db: db, calendar: calendar, now: now}
}

// Handle returns one entry per calendar day of the booking window, in
// ascending date order. Days with nothing open still appear with an empty
// times list.
func (h GetAvailableSlotsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableSlotsQuery,
) ([]DayAvailabilityResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	st, err := h.schedulingSettings(ctx)
	if err != nil {
		return nil, err
	}

	booked, err := h.bookedPickups(ctx)
	if err != nil {
		return nil, err
	}

	current, err := h.editingPickup(ctx, query)
	if err != nil {
		return nil, err
	}

	days := h.calendar.AvailableSlots(h.now(), st, booked, current)

	responses := make([]DayAvailabilityResponse, 0, len(days))
	for _, day := range days {
		times := make([]string, 0, len(day.Times))
		for _, tod := range day.Times {
			times = append(times, tod.String())
		}
		responses = append(responses, DayAvailabilityResponse{
			Key:   services.DayKey(day.Day),
			Times: times,
		})
	}

	return responses, nil
}

// schedulingSettings loads the scheduling fields of the singleton settings
// document. The category maxima and option lists do not affect availability
// and are not read here.
func (h GetAvailableSlotsQueryHandler) schedulingSettings(ctx context.Context) (settings.Settings, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			lead_time_days,
			advanced,
			disabled_dates
		FROM settings
		LIMIT 1
	`).Rows()
	if err != nil {
		return settings.Settings{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return settings.Settings{}, err
		}
		return settings.Settings{}, errs.NewObjectNotFoundError("settings", "singleton")
	}

	var (
		leadTimeDays int
		advanced     bool
		disabledRaw  []byte
	)
	if err = rows.Scan(&leadTimeDays, &advanced, &disabledRaw); err != nil {
		return settings.Settings{}, err
	}

	var disabledDates []time.Time
	if len(disabledRaw) > 0 {
		if err = json.Unmarshal(disabledRaw, &disabledDates); err != nil {
			return settings.Settings{}, err
		}
	}

	return settings.NewSettings(leadTimeDays, advanced, settings.Options{}, disabledDates)
}

// bookedPickups returns the pickups of orders that occupy a slot. Canceled
// and rejected orders free their slot; every other status keeps it.
func (h GetAvailableSlotsQueryHandler) bookedPickups(ctx context.Context) ([]time.Time, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT pickup
		FROM orders
		WHERE status IN (?, ?, ?, ?)
	`, order.Pending, order.Approved, order.Released, order.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	booked := make([]time.Time, 0)
	for rows.Next() {
		var pickup time.Time
		if err = rows.Scan(&pickup); err != nil {
			return nil, err
		}
		booked = append(booked, pickup)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return booked, nil
}

// editingPickup resolves the pickup of the order being rescheduled, if any.
// An unknown identifier is treated as no current slot rather than an error.
func (h GetAvailableSlotsQueryHandler) editingPickup(
	ctx context.Context,
	query GetAvailableSlotsQuery,
) (*time.Time, error) {
	if query.EditingOrderID() == nil {
		return nil, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT pickup
		FROM orders
		WHERE id = ?
	`, query.EditingOrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var pickup time.Time
	if err = rows.Scan(&pickup); err != nil {
		return nil, err
	}

	return &pickup, nil
}
