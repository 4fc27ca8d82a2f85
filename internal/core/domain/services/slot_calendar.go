package services

import (
	"fmt"
	"time"

	"foodbank/internal/core/domain/model/settings"
	"foodbank/internal/pkg/errs"
)

// bookingWindowDays is the length of the booking window that opens after
// the configured lead time.
const bookingWindowDays = 14

// TimeOfDay is a pickup time within a day, drawn from one of the fixed
// daily templates.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// String renders the slot the way partners see it, e.g. "10:00 AM".
func (t TimeOfDay) String() string {
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "AM"
	if t.Hour >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, meridiem)
}

// On combines the time of day with a calendar day in that day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, day.Location())
}

// WeekdayTimes returns the pickup template for Tuesday through Friday:
// half-hour slots from 10:00 AM to 2:30 PM.
func WeekdayTimes() []TimeOfDay {
	return []TimeOfDay{
		{10, 0}, {10, 30}, {11, 0}, {11, 30},
		{12, 0}, {12, 30}, {13, 0}, {13, 30},
		{14, 0}, {14, 30},
	}
}

// WeekendTimes returns the Saturday pickup template:
// half-hour slots from 9:00 AM to 11:30 AM.
func WeekendTimes() []TimeOfDay {
	return []TimeOfDay{
		{9, 0}, {9, 30}, {10, 0}, {10, 30}, {11, 0}, {11, 30},
	}
}

// DayAvailability lists the still-bookable pickup times of one calendar
// day. Times is empty (never nil) for fully booked, disabled, or
// policy-excluded days; the day itself is always present so callers can
// render "no availability" instead of skipping a date.
type DayAvailability struct {
	Day   time.Time
	Times []TimeOfDay
}

// SlotCalendar computes pickup availability for the single shared calendar.
// It is a pure domain service: "now", the settings snapshot, and the booked
// slots are explicit inputs, so the calendar is testable without a real
// clock or store.
type SlotCalendar struct{}

// NewSlotCalendar creates the availability service.
func NewSlotCalendar() *SlotCalendar {
	return &SlotCalendar{}
}

// AvailableSlots returns, for every calendar day of the booking window,
// the template slots not yet taken by a booked pickup.
//
// The window runs from midnight of now+leadTime for bookingWindowDays,
// walked by calendar days so a DST shift neither skips nor duplicates a
// date. Days are ascending; slots keep template order. current, when
// non-nil, is the pickup of an order being edited: its own slot stays on
// offer so re-saving without moving the pickup remains valid.
func (c *SlotCalendar) AvailableSlots(
	now time.Time,
	st settings.Settings,
	booked []time.Time,
	current *time.Time,
) []DayAvailability {
	windowStart := c.windowStart(now, st)
	days := make([]DayAvailability, 0, bookingWindowDays+1)

	for d := windowStart; len(days) <= bookingWindowDays; d = d.AddDate(0, 0, 1) {
		days = append(days, DayAvailability{
			Day:   d,
			Times: c.openTimes(d, st, booked, current),
		})
	}

	return days
}

// EnsureBookable validates that a requested pickup timestamp is a legal
// slot: inside the booking window, on a bookable day, and matching the
// day's template. Conflicts with existing bookings are checked separately
// against the authoritative store.
func (c *SlotCalendar) EnsureBookable(now time.Time, st settings.Settings, pickup time.Time) error {
	windowStart := c.windowStart(now, st)
	windowEnd := windowStart.AddDate(0, 0, bookingWindowDays+1)

	if pickup.Before(windowStart) || !pickup.Before(windowEnd) {
		return errs.NewValueIsOutOfRangeError("pickup",
			pickup.Format("1/2/2006 3:04 PM"),
			windowStart.Format("1/2/2006"),
			windowStart.AddDate(0, 0, bookingWindowDays).Format("1/2/2006"),
		)
	}

	if c.isExcludedWeekday(pickup) {
		return errs.NewValueIsInvalidErrorWithCause("pickup",
			fmt.Errorf("no pickups on %s", pickup.Weekday()))
	}

	if st.IsDateDisabled(pickup) {
		return errs.NewValueIsInvalidErrorWithCause("pickup",
			fmt.Errorf("%s is disabled for pickups", pickup.Format("1/2/2006")))
	}

	for _, tod := range c.templateFor(pickup) {
		if tod.On(pickup).Equal(pickup) {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause("pickup",
		fmt.Errorf("%s is not a pickup time on %s", pickup.Format("3:04 PM"), pickup.Weekday()))
}

// windowStart normalizes now to midnight and applies the lead time.
func (c *SlotCalendar) windowStart(now time.Time, st settings.Settings) time.Time {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, st.LeadTimeDays())
}

// isExcludedWeekday reports whether the calendar never offers pickups on
// the day's weekday. Sundays and Mondays are closed.
func (c *SlotCalendar) isExcludedWeekday(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Sunday || wd == time.Monday
}

// templateFor picks the daily template: Saturday uses the weekend times,
// every other day the weekday times.
func (c *SlotCalendar) templateFor(day time.Time) []TimeOfDay {
	if day.Weekday() == time.Saturday {
		return WeekendTimes()
	}
	return WeekdayTimes()
}

func (c *SlotCalendar) openTimes(
	day time.Time,
	st settings.Settings,
	booked []time.Time,
	current *time.Time,
) []TimeOfDay {
	if c.isExcludedWeekday(day) || st.IsDateDisabled(day) {
		return []TimeOfDay{}
	}

	open := make([]TimeOfDay, 0)
	for _, tod := range c.templateFor(day) {
		slot := tod.On(day)
		if c.isTaken(slot, booked, current) {
			continue
		}
		open = append(open, tod)
	}

	return open
}

func (c *SlotCalendar) isTaken(slot time.Time, booked []time.Time, current *time.Time) bool {
	if current != nil && current.Equal(slot) {
		// The order being edited keeps its own slot on offer.
		return false
	}
	for _, b := range booked {
		if b.Equal(slot) {
			return true
		}
	}
	return false
}
