// Package settings provides the read-only operational settings snapshot
// consumed by the ordering core: scheduling lead time, the basic/advanced
// ordering mode, per-category limits and option lists, and disabled
// calendar dates. The settings document itself is owned and edited outside
// this core.
package settings

import (
	"time"

	"foodbank/internal/pkg/errs"
)

// Settings is an immutable snapshot of the singleton settings document.
// Computations take it as an explicit parameter so they stay independent of
// ambient state.
type Settings struct {
	leadTimeDays int
	advanced     bool

	maxProduce int
	maxMeat    int
	maxVito    int
	maxDry     int

	meatOptions       []string
	vitoOptions       []string
	dryGoodOptions    []string
	retailRescueItems []string

	disabledDates []time.Time

	isConstructed bool
}

// Options carries the per-category configuration lists and maxima.
type Options struct {
	MaxProduce int
	MaxMeat    int
	MaxVito    int
	MaxDry     int

	MeatOptions       []string
	VitoOptions       []string
	DryGoodOptions    []string
	RetailRescueItems []string
}

// NewSettings creates a validated settings snapshot.
// Lead time and all maxima must be non-negative.
func NewSettings(leadTimeDays int, advanced bool, opts Options, disabledDates []time.Time) (Settings, error) {
	if leadTimeDays < 0 {
		return Settings{}, errs.NewValueIsInvalidError("leadTimeDays")
	}

	for _, m := range []int{opts.MaxProduce, opts.MaxMeat, opts.MaxVito, opts.MaxDry} {
		if m < 0 {
			return Settings{}, errs.NewValueIsInvalidError("category maximum")
		}
	}

	dates := make([]time.Time, len(disabledDates))
	copy(dates, disabledDates)

	return Settings{
		leadTimeDays:      leadTimeDays,
		advanced:          advanced,
		maxProduce:        opts.MaxProduce,
		maxMeat:           opts.MaxMeat,
		maxVito:           opts.MaxVito,
		maxDry:            opts.MaxDry,
		meatOptions:       opts.MeatOptions,
		vitoOptions:       opts.VitoOptions,
		dryGoodOptions:    opts.DryGoodOptions,
		retailRescueItems: opts.RetailRescueItems,
		disabledDates:     dates,
		isConstructed:     true,
	}, nil
}

// Validate reports whether the snapshot was created via NewSettings.
func (s Settings) Validate() error {
	if !s.isConstructed {
		return errs.NewValueIsRequiredError("settings must be created via NewSettings")
	}
	return nil
}

// LeadTimeDays returns the minimum number of days between "now" and the
// earliest bookable pickup slot.
func (s Settings) LeadTimeDays() int {
	return s.leadTimeDays
}

// Advanced reports whether new orders itemize their goods categories.
func (s Settings) Advanced() bool {
	return s.advanced
}

// MaxProduce returns the basic-mode ceiling for produce counts.
func (s Settings) MaxProduce() int { return s.maxProduce }

// MaxMeat returns the basic-mode ceiling for meat counts.
func (s Settings) MaxMeat() int { return s.maxMeat }

// MaxVito returns the basic-mode ceiling for vito pallet counts.
func (s Settings) MaxVito() int { return s.maxVito }

// MaxDry returns the basic-mode ceiling for dry-good counts.
func (s Settings) MaxDry() int { return s.maxDry }

// MeatOptions returns the advanced-mode item list for the meat category.
func (s Settings) MeatOptions() []string { return s.meatOptions }

// VitoOptions returns the advanced-mode item list for the vito category.
func (s Settings) VitoOptions() []string { return s.vitoOptions }

// DryGoodOptions returns the advanced-mode item list for dry goods.
func (s Settings) DryGoodOptions() []string { return s.dryGoodOptions }

// RetailRescueItems returns the configured retail-rescue item list.
func (s Settings) RetailRescueItems() []string { return s.retailRescueItems }

// DisabledDates returns a copy of the disabled calendar dates.
func (s Settings) DisabledDates() []time.Time {
	dates := make([]time.Time, len(s.disabledDates))
	copy(dates, s.disabledDates)
	return dates
}

// IsDateDisabled reports whether the given day is blocked for pickups.
// Comparison is at calendar-day granularity.
func (s Settings) IsDateDisabled(day time.Time) bool {
	y, m, d := day.Date()
	for _, disabled := range s.disabledDates {
		dy, dm, dd := disabled.Date()
		if y == dy && m == dm && d == dd {
			return true
		}
	}
	return false
}
