// Package services provides domain services that operate across the order
// aggregate and the settings snapshot:
//
//   - SlotCalendar: computes pickup availability over the booking window
//     and validates requested pickup slots
//   - BuildPickSheet: buckets accepted orders by calendar day for
//     fulfillment staff
//
// Both are pure: time and settings come in as parameters, which keeps the
// temporal logic unit-testable without a real clock.
package services
