package services

import (
	"fmt"
	"time"

	"foodbank/internal/core/domain/model/order"
)

// DayKey formats a calendar day the way pick sheets and availability views
// are keyed: "M/D/YYYY" with no zero padding.
func DayKey(day time.Time) string {
	y, m, d := day.Date()
	return fmt.Sprintf("%d/%d/%d", int(m), d, y)
}

// PickSheetDay is one calendar day of a pick sheet: the day key and the
// accepted orders scheduled for pickup that day, in retrieval order.
type PickSheetDay struct {
	Key    string
	Day    time.Time
	Orders []*order.Order
}

// BuildPickSheet buckets accepted orders by calendar day across
// [start, end] inclusive.
//
// Every day in the range produces an entry, including days with no orders
// (empty list, never a missing key), the same never-drop-a-day policy the
// availability calendar follows. The walk steps by calendar days, not by
// 24-hour offsets, so a DST boundary cannot skip or duplicate a day.
// Orders outside the range or not in an accepted status are ignored;
// each qualifying order lands in exactly one bucket. No secondary sort is
// applied inside a bucket: ordering by pickup time is the caller's choice.
func BuildPickSheet(start, end time.Time, orders []*order.Order) []PickSheetDay {
	sy, sm, sd := start.Date()
	first := time.Date(sy, sm, sd, 0, 0, 0, 0, start.Location())
	ey, em, ed := end.Date()
	last := time.Date(ey, em, ed, 0, 0, 0, 0, end.Location())

	byDay := make(map[string][]*order.Order)
	for _, o := range orders {
		if !o.Status().IsAccepted() {
			continue
		}
		if o.Pickup().Before(first) || o.Pickup().After(last.AddDate(0, 0, 1)) {
			continue
		}
		key := DayKey(o.Pickup())
		byDay[key] = append(byDay[key], o)
	}

	sheet := make([]PickSheetDay, 0)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := DayKey(d)
		bucket := byDay[key]
		if bucket == nil {
			bucket = []*order.Order{}
		}
		sheet = append(sheet, PickSheetDay{Key: key, Day: d, Orders: bucket})
	}

	return sheet
}
