package booking

import (
	"nexus-booking/internal/pkg/timeutil"
)

// Overlaps reports whether the half-open minute intervals [a1,a2) and
// [b1,b2) intersect. Intervals sharing only an endpoint do not overlap.
func Overlaps(a1, a2, b1, b2 int) bool {
	return a1 < b2 && b1 < a2
}

// AnyOverlap reports whether the candidate interval [startMinute, endMinute)
// intersects any of the existing same-day bookings, each of which spans
// durationMinutes from its start. All bookings belong to the same service,
// so a single duration applies.
func AnyOverlap(startMinute, endMinute, durationMinutes int, existing []Booking) bool {
	for _, b := range existing {
		bStart := timeutil.MinuteOfDayUTC(b.StartAt)
		if Overlaps(startMinute, endMinute, bStart, bStart+durationMinutes) {
			return true
		}
	}
	return false
}
