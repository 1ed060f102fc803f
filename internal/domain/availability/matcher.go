package availability

import (
	"nexus-booking/internal/pkg/timeutil"
)

// Fits reports whether the half-open candidate interval [startMinute,
// endMinute) lies entirely inside at least one active window for day.
// Windows never merge: a candidate spanning two adjacent windows does not
// fit. The store query already filters by service and day; the day and
// active checks here keep the predicate safe against unfiltered input.
func Fits(startMinute, endMinute int, day timeutil.DayOfWeek, windows []Window) bool {
	for _, w := range windows {
		if !w.Active || w.DayOfWeek != day {
			continue
		}
		if w.StartMinute <= startMinute && endMinute <= w.EndMinute {
			return true
		}
	}
	return false
}
