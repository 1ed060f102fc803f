// Package timeutil holds the calendar and clock parsing used by booking
// admission. All interpretation is UTC; local time never enters the core.
package timeutil

import (
	"time"
)

type DayOfWeek string

const (
	Sunday    DayOfWeek = "sunday"
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
)

var days = [7]DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func (d DayOfWeek) IsValid() bool {
	for _, day := range days {
		if d == day {
			return true
		}
	}
	return false
}

// ParseCalendarDate accepts a strict YYYY-MM-DD string and returns midnight
// UTC of that date. Calendrically invalid dates (day 32, month 13) are
// rejected rather than rolled over.
func ParseCalendarDate(text string) (time.Time, bool) {
	if len(text) != len("2006-01-02") {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", text, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseClockTime accepts a strict HH:MM string (00-23 hours, 00-59 minutes)
// and returns minutes since midnight.
func ParseClockTime(text string) (int, bool) {
	if len(text) != len("15:04") || text[2] != ':' {
		return 0, false
	}
	h, ok := twoDigits(text[0], text[1])
	if !ok || h > 23 {
		return 0, false
	}
	m, ok := twoDigits(text[3], text[4])
	if !ok || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// MinuteOfDayUTC returns hours*60+minutes of the UTC representation of t.
func MinuteOfDayUTC(t time.Time) int {
	utc := t.UTC()
	return utc.Hour()*60 + utc.Minute()
}

// DayOfWeekUTC returns the symbolic weekday of the UTC representation of t.
func DayOfWeekUTC(t time.Time) DayOfWeek {
	return days[int(t.UTC().Weekday())]
}

// DayBoundsUTC returns the [midnight, next midnight) interval of t's UTC
// calendar date.
func DayBoundsUTC(t time.Time) (time.Time, time.Time) {
	utc := t.UTC()
	start := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
