//go:build unit

package timeutil_test

import (
	"testing"
	"time"

	"nexus-booking/internal/pkg/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	t.Run("valid date yields midnight UTC", func(t *testing.T) {
		got, ok := timeutil.ParseCalendarDate("2025-01-06")
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), got)
	})

	invalid := []struct {
		name string
		text string
	}{
		{name: "day out of range", text: "2025-01-32"},
		{name: "month out of range", text: "2025-13-01"},
		{name: "rollover february", text: "2025-02-30"},
		{name: "unpadded day", text: "2025-1-6"},
		{name: "wrong separator", text: "2025/01/06"},
		{name: "trailing time", text: "2025-01-06T00:00"},
		{name: "empty", text: ""},
		{name: "garbage", text: "not-a-date"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := timeutil.ParseCalendarDate(tc.text)
			assert.False(t, ok)
		})
	}
}

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{name: "midnight", text: "00:00", want: 0, ok: true},
		{name: "ten o'clock", text: "10:00", want: 600, ok: true},
		{name: "last minute", text: "23:59", want: 1439, ok: true},
		{name: "hour out of range", text: "24:00", ok: false},
		{name: "minute out of range", text: "10:60", ok: false},
		{name: "unpadded", text: "9:30", ok: false},
		{name: "no separator", text: "0930", ok: false},
		{name: "with seconds", text: "10:00:00", ok: false},
		{name: "empty", text: "", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := timeutil.ParseClockTime(tc.text)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestMinuteOfDayUTC(t *testing.T) {
	assert.Equal(t, 600, timeutil.MinuteOfDayUTC(time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)))

	// Non-UTC timestamps are converted before the minute is taken.
	jst := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, 600, timeutil.MinuteOfDayUTC(time.Date(2025, 1, 6, 19, 0, 0, 0, jst)))
}

func TestDayOfWeekUTC(t *testing.T) {
	// 2025-01-06 is a Monday.
	assert.Equal(t, timeutil.Monday, timeutil.DayOfWeekUTC(time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, timeutil.Sunday, timeutil.DayOfWeekUTC(time.Date(2025, 1, 5, 23, 59, 0, 0, time.UTC)))

	// A late local evening can be the next UTC day.
	nyc := time.FixedZone("EST", -5*60*60)
	assert.Equal(t, timeutil.Tuesday, timeutil.DayOfWeekUTC(time.Date(2025, 1, 6, 22, 0, 0, 0, nyc)))
}

func TestDayBoundsUTC(t *testing.T) {
	start, end := timeutil.DayBoundsUTC(time.Date(2025, 1, 6, 10, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC), end)
}

func TestDayOfWeekIsValid(t *testing.T) {
	assert.True(t, timeutil.Monday.IsValid())
	assert.False(t, timeutil.DayOfWeek("funday").IsValid())
}
