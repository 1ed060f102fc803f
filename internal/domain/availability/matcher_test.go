//go:build unit

package availability_test

import (
	"testing"

	"nexus-booking/internal/domain/availability"
	"nexus-booking/internal/pkg/timeutil"

	"github.com/stretchr/testify/assert"
)

func window(day timeutil.DayOfWeek, start, end int, active bool) availability.Window {
	return availability.Window{
		ServiceID:   1,
		DayOfWeek:   day,
		StartMinute: start,
		EndMinute:   end,
		Active:      active,
	}
}

func TestFits(t *testing.T) {
	monday10to11 := []availability.Window{window(timeutil.Monday, 600, 660, true)}

	cases := []struct {
		name    string
		start   int
		end     int
		day     timeutil.DayOfWeek
		windows []availability.Window
		want    bool
	}{
		{name: "exact window", start: 600, end: 660, day: timeutil.Monday, windows: monday10to11, want: true},
		{name: "inside window", start: 610, end: 650, day: timeutil.Monday, windows: monday10to11, want: true},
		{name: "starts before window", start: 590, end: 650, day: timeutil.Monday, windows: monday10to11, want: false},
		{name: "ends after window", start: 610, end: 670, day: timeutil.Monday, windows: monday10to11, want: false},
		{name: "wrong day", start: 600, end: 660, day: timeutil.Tuesday, windows: monday10to11, want: false},
		{name: "inactive window never matches", start: 600, end: 660, day: timeutil.Monday,
			windows: []availability.Window{window(timeutil.Monday, 600, 660, false)}, want: false},
		{name: "no windows", start: 600, end: 660, day: timeutil.Monday, windows: nil, want: false},
		{
			name: "adjacent windows do not merge", start: 600, end: 720, day: timeutil.Monday,
			windows: []availability.Window{
				window(timeutil.Monday, 600, 660, true),
				window(timeutil.Monday, 660, 720, true),
			},
			want: false,
		},
		{
			name: "second window matches", start: 700, end: 710, day: timeutil.Monday,
			windows: []availability.Window{
				window(timeutil.Monday, 600, 660, true),
				window(timeutil.Monday, 660, 720, true),
			},
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, availability.Fits(tc.start, tc.end, tc.day, tc.windows))
		})
	}
}

// Widening a matching window must never turn a fitting candidate into a
// non-fitting one.
func TestFitsMonotonicity(t *testing.T) {
	const start, end = 610, 650

	base := window(timeutil.Monday, 600, 660, true)
	assert.True(t, availability.Fits(start, end, timeutil.Monday, []availability.Window{base}))

	for earlier := 0; earlier <= base.StartMinute; earlier += 60 {
		for later := base.EndMinute; later <= 1440; later += 60 {
			widened := window(timeutil.Monday, earlier, later, true)
			assert.True(t, availability.Fits(start, end, timeutil.Monday, []availability.Window{widened}),
				"window [%d,%d) should still contain [%d,%d)", earlier, later, start, end)
		}
	}
}
