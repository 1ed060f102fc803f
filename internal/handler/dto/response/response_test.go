//go:build unit

package response_test

import (
	"testing"
	"time"

	"nexus-booking/internal/domain/availability"
	"nexus-booking/internal/domain/booking"
	resdto "nexus-booking/internal/handler/dto/response"
	"nexus-booking/internal/pkg/timeutil"

	"github.com/google/go-cmp/cmp"
)

func TestFromBooking(t *testing.T) {
	in := &booking.Booking{
		ID:        42,
		UserID:    1,
		ServiceID: 7,
		StartAt:   time.Date(2025, 1, 6, 19, 0, 0, 0, time.FixedZone("JST", 9*3600)),
		Status:    booking.StatusPending,
		CreatedAt: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}

	expected := resdto.BookingEnvelope{
		OK: true,
		Booking: resdto.BookingResponse{
			ID:        42,
			UserID:    1,
			ServiceID: 7,
			StartAt:   time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC),
			Status:    "pending",
			CreatedAt: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	if diff := cmp.Diff(expected, resdto.FromBooking(in)); diff != "" {
		t.Errorf("BookingEnvelope mismatch (-want +got):\n%s", diff)
	}
}

func TestFromWindow(t *testing.T) {
	in := &availability.Window{
		ID:          3,
		ServiceID:   7,
		DayOfWeek:   timeutil.Monday,
		StartMinute: 600,
		EndMinute:   1439,
		Active:      true,
	}

	expected := resdto.WindowEnvelope{
		OK: true,
		Window: resdto.WindowResponse{
			ID:        3,
			ServiceID: 7,
			DayOfWeek: "monday",
			StartTime: "10:00",
			EndTime:   "23:59",
			Active:    true,
		},
	}

	if diff := cmp.Diff(expected, resdto.FromWindow(in)); diff != "" {
		t.Errorf("WindowEnvelope mismatch (-want +got):\n%s", diff)
	}
}

func TestFromBookingsEmpty(t *testing.T) {
	got := resdto.FromBookings(nil)
	if got.Bookings == nil {
		t.Error("Bookings must serialize as [], not null")
	}
}
