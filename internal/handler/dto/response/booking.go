package response

import (
	"time"

	"nexus-booking/internal/domain/booking"
)

type BookingResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ServiceID int64     `json:"service_id"`
	StartAt   time.Time `json:"start_at"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingEnvelope struct {
	OK      bool            `json:"ok"`
	Booking BookingResponse `json:"booking"`
}

type BookingListEnvelope struct {
	OK       bool              `json:"ok"`
	Bookings []BookingResponse `json:"bookings"`
}

func FromBooking(b *booking.Booking) BookingEnvelope {
	return BookingEnvelope{OK: true, Booking: toBookingResponse(b)}
}

func FromBookings(bs []booking.Booking) BookingListEnvelope {
	out := make([]BookingResponse, len(bs))
	for i := range bs {
		out[i] = toBookingResponse(&bs[i])
	}
	return BookingListEnvelope{OK: true, Bookings: out}
}

func toBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		ServiceID: b.ServiceID,
		StartAt:   b.StartAt.UTC(),
		Status:    b.Status.String(),
		CreatedAt: b.CreatedAt.UTC(),
	}
}
