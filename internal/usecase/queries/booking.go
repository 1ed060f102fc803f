package queries

import (
	"context"
	"time"

	"nexus-booking/internal/domain/booking"
	"nexus-booking/internal/pkg/apperr"
	"nexus-booking/internal/pkg/timeutil"
)

type BookingReadStore interface {
	ListOnDay(ctx context.Context, serviceID int64, dayStart, dayEnd time.Time) ([]booking.Booking, error)
}

type BookingQueries interface {
	ListOnDay(ctx context.Context, serviceID int64, date time.Time) ([]booking.Booking, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// ListOnDay returns a service's non-cancelled bookings on the UTC calendar
// day containing date.
func (q *bookingQueriesImpl) ListOnDay(ctx context.Context, serviceID int64, date time.Time) ([]booking.Booking, error) {
	if serviceID <= 0 {
		return nil, apperr.New(apperr.KindValidation, map[string]any{"service_id": false})
	}

	dayStart, dayEnd := timeutil.DayBoundsUTC(date)
	rows, err := q.store.ListOnDay(ctx, serviceID, dayStart, dayEnd)
	if err != nil {
		return nil, apperr.WrapInternal(err)
	}
	return rows, nil
}
