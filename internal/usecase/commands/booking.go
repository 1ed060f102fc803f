package commands

import (
	"context"
	"time"

	"nexus-booking/internal/domain/availability"
	"nexus-booking/internal/domain/booking"
	"nexus-booking/internal/domain/service"
	"nexus-booking/internal/domain/user"
	"nexus-booking/internal/infra"
	"nexus-booking/internal/pkg/apperr"
	"nexus-booking/internal/pkg/clock"
	"nexus-booking/internal/pkg/timeutil"
)

const minutesPerDay = 24 * 60

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
	CreateOrFetch(ctx context.Context, u *user.User) (*user.User, error)
}

type ServiceRepository interface {
	FindByID(ctx context.Context, id int64) (*service.Service, error)
	Create(ctx context.Context, svc *service.Service) (*service.Service, error)
}

type AvailabilityRepository interface {
	ListActive(ctx context.Context, serviceID int64, day timeutil.DayOfWeek) ([]availability.Window, error)
	Create(ctx context.Context, w *availability.Window) (*availability.Window, error)
}

type BookingRepository interface {
	FindByID(ctx context.Context, id int64) (*booking.Booking, error)
	ListOnDay(ctx context.Context, serviceID int64, dayStart, dayEnd time.Time) ([]booking.Booking, error)
	Insert(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status booking.Status) (*booking.Booking, error)
}

type CreateBookingInput struct {
	UserID    int64
	ServiceID int64
	StartAt   string
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*booking.Booking, error)
	Cancel(ctx context.Context, bookingID int64) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	bookings     BookingRepository
	users        UserRepository
	services     ServiceRepository
	availability AvailabilityRepository
	clock        clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	users UserRepository,
	services ServiceRepository,
	avail AvailabilityRepository,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:     bookings,
		users:        users,
		services:     services,
		availability: avail,
		clock:        clk,
	}
}

// Create runs the admission pipeline: payload validation, entity lookups,
// availability match, overlap pre-check, then the insert whose slot
// constraint is the authoritative decision under concurrency. Each failing
// step short-circuits the rest.
func (c *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (*booking.Booking, error) {
	startAt, parseOK := parseStartAt(in.StartAt)
	validUser := in.UserID > 0
	validService := in.ServiceID > 0
	if !validUser || !validService || !parseOK {
		return nil, apperr.New(apperr.KindValidation, map[string]any{
			"user_id":    validUser,
			"service_id": validService,
			"start_at":   parseOK,
		})
	}

	if startAt.Before(c.clock.Now()) {
		return nil, apperr.New(apperr.KindValidation, map[string]any{"start_at": "past"})
	}

	// User and service are fetched concurrently; a missing user wins over a
	// missing service when both fail.
	type serviceResult struct {
		svc *service.Service
		err error
	}
	svcCh := make(chan serviceResult, 1)
	go func() {
		svc, err := c.services.FindByID(ctx, in.ServiceID)
		svcCh <- serviceResult{svc: svc, err: err}
	}()

	_, userErr := c.users.FindByID(ctx, in.UserID)
	svcRes := <-svcCh

	if userErr != nil {
		if infra.IsKind(userErr, infra.KindNotFound) {
			return nil, apperr.New(apperr.KindNotFound, map[string]any{"target": "user", "user_id": in.UserID})
		}
		return nil, apperr.WrapInternal(userErr)
	}
	if svcRes.err != nil {
		if infra.IsKind(svcRes.err, infra.KindNotFound) {
			return nil, apperr.New(apperr.KindNotFound, map[string]any{"target": "service", "service_id": in.ServiceID})
		}
		return nil, apperr.WrapInternal(svcRes.err)
	}

	svc := svcRes.svc
	if !svc.Active {
		return nil, apperr.New(apperr.KindValidation, map[string]any{"service_id": in.ServiceID, "active": false})
	}

	startMinute := timeutil.MinuteOfDayUTC(startAt)
	endMinute := startMinute + svc.DurationMinutes
	if endMinute > minutesPerDay {
		// Bookings may not cross a UTC day boundary.
		return nil, apperr.New(apperr.KindValidation, map[string]any{"start_at": "invalid window"})
	}

	day := timeutil.DayOfWeekUTC(startAt)
	windows, err := c.availability.ListActive(ctx, svc.ID, day)
	if err != nil {
		return nil, apperr.WrapInternal(err)
	}
	if !availability.Fits(startMinute, endMinute, day, windows) {
		return nil, apperr.New(apperr.KindConflict, map[string]any{"reason": "outside availability"})
	}

	dayStart, dayEnd := timeutil.DayBoundsUTC(startAt)
	existing, err := c.bookings.ListOnDay(ctx, svc.ID, dayStart, dayEnd)
	if err != nil {
		return nil, apperr.WrapInternal(err)
	}
	if booking.AnyOverlap(startMinute, endMinute, svc.DurationMinutes, existing) {
		return nil, apperr.New(apperr.KindConflict, map[string]any{"reason": "overlap"})
	}

	created, err := c.bookings.Insert(ctx, &booking.Booking{
		UserID:    in.UserID,
		ServiceID: svc.ID,
		StartAt:   startAt.UTC(),
		Status:    booking.StatusPending,
	})
	if err != nil {
		// The pre-checks above can race a concurrent admission for the same
		// slot; the slot constraint is the authority and its violation is an
		// ordinary conflict, not a failure.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, apperr.New(apperr.KindConflict, map[string]any{"target": "service_id,start_at"})
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, apperr.New(apperr.KindNotFound, map[string]any{"target": "reference"})
		}
		return nil, apperr.WrapInternal(err)
	}

	return created, nil
}

// Cancel marks a booking cancelled. Cancelling an already-cancelled booking
// is a no-op that returns the booking unchanged.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID int64) (*booking.Booking, error) {
	b, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, apperr.New(apperr.KindNotFound, map[string]any{"target": "booking", "booking_id": bookingID})
		}
		return nil, apperr.WrapInternal(err)
	}

	if b.IsCancelled() {
		return b, nil
	}

	updated, err := c.bookings.UpdateStatus(ctx, bookingID, booking.StatusCancelled)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, apperr.New(apperr.KindNotFound, map[string]any{"target": "booking", "booking_id": bookingID})
		}
		return nil, apperr.WrapInternal(err)
	}
	return updated, nil
}

func parseStartAt(text string) (time.Time, bool) {
	if text == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
