package repository

import (
	"context"
	"time"

	"nexus-booking/internal/domain/booking"
	"nexus-booking/internal/infra"

	"github.com/uptrace/bun"
)

type BookingRepository struct {
	db *bun.DB
}

func NewBookingRepository(db *bun.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	var b booking.Booking
	err := r.db.NewSelect().
		Model(&b).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, wrapPgErr("failed to find booking by id", err)
	}
	return &b, nil
}

// ListOnDay returns the non-cancelled bookings for a service whose start
// falls inside [dayStart, dayEnd). Cancelled bookings are excluded on purpose:
// a freed slot is bookable again, and the partial unique index enforces the
// same rule at insert time.
func (r *BookingRepository) ListOnDay(ctx context.Context, serviceID int64, dayStart, dayEnd time.Time) ([]booking.Booking, error) {
	var rows []booking.Booking
	err := r.db.NewSelect().
		Model(&rows).
		Where("service_id = ?", serviceID).
		Where("start_at >= ?", dayStart).
		Where("start_at < ?", dayEnd).
		Where("status <> ?", booking.StatusCancelled).
		OrderExpr("start_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, wrapPgErr("failed to list bookings on day", err)
	}
	return rows, nil
}

// Insert persists a new booking. The bookings_slot_key partial unique index
// is the authoritative defense against racing admissions; its violation
// surfaces as KindDuplicateKey, a vanished user/service as
// KindForeignKeyViolated.
func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	if _, err := r.db.NewInsert().Model(b).Exec(ctx); err != nil {
		return nil, wrapPgErr("failed to insert booking", err)
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status booking.Status) (*booking.Booking, error) {
	res, err := r.db.NewUpdate().
		Model((*booking.Booking)(nil)).
		Set("status = ?", status).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, wrapPgErr("failed to update booking status", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, wrapPgErr("failed to read affected rows", err)
	}
	if affected == 0 {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found", nil)
	}

	return r.FindByID(ctx, id)
}
