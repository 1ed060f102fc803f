package booking

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Booking is a committed slot. The end of the interval is derived from the
// service duration and never stored. Admission creates bookings as pending;
// cancellation is the only mutation.
type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull"`
	ServiceID int64     `bun:"service_id,notnull"`
	StartAt   time.Time `bun:"start_at,notnull"`
	Status    Status    `bun:"status,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

func (b *Booking) BeforeAppendModel(_ context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok {
		if b.CreatedAt.IsZero() {
			b.CreatedAt = time.Now().UTC()
		}
	}
	return nil
}

func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}
