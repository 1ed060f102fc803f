package availability

import (
	"nexus-booking/internal/pkg/timeutil"

	"github.com/uptrace/bun"
)

// Window is a recurring weekly interval during which a service accepts
// bookings. Times are stored as minutes since midnight UTC; transport parses
// HH:MM strings before they reach this package.
type Window struct {
	bun.BaseModel `bun:"table:availability"`

	ID          int64              `bun:"id,pk,autoincrement"`
	ServiceID   int64              `bun:"service_id,notnull"`
	DayOfWeek   timeutil.DayOfWeek `bun:"day_of_week,notnull"`
	StartMinute int                `bun:"start_minute,notnull"`
	EndMinute   int                `bun:"end_minute,notnull"`
	Active      bool               `bun:"active,notnull"`
}
