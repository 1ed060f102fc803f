package user

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// User is a booking identity created lazily by the create-or-fetch flow.
// Seed is a client-supplied stable key; its unique constraint is what makes
// repeat identity creation idempotent.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Alias     string    `bun:"alias,notnull"`
	Seed      string    `bun:"seed,notnull,unique"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

func (u *User) BeforeAppendModel(_ context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok {
		if u.CreatedAt.IsZero() {
			u.CreatedAt = time.Now().UTC()
		}
	}
	return nil
}
