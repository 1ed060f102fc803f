package response

import (
	"time"

	"nexus-booking/internal/domain/user"
)

type UserResponse struct {
	ID        int64     `json:"id"`
	Alias     string    `json:"alias"`
	Seed      string    `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
}

type UserEnvelope struct {
	OK   bool         `json:"ok"`
	User UserResponse `json:"user"`
}

func FromUser(u *user.User) UserEnvelope {
	return UserEnvelope{
		OK: true,
		User: UserResponse{
			ID:        u.ID,
			Alias:     u.Alias,
			Seed:      u.Seed,
			CreatedAt: u.CreatedAt,
		},
	}
}
