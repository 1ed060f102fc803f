package repository

import (
	"context"
	"errors"

	"nexus-booking/internal/domain/user"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"
)

type UserRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var u user.User
	err := r.db.NewSelect().
		Model(&u).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, wrapPgErr("failed to find user by id", err)
	}
	return &u, nil
}

// CreateOrFetch inserts a user keyed by the client-supplied seed. A unique
// violation on the seed means the identity already exists; the existing row
// is returned instead.
func (r *UserRepository) CreateOrFetch(ctx context.Context, u *user.User) (*user.User, error) {
	_, err := r.db.NewInsert().Model(u).Exec(ctx)
	if err == nil {
		return u, nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		var existing user.User
		selectErr := r.db.NewSelect().
			Model(&existing).
			Where("seed = ?", u.Seed).
			Scan(ctx)
		if selectErr != nil {
			return nil, wrapPgErr("failed to fetch user by seed", selectErr)
		}
		return &existing, nil
	}

	return nil, wrapPgErr("failed to create user", err)
}
