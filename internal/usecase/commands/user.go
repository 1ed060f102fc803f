package commands

import (
	"context"
	"strings"

	"nexus-booking/internal/domain/user"
	"nexus-booking/internal/pkg/apperr"
)

type CreateUserInput struct {
	Alias string
	Seed  string
}

type UserCommands interface {
	CreateOrFetch(ctx context.Context, in CreateUserInput) (*user.User, error)
}

type userCommandsImpl struct {
	users UserRepository
}

func NewUserCommands(users UserRepository) UserCommands {
	return &userCommandsImpl{users: users}
}

// CreateOrFetch resolves a client identity. The same seed always yields the
// same user; repeat calls are deduplicated by the seed's unique constraint.
func (c *userCommandsImpl) CreateOrFetch(ctx context.Context, in CreateUserInput) (*user.User, error) {
	validAlias := strings.TrimSpace(in.Alias) != ""
	validSeed := strings.TrimSpace(in.Seed) != ""
	if !validAlias || !validSeed {
		return nil, apperr.New(apperr.KindValidation, map[string]any{
			"alias": validAlias,
			"seed":  validSeed,
		})
	}

	u, err := c.users.CreateOrFetch(ctx, &user.User{
		Alias: strings.TrimSpace(in.Alias),
		Seed:  strings.TrimSpace(in.Seed),
	})
	if err != nil {
		return nil, apperr.WrapInternal(err)
	}
	return u, nil
}
