package repository

import (
	"database/sql"
	"errors"

	"nexus-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repositories care about.
const (
	pgUniqueViolation    = "23505"
	pgForeignKeyViolated = "23503"
	pgExclusionViolation = "23P01"
)

// wrapPgErr classifies a driver error into a RepositoryError kind so the
// usecase layer never sees pgconn types.
func wrapPgErr(msg string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return infra.NewRepoErr(infra.KindNotFound, msg, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgExclusionViolation:
			return infra.NewRepoErr(infra.KindDuplicateKey, msg, err)
		case pgForeignKeyViolated:
			return infra.NewRepoErr(infra.KindForeignKeyViolated, msg, err)
		}
	}

	return infra.NewRepoErr(infra.KindDBFailure, msg, err)
}
