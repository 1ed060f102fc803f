package db

import (
	"database/sql"
	"fmt"

	"nexus-booking/internal/pkg/config"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// Connect opens the bun handle over a pgx stdlib pool. The returned cleanup
// closes the underlying pool.
func Connect(cfg config.DBConfig) (*bun.DB, func(), error) {
	sqlDB, err := sql.Open("pgx", cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db := bun.NewDB(sqlDB, pgdialect.New())

	cleanup := func() {
		_ = db.Close()
	}

	return db, cleanup, nil
}
