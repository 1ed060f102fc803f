package repository

import (
	"context"

	"nexus-booking/internal/domain/availability"
	"nexus-booking/internal/pkg/timeutil"

	"github.com/uptrace/bun"
)

type AvailabilityRepository struct {
	db *bun.DB
}

func NewAvailabilityRepository(db *bun.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) ListActive(ctx context.Context, serviceID int64, day timeutil.DayOfWeek) ([]availability.Window, error) {
	var rows []availability.Window
	err := r.db.NewSelect().
		Model(&rows).
		Where("service_id = ?", serviceID).
		Where("day_of_week = ?", day).
		Where("active = TRUE").
		OrderExpr("start_minute ASC").
		Scan(ctx)
	if err != nil {
		return nil, wrapPgErr("failed to list availability windows", err)
	}
	return rows, nil
}

func (r *AvailabilityRepository) Create(ctx context.Context, w *availability.Window) (*availability.Window, error) {
	if _, err := r.db.NewInsert().Model(w).Exec(ctx); err != nil {
		return nil, wrapPgErr("failed to create availability window", err)
	}
	return w, nil
}
