package repository

import (
	"context"

	"nexus-booking/internal/domain/service"

	"github.com/uptrace/bun"
)

type ServiceRepository struct {
	db *bun.DB
}

func NewServiceRepository(db *bun.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) FindByID(ctx context.Context, id int64) (*service.Service, error) {
	var svc service.Service
	err := r.db.NewSelect().
		Model(&svc).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, wrapPgErr("failed to find service by id", err)
	}
	return &svc, nil
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]service.Service, error) {
	var rows []service.Service
	err := r.db.NewSelect().
		Model(&rows).
		Where("active = TRUE").
		OrderExpr("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, wrapPgErr("failed to list active services", err)
	}
	return rows, nil
}

func (r *ServiceRepository) Create(ctx context.Context, svc *service.Service) (*service.Service, error) {
	if _, err := r.db.NewInsert().Model(svc).Exec(ctx); err != nil {
		return nil, wrapPgErr("failed to create service", err)
	}
	return svc, nil
}
