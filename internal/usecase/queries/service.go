package queries

import (
	"context"

	"nexus-booking/internal/domain/service"
	"nexus-booking/internal/infra"
	"nexus-booking/internal/pkg/apperr"
)

type ServiceReadStore interface {
	FindByID(ctx context.Context, id int64) (*service.Service, error)
	ListActive(ctx context.Context) ([]service.Service, error)
}

type ServiceQueries interface {
	Get(ctx context.Context, id int64) (*service.Service, error)
	ListActive(ctx context.Context) ([]service.Service, error)
}

type serviceQueriesImpl struct {
	store ServiceReadStore
}

func NewServiceQueries(store ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{store: store}
}

func (q *serviceQueriesImpl) Get(ctx context.Context, id int64) (*service.Service, error) {
	svc, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, apperr.New(apperr.KindNotFound, map[string]any{"target": "service", "service_id": id})
		}
		return nil, apperr.WrapInternal(err)
	}
	return svc, nil
}

func (q *serviceQueriesImpl) ListActive(ctx context.Context) ([]service.Service, error) {
	rows, err := q.store.ListActive(ctx)
	if err != nil {
		return nil, apperr.WrapInternal(err)
	}
	return rows, nil
}
