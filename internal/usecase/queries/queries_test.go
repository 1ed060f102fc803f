//go:build unit

package queries

import (
	"context"
	"testing"
	"time"

	"nexus-booking/internal/domain/booking"
	"nexus-booking/internal/domain/service"
	"nexus-booking/internal/infra"
	"nexus-booking/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServiceStore struct {
	findFn func(ctx context.Context, id int64) (*service.Service, error)
	listFn func(ctx context.Context) ([]service.Service, error)
}

func (f *fakeServiceStore) FindByID(ctx context.Context, id int64) (*service.Service, error) {
	return f.findFn(ctx, id)
}

func (f *fakeServiceStore) ListActive(ctx context.Context) ([]service.Service, error) {
	return f.listFn(ctx)
}

type fakeBookingStore struct {
	listFn func(ctx context.Context, serviceID int64, dayStart, dayEnd time.Time) ([]booking.Booking, error)
}

func (f *fakeBookingStore) ListOnDay(ctx context.Context, serviceID int64, dayStart, dayEnd time.Time) ([]booking.Booking, error) {
	return f.listFn(ctx, serviceID, dayStart, dayEnd)
}

func TestServiceQueriesGet(t *testing.T) {
	t.Run("found service is returned", func(t *testing.T) {
		q := NewServiceQueries(&fakeServiceStore{findFn: func(_ context.Context, id int64) (*service.Service, error) {
			return &service.Service{ID: id, Name: "Servicio Demo"}, nil
		}})

		svc, err := q.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), svc.ID)
	})

	t.Run("missing row becomes NOT_FOUND", func(t *testing.T) {
		q := NewServiceQueries(&fakeServiceStore{findFn: func(_ context.Context, _ int64) (*service.Service, error) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "service not found", nil)
		}})

		_, err := q.Get(context.Background(), 99)
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.Equal(t, "service", apperr.DetailsOf(err)["target"])
	})

	t.Run("store failure is internal", func(t *testing.T) {
		q := NewServiceQueries(&fakeServiceStore{findFn: func(_ context.Context, _ int64) (*service.Service, error) {
			return nil, infra.NewRepoErr(infra.KindDBFailure, "connection reset", nil)
		}})

		_, err := q.Get(context.Background(), 7)
		require.Error(t, err)
		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	})
}

func TestBookingQueriesListOnDay(t *testing.T) {
	t.Run("queries the UTC bounds of the requested day", func(t *testing.T) {
		var gotStart, gotEnd time.Time
		q := NewBookingQueries(&fakeBookingStore{listFn: func(_ context.Context, _ int64, dayStart, dayEnd time.Time) ([]booking.Booking, error) {
			gotStart, gotEnd = dayStart, dayEnd
			return []booking.Booking{{ID: 1}}, nil
		}})

		rows, err := q.ListOnDay(context.Background(), 7, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), gotStart)
		assert.Equal(t, time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC), gotEnd)
	})

	t.Run("non-positive service id is rejected", func(t *testing.T) {
		q := NewBookingQueries(&fakeBookingStore{listFn: func(_ context.Context, _ int64, _, _ time.Time) ([]booking.Booking, error) {
			t.Fatal("store must not be queried for an invalid service id")
			return nil, nil
		}})

		_, err := q.ListOnDay(context.Background(), 0, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC))
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}
