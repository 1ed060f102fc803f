//go:build unit

package commands

import (
	"context"
	"testing"

	"nexus-booking/internal/domain/availability"
	"nexus-booking/internal/domain/service"
	"nexus-booking/internal/infra"
	"nexus-booking/internal/pkg/apperr"
	"nexus-booking/internal/pkg/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateService(t *testing.T) {
	t.Run("valid input creates an active service", func(t *testing.T) {
		services := &fakeServiceRepo{createFn: func(_ context.Context, svc *service.Service) (*service.Service, error) {
			out := *svc
			out.ID = 1
			return &out, nil
		}}
		cmds := NewCatalogCommands(services, &fakeAvailabilityRepo{})

		created, err := cmds.CreateService(context.Background(), CreateServiceInput{
			Name:            "  Servicio Demo  ",
			Description:     "demo",
			DurationMinutes: 60,
		})

		require.NoError(t, err)
		assert.Equal(t, "Servicio Demo", created.Name)
		assert.True(t, created.Active)
	})

	t.Run("validation details", func(t *testing.T) {
		cases := []struct {
			name        string
			input       CreateServiceInput
			wantDetails map[string]any
		}{
			{
				name:        "blank name",
				input:       CreateServiceInput{Name: "   ", DurationMinutes: 60},
				wantDetails: map[string]any{"name": false, "duration_minutes": true},
			},
			{
				name:        "non-positive duration",
				input:       CreateServiceInput{Name: "ok", DurationMinutes: 0},
				wantDetails: map[string]any{"name": true, "duration_minutes": false},
			},
			{
				name:        "both invalid",
				input:       CreateServiceInput{},
				wantDetails: map[string]any{"name": false, "duration_minutes": false},
			},
		}

		cmds := NewCatalogCommands(&fakeServiceRepo{}, &fakeAvailabilityRepo{})
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := cmds.CreateService(context.Background(), tc.input)

				require.Error(t, err)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
				assert.Equal(t, tc.wantDetails, apperr.DetailsOf(err))
			})
		}
	})
}

func TestCreateWindow(t *testing.T) {
	validInput := CreateWindowInput{
		ServiceID: 1,
		DayOfWeek: "monday",
		StartTime: "10:00",
		EndTime:   "11:00",
	}

	newFixture := func() (*fakeServiceRepo, *fakeAvailabilityRepo) {
		services := &fakeServiceRepo{findFn: func(_ context.Context, _ int64) (*service.Service, error) {
			return testService(), nil
		}}
		avail := &fakeAvailabilityRepo{createFn: func(_ context.Context, w *availability.Window) (*availability.Window, error) {
			out := *w
			out.ID = 1
			return &out, nil
		}}
		return services, avail
	}

	t.Run("valid window is stored in minutes", func(t *testing.T) {
		cmds := NewCatalogCommands(newFixture())

		created, err := cmds.CreateWindow(context.Background(), validInput)

		require.NoError(t, err)
		assert.Equal(t, timeutil.Monday, created.DayOfWeek)
		assert.Equal(t, 600, created.StartMinute)
		assert.Equal(t, 660, created.EndMinute)
		assert.True(t, created.Active)
	})

	t.Run("validation details", func(t *testing.T) {
		cases := []struct {
			name        string
			mutate      func(in *CreateWindowInput)
			wantDetails map[string]any
		}{
			{
				name:        "unknown day",
				mutate:      func(in *CreateWindowInput) { in.DayOfWeek = "funday" },
				wantDetails: map[string]any{"day_of_week": false, "start_time": true, "end_time": true},
			},
			{
				name:        "unparseable start",
				mutate:      func(in *CreateWindowInput) { in.StartTime = "10am" },
				wantDetails: map[string]any{"day_of_week": true, "start_time": false, "end_time": false},
			},
			{
				name:        "end not after start",
				mutate:      func(in *CreateWindowInput) { in.EndTime = "10:00" },
				wantDetails: map[string]any{"day_of_week": true, "start_time": true, "end_time": false},
			},
			{
				name:        "hour out of range",
				mutate:      func(in *CreateWindowInput) { in.EndTime = "24:00" },
				wantDetails: map[string]any{"day_of_week": true, "start_time": true, "end_time": false},
			},
		}

		cmds := NewCatalogCommands(newFixture())
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				input := validInput
				tc.mutate(&input)
				_, err := cmds.CreateWindow(context.Background(), input)

				require.Error(t, err)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
				assert.Equal(t, tc.wantDetails, apperr.DetailsOf(err))
			})
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		services, avail := newFixture()
		services.findFn = func(_ context.Context, _ int64) (*service.Service, error) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "service not found", nil)
		}
		cmds := NewCatalogCommands(services, avail)

		_, err := cmds.CreateWindow(context.Background(), validInput)

		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.Equal(t, "service", apperr.DetailsOf(err)["target"])
	})

	t.Run("service vanishing between check and insert", func(t *testing.T) {
		services, avail := newFixture()
		avail.createFn = func(_ context.Context, _ *availability.Window) (*availability.Window, error) {
			return nil, infra.NewRepoErr(infra.KindForeignKeyViolated, "fk violated", nil)
		}
		cmds := NewCatalogCommands(services, avail)

		_, err := cmds.CreateWindow(context.Background(), validInput)

		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}
