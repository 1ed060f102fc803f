package components

import (
	repo_impl "nexus-booking/internal/infra/repository"
	"nexus-booking/internal/usecase/commands"
	"nexus-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewServiceRepository,
			fx.As(new(commands.ServiceRepository)),
			fx.As(new(queries.ServiceReadStore)),
		),
		fx.Annotate(
			repo_impl.NewAvailabilityRepository,
			fx.As(new(commands.AvailabilityRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
		),
	),
)
