package components

import (
	"nexus-booking/internal/handler"
	"nexus-booking/internal/handler/api"
	"nexus-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewServiceHandler,
		api.NewBookingHandler,
		api.NewUserHandler,
		api.NewAdminHandler,
		middleware.NewAdminAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
