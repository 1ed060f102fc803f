package bootstrap

import (
	"context"

	"nexus-booking/internal/infra/db"
	"nexus-booking/internal/pkg/config"

	"github.com/uptrace/bun"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*bun.DB, error) {
	bunDB, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return bunDB, nil
}
