package bootstrap

import (
	"issuance-engine/internal/pkg/config"

	"go.uber.org/fx"
)

func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
		fx.Provide(
			func(c config.Config) config.StoreConfig { return c.Store },
		),
	)
}
