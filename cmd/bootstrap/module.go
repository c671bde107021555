package bootstrap

import (
	"issuance-engine/cmd/bootstrap/components"
	"issuance-engine/internal/pkg/config"

	"go.uber.org/fx"
)

// Module assembles the application; the store driver decides which
// persistence graph is wired.
func Module(cfg config.Config) fx.Option {
	persistence := fx.Options(DBModule, components.PostgresPersistenceModule)
	if cfg.Store.Driver == config.StoreDriverMemory {
		persistence = components.MemoryPersistenceModule
	}

	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		MetricsModule,
		JWTModule,
		persistence,
		components.UseCaseModule,
		components.HandlerModule,
	)
}
