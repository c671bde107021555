package components

import (
	"context"
	"log/slog"

	"issuance-engine/internal/infra/memstore"
	"issuance-engine/internal/infra/readstore"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/internal/infra/uow"
	"issuance-engine/internal/pkg/config"
	"issuance-engine/internal/usecase/queries"
	"issuance-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	baseOption,
	readstoreModule,
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Coupon
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CouponReadQueries)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		// Counter
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CounterReadQueries)),
		),
		fx.Annotate(
			readstore.NewCounterReadStore,
			fx.As(new(queries.CounterReadStore)),
		),
		// Offer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OfferReadQueries)),
		),
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
	),
)

var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		NewMemoryStore,
		fx.Annotate(
			uow.NewMemoryUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		func(s *memstore.Store) queries.CouponReadStore { return s },
		func(s *memstore.Store) queries.CounterReadStore { return s },
		func(s *memstore.Store) queries.OfferReadStore { return s },
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewMemoryStore(lc fx.Lifecycle, cfg config.StoreConfig) (*memstore.Store, error) {
	store := memstore.New()
	if cfg.SeedFile != "" {
		n, err := store.LoadSeed(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		slog.Info("memory store seeded", "customers", n, "file", cfg.SeedFile)
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			slog.Warn("memory store discarded; all issued data is lost on shutdown")
			return nil
		},
	})
	return store, nil
}
