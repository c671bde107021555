package components

import (
	"issuance-engine/internal/pkg/clock"
	"issuance-engine/internal/pkg/config"
	"issuance-engine/internal/usecase"
	"issuance-engine/internal/usecase/commands"
	"issuance-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewSequenceAllocator,
	func(cfg config.Config) commands.Policy {
		return commands.NewPolicy(cfg.Issuance)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCouponUseCase,
		commands.NewOfferUseCase,
		commands.NewMaintenanceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(coupons queries.CouponReadStore, counters queries.CounterReadStore, cfg config.Config) queries.CouponQueries {
			return queries.NewCouponQueries(coupons, counters, cfg.Issuance.CouponMonthlyCeiling)
		},
		queries.NewOfferQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
