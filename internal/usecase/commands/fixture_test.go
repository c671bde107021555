//go:build unit

package commands_test

import (
	"testing"
	"time"

	"issuance-engine/internal/infra/memstore"
	"issuance-engine/internal/infra/uow"
	"issuance-engine/internal/pkg/clock"
	"issuance-engine/internal/pkg/config"
	"issuance-engine/internal/pkg/metrics"
	"issuance-engine/internal/usecase/commands"
	"issuance-engine/internal/usecase/queries"
	"issuance-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var baseTime = time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)

type fixture struct {
	store   *memstore.Store
	clock   *clock.MockClock
	metrics *metrics.Registry
	policy  commands.Policy

	coupons      commands.CouponCommands
	offers       commands.OfferCommands
	maintenance  commands.MaintenanceCommands
	couponReads  queries.CouponQueries
	offerReads   queries.OfferQueries
	operatorID   uuid.UUID
	customer     shared.CustomerSnapshot
	silentClient shared.CustomerSnapshot
}

func newFixture(t *testing.T, tweak ...func(*commands.Policy)) *fixture {
	t.Helper()
	cfg := config.NewTestConfig()
	// concurrent tests push many bodies through the same keys
	cfg.Store.MaxRetries = 200

	f := &fixture{
		store:   memstore.New(),
		clock:   clock.NewMockClock(baseTime),
		metrics: metrics.NewRegistry(false),
		policy:  commands.NewPolicy(cfg.Issuance),
	}
	for _, fn := range tweak {
		fn(&f.policy)
	}

	u := uow.NewMemoryUoW(f.store, cfg.Store, f.metrics)
	alloc := commands.NewSequenceAllocator()
	f.coupons = commands.NewCouponUseCase(u, alloc, f.clock, f.policy, f.metrics)
	f.offers = commands.NewOfferUseCase(u, alloc, f.clock, f.policy, f.metrics)
	f.maintenance = commands.NewMaintenanceUseCase(u, f.policy)
	f.couponReads = queries.NewCouponQueries(f.store, f.store, f.policy.CouponCeiling)
	f.offerReads = queries.NewOfferQueries(f.store)

	f.operatorID = uuid.New()
	f.customer = shared.CustomerSnapshot{ID: uuid.New(), Name: "Ferretería Central", Email: "compras@central.test"}
	f.silentClient = shared.CustomerSnapshot{ID: uuid.New(), Name: "Sin Correo", Email: ""}
	f.store.SeedCustomer(f.customer)
	f.store.SeedCustomer(f.silentClient)
	return f
}
