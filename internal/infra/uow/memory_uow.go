package uow

import (
	"context"
	"log/slog"
	"time"

	"issuance-engine/internal/infra/memstore"
	"issuance-engine/internal/pkg/config"
	"issuance-engine/internal/pkg/errs"
	"issuance-engine/internal/pkg/metrics"
	"issuance-engine/internal/usecase/shared"
)

const storeMemory = "memory"

type MemoryUoW struct {
	store      *memstore.Store
	maxRetries int
	base       time.Duration
	metrics    *metrics.Registry
}

func NewMemoryUoW(store *memstore.Store, cfg config.StoreConfig, m *metrics.Registry) *MemoryUoW {
	return &MemoryUoW{
		store:      store,
		maxRetries: cfg.MaxRetries,
		base:       cfg.RetryBase,
		metrics:    m,
	}
}

// Within re-runs fn on a fresh transaction whenever its read set went stale,
// including when fn itself failed: an error computed from stale reads says
// nothing about the current state.
func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	started := time.Now()
	defer func() { u.metrics.ObserveTx(storeMemory, started, err) }()

	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		mtx := u.store.Begin()
		err = fn(ctx, &memTx{tx: mtx, store: u.store})
		if err != nil {
			if !u.store.Stale(mtx) {
				return err
			}
		} else if err = u.store.Commit(mtx); err == nil {
			return nil
		}

		if attempt == u.maxRetries {
			break
		}
		u.metrics.RecordTxRetry(storeMemory)
		waitTime := calculateBackoff(attempt, u.base)
		slog.Debug("retrying memory transaction after conflict",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds())
		if err = sleepCtx(ctx, waitTime); err != nil {
			return err
		}
	}

	slog.Error("transaction failed after max retries", "attempts", u.maxRetries+1)
	return errs.Mark(memstore.ErrConflict, errMaxRetriesExceeded)
}

func (u *MemoryUoW) CommandReads() shared.CommandReads {
	return memstore.NewCommandReads(u.store, nil)
}

type memTx struct {
	tx    *memstore.Tx
	store *memstore.Store
}

func (t *memTx) Counters() shared.CounterRepository { return memstore.NewCounterRepository(t.tx) }
func (t *memTx) Coupons() shared.CouponRepository   { return memstore.NewCouponRepository(t.tx) }
func (t *memTx) Offers() shared.OfferRepository     { return memstore.NewOfferRepository(t.tx) }
func (t *memTx) Notifications() shared.NotificationRepository {
	return memstore.NewNotificationRepository(t.tx)
}
func (t *memTx) Reads() shared.CommandReads { return memstore.NewCommandReads(t.store, t.tx) }
