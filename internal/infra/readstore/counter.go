package readstore

import (
	"context"

	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/infra"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/internal/pkg/pgconv"
	"issuance-engine/internal/usecase/queries"
)

//go:generate mockgen -source=counter.go -destination=../../../tests/mock/readstore/counter_mock.go -package=readstoremock

type CounterReadQueries interface {
	GetCounter(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCounterParams) (sqlc.Counters, error)
}

type CounterReadStore struct {
	queries CounterReadQueries
	db      sqlc.DBTX
}

func NewCounterReadStore(queries CounterReadQueries, db sqlc.DBTX) *CounterReadStore {
	return &CounterReadStore{
		queries: queries,
		db:      db,
	}
}

// CurrentCount reports 0 for a counter that was never created.
func (r *CounterReadStore) CurrentCount(ctx context.Context, key sequence.CounterKey) (int64, error) {
	row, err := r.queries.GetCounter(ctx, r.db, sqlc.GetCounterParams{
		Domain:    string(key.Domain),
		PeriodKey: key.Period,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read counter", err)
	}
	return row.Count, nil
}

var _ queries.CounterReadStore = (*CounterReadStore)(nil)
