package repository

import (
	"context"

	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/infra"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/internal/pkg/pgconv"
)

type CounterWriteQueries interface {
	GetCounterForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCounterForUpdateParams) (sqlc.Counters, error)
	UpsertCounter(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCounterParams) error
}

type CounterRepository struct {
	queries CounterWriteQueries
	db      sqlc.DBTX
}

func NewCounterRepository(queries CounterWriteQueries, db sqlc.DBTX) *CounterRepository {
	return &CounterRepository{
		queries: queries,
		db:      db,
	}
}

// Get locks the counter row. A missing row is a fresh counter at zero; the
// first concurrent creator wins and the other transaction retries on 40001.
func (r *CounterRepository) Get(ctx context.Context, key sequence.CounterKey) (*sequence.Counter, error) {
	row, err := r.queries.GetCounterForUpdate(ctx, r.db, sqlc.GetCounterForUpdateParams{
		Domain:    string(key.Domain),
		PeriodKey: key.Period,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sequence.NewCounter(key), nil
		}
		return nil, infra.WrapRepoErr("failed to lock counter", err)
	}

	c, err := sequence.ReconstructCounter(key, row.Count)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt counter row", err)
	}
	return c, nil
}

func (r *CounterRepository) Save(ctx context.Context, c *sequence.Counter) error {
	err := r.queries.UpsertCounter(ctx, r.db, sqlc.UpsertCounterParams{
		Domain:    string(c.Key().Domain),
		PeriodKey: c.Key().Period,
		Count:     c.Count(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save counter", err)
	}
	return nil
}

func (r *CounterRepository) Reset(ctx context.Context, key sequence.CounterKey) error {
	if _, err := r.Get(ctx, key); err != nil {
		return err
	}
	return r.Save(ctx, sequence.NewCounter(key))
}
