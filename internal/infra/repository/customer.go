package repository

import (
	"context"

	"issuance-engine/internal/infra"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/internal/pkg/pgconv"
	"issuance-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerQueries interface {
	GetCustomer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Customers, error)
}

// CustomerReader is the read-only view of customers used by offer commands.
type CustomerReader struct {
	queries CustomerQueries
	db      sqlc.DBTX
}

func NewCustomerReader(queries CustomerQueries, db sqlc.DBTX) *CustomerReader {
	return &CustomerReader{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReader) CustomerByID(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	row, err := r.queries.GetCustomer(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get customer", err)
	}
	return &shared.CustomerSnapshot{
		ID:    row.ID,
		Name:  row.Name,
		Email: pgconv.StringFromPgtype(row.Email),
	}, nil
}

var (
	_ shared.CounterRepository      = (*CounterRepository)(nil)
	_ shared.CouponRepository       = (*CouponRepository)(nil)
	_ shared.OfferRepository        = (*OfferRepository)(nil)
	_ shared.NotificationRepository = (*NotificationRepository)(nil)
	_ shared.CommandReads           = (*CustomerReader)(nil)
)
