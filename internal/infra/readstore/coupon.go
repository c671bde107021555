package readstore

import (
	"context"

	"issuance-engine/internal/infra"
	"issuance-engine/internal/infra/repository/converter"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/internal/pkg/pgconv"
	"issuance-engine/internal/usecase/queries"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/readstore/coupon_mock.go -package=readstoremock

type CouponReadQueries interface {
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	ListCouponsByPeriod(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCouponsByPeriodParams) ([]sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return queries.NewCouponView(converter.CouponSnapshotFromRow(row)), nil
}

// ListByPeriod pages by code; afterCode "" starts from the beginning.
func (r *CouponReadStore) ListByPeriod(ctx context.Context, period, afterCode string, limit int32) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListCouponsByPeriod(ctx, r.db, sqlc.ListCouponsByPeriodParams{
		PeriodKey: period,
		Code:      afterCode,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons by period", err)
	}

	views := make([]*queries.CouponView, len(rows))
	for i, row := range rows {
		views[i] = queries.NewCouponView(converter.CouponSnapshotFromRow(row))
	}
	return views, nil
}

var _ queries.CouponReadStore = (*CouponReadStore)(nil)
