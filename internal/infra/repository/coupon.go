package repository

import (
	"context"

	"issuance-engine/internal/domain/coupon"
	"issuance-engine/internal/infra"
	"issuance-engine/internal/infra/repository/converter"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/internal/pkg/pgconv"
)

type CouponWriteQueries interface {
	GetCouponForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) error
	CreateCoupons(ctx context.Context, db sqlc.DBTX, arg []sqlc.CreateCouponsParams) (int64, error)
	UpdateCouponRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCouponRedemptionParams) (int64, error)
	DeleteCouponsByPeriod(ctx context.Context, db sqlc.DBTX, periodKey string) (int64, error)
	CountBatchCouponsByPeriod(ctx context.Context, db sqlc.DBTX, periodKey string) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CouponRepository) GetForUpdate(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponForUpdate(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock coupon", err)
	}

	c, err := coupon.FromSnapshot(converter.CouponSnapshotFromRow(row))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err)
	}
	return c, nil
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	if err := r.queries.CreateCoupon(ctx, r.db, converter.CouponToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

// CreateBatch uses COPY; any duplicate code aborts the whole batch.
func (r *CouponRepository) CreateBatch(ctx context.Context, cs []*coupon.Coupon) (int64, error) {
	if len(cs) == 0 {
		return 0, nil
	}
	n, err := r.queries.CreateCoupons(ctx, r.db, converter.CouponsToCopyParams(cs))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to copy coupon batch", err)
	}
	return n, nil
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	n, err := r.queries.UpdateCouponRedemption(ctx, r.db, converter.CouponToRedemptionParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) DeleteByPeriod(ctx context.Context, period string) (int64, error) {
	n, err := r.queries.DeleteCouponsByPeriod(ctx, r.db, period)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete coupons", err)
	}
	return n, nil
}

func (r *CouponRepository) CountBatchByPeriod(ctx context.Context, period string) (int64, error) {
	n, err := r.queries.CountBatchCouponsByPeriod(ctx, r.db, period)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count coupons", err)
	}
	return n, nil
}
