package queries

import (
	"context"

	"issuance-engine/internal/domain/coupon"
	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/infra"
	"issuance-engine/internal/pkg/errs"
)

var ErrCouponNotFound = errs.New("coupon not found")

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/queries/coupon_mock.go -package=queriesmock

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*CouponView, error)
	ListByPeriod(ctx context.Context, period, afterCode string, limit int32) ([]*CouponView, error)
}

type CounterReadStore interface {
	CurrentCount(ctx context.Context, key sequence.CounterKey) (int64, error)
}

type CouponQueries interface {
	GetByCode(ctx context.Context, code string) (*CouponView, error)
	ListByPeriod(ctx context.Context, period string, cursor *Cursor, limit int) ([]*CouponView, *Cursor, error)
	QuotaUsage(ctx context.Context, period string) (*QuotaUsage, error)
}

type couponQueriesImpl struct {
	coupons  CouponReadStore
	counters CounterReadStore
	ceiling  int64
}

func NewCouponQueries(coupons CouponReadStore, counters CounterReadStore, ceiling int64) CouponQueries {
	return &couponQueriesImpl{coupons: coupons, counters: counters, ceiling: ceiling}
}

func (q *couponQueriesImpl) GetByCode(ctx context.Context, code string) (*CouponView, error) {
	c, err := coupon.NewCode(code)
	if err != nil {
		return nil, err
	}
	view, err := q.coupons.FindByCode(ctx, c.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound(ErrCouponNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *couponQueriesImpl) ListByPeriod(ctx context.Context, period string, cursor *Cursor, limit int) ([]*CouponView, *Cursor, error) {
	key, err := sequence.NewCounterKey(sequence.DomainCoupons, period)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	after := ""
	if cursor != nil && cursor.After != "" {
		after, err = DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
	}

	rows, err := q.coupons.ListByPeriod(ctx, key.Period, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		next = &Cursor{After: EncodeAfterCursor(rows[limit-1].Code)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *couponQueriesImpl) QuotaUsage(ctx context.Context, period string) (*QuotaUsage, error) {
	key, err := sequence.NewCounterKey(sequence.DomainCoupons, period)
	if err != nil {
		return nil, err
	}
	issued, err := q.counters.CurrentCount(ctx, key)
	if err != nil {
		return nil, err
	}
	remaining := q.ceiling - issued
	if remaining < 0 {
		remaining = 0
	}
	return &QuotaUsage{Period: key.Period, Issued: issued, Ceiling: q.ceiling, Remaining: remaining}, nil
}
