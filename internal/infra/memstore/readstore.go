package memstore

import (
	"context"

	"issuance-engine/internal/domain/coupon"
	"issuance-engine/internal/domain/offer"
	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/infra"
	"issuance-engine/internal/usecase/queries"
	"issuance-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read-side views over committed state.

func (s *Store) FindByCode(_ context.Context, code string) (*queries.CouponView, error) {
	r, ok := s.load(couponKey(code))
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return queries.NewCouponView(r.value.(coupon.Snapshot)), nil
}

func (s *Store) ListByPeriod(_ context.Context, period, afterCode string, limit int32) ([]*queries.CouponView, error) {
	entries := s.scan(tableCoupons, func(v any) bool {
		return v.(coupon.Snapshot).PeriodKey == period
	})
	out := make([]*queries.CouponView, 0, limit)
	for _, e := range entries {
		if e.key.id <= afterCode {
			continue
		}
		out = append(out, queries.NewCouponView(e.record.value.(coupon.Snapshot)))
		if int32(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (s *Store) CurrentCount(_ context.Context, key sequence.CounterKey) (int64, error) {
	r, ok := s.load(counterKey(key))
	if !ok {
		return 0, nil
	}
	return r.value.(int64), nil
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.OfferView, error) {
	r, ok := s.load(offerKey(id))
	if !ok {
		return nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	snap := r.value.(offer.Snapshot)
	name := ""
	if c, ok := s.load(customerKey(snap.CustomerID)); ok {
		name = c.value.(shared.CustomerSnapshot).Name
	}
	return queries.NewOfferView(snap, name), nil
}

// SeedCustomer registers a read-only customer record.
func (s *Store) SeedCustomer(c shared.CustomerSnapshot) {
	s.put(customerKey(c.ID), c)
}

// Jobs returns the committed outbox rows, oldest id first.
func (s *Store) Jobs() []NotificationJob {
	entries := s.scan(tableJobs, func(any) bool { return true })
	out := make([]NotificationJob, len(entries))
	for i, e := range entries {
		out[i] = e.record.value.(NotificationJob)
	}
	return out
}

var (
	_ queries.CouponReadStore  = (*Store)(nil)
	_ queries.CounterReadStore = (*Store)(nil)
	_ queries.OfferReadStore   = (*Store)(nil)
)
