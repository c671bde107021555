package memstore

import (
	"context"
	"strings"
	"time"

	"issuance-engine/internal/domain/coupon"
	"issuance-engine/internal/domain/offer"
	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/infra"
	"issuance-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// NotificationJob is a queued outbox row.
type NotificationJob struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
	Status  string
}

func counterKey(k sequence.CounterKey) recordKey {
	return recordKey{table: tableCounters, id: k.String()}
}

func couponKey(code string) recordKey {
	return recordKey{table: tableCoupons, id: code}
}

func offerKey(id uuid.UUID) recordKey {
	return recordKey{table: tableOffers, id: id.String()}
}

func customerKey(id uuid.UUID) recordKey {
	return recordKey{table: tableCustomers, id: id.String()}
}

type CounterRepository struct{ tx *Tx }

func NewCounterRepository(tx *Tx) *CounterRepository { return &CounterRepository{tx: tx} }

func (r *CounterRepository) Get(_ context.Context, key sequence.CounterKey) (*sequence.Counter, error) {
	v, ok := r.tx.get(counterKey(key))
	if !ok {
		return sequence.NewCounter(key), nil
	}
	c, err := sequence.ReconstructCounter(key, v.(int64))
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt counter", err)
	}
	return c, nil
}

func (r *CounterRepository) Save(_ context.Context, c *sequence.Counter) error {
	r.tx.set(counterKey(c.Key()), c.Count())
	return nil
}

func (r *CounterRepository) Reset(_ context.Context, key sequence.CounterKey) error {
	// the read pins the current version so a concurrent allocation conflicts
	r.tx.get(counterKey(key))
	r.tx.set(counterKey(key), int64(0))
	return nil
}

type CouponRepository struct{ tx *Tx }

func NewCouponRepository(tx *Tx) *CouponRepository { return &CouponRepository{tx: tx} }

func (r *CouponRepository) GetForUpdate(_ context.Context, code coupon.Code) (*coupon.Coupon, error) {
	v, ok := r.tx.get(couponKey(code.String()))
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	c, err := coupon.FromSnapshot(v.(coupon.Snapshot))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rebuild coupon", err)
	}
	return c, nil
}

func (r *CouponRepository) Create(_ context.Context, c *coupon.Coupon) error {
	k := couponKey(c.Code().String())
	if _, exists := r.tx.get(k); exists {
		return infra.WrapRepoErr("coupon code already exists", nil, infra.KindDuplicateKey)
	}
	r.tx.set(k, c.Snapshot())
	return nil
}

func (r *CouponRepository) CreateBatch(ctx context.Context, cs []*coupon.Coupon) (int64, error) {
	for _, c := range cs {
		if err := r.Create(ctx, c); err != nil {
			return 0, err
		}
	}
	return int64(len(cs)), nil
}

func (r *CouponRepository) Update(_ context.Context, c *coupon.Coupon) error {
	k := couponKey(c.Code().String())
	if _, exists := r.tx.get(k); !exists {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	r.tx.set(k, c.Snapshot())
	return nil
}

func (r *CouponRepository) DeleteByPeriod(_ context.Context, period string) (int64, error) {
	keys := r.tx.scan(tableCoupons, func(v any) bool {
		return v.(coupon.Snapshot).PeriodKey == period
	})
	for _, k := range keys {
		r.tx.remove(k)
	}
	return int64(len(keys)), nil
}

func (r *CouponRepository) CountBatchByPeriod(_ context.Context, period string) (int64, error) {
	keys := r.tx.scan(tableCoupons, func(v any) bool {
		snap := v.(coupon.Snapshot)
		return snap.PeriodKey == period && !snap.IsIndividual
	})
	return int64(len(keys)), nil
}

type OfferRepository struct{ tx *Tx }

func NewOfferRepository(tx *Tx) *OfferRepository { return &OfferRepository{tx: tx} }

func (r *OfferRepository) Create(_ context.Context, o *offer.Offer) error {
	k := offerKey(o.ID())
	if _, exists := r.tx.get(k); exists {
		return infra.WrapRepoErr("offer already exists", nil, infra.KindDuplicateKey)
	}
	number := o.Number().String()
	dup := r.tx.scan(tableOffers, func(v any) bool { return v.(offer.Snapshot).Number == number })
	if len(dup) > 0 {
		return infra.WrapRepoErr("offer number already exists", nil, infra.KindDuplicateKey)
	}
	r.tx.set(k, o.Snapshot())
	return nil
}

func (r *OfferRepository) GetForUpdate(_ context.Context, id uuid.UUID) (*offer.Offer, error) {
	v, ok := r.tx.get(offerKey(id))
	if !ok {
		return nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	o, err := offer.FromSnapshot(v.(offer.Snapshot))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rebuild offer", err)
	}
	return o, nil
}

func (r *OfferRepository) Update(_ context.Context, o *offer.Offer) error {
	k := offerKey(o.ID())
	if _, exists := r.tx.get(k); !exists {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	r.tx.set(k, o.Snapshot())
	return nil
}

func (r *OfferRepository) CountByNumberPrefix(_ context.Context, prefix string) (int64, error) {
	keys := r.tx.scan(tableOffers, func(v any) bool {
		return strings.HasPrefix(v.(offer.Snapshot).Number, prefix)
	})
	return int64(len(keys)), nil
}

type NotificationRepository struct{ tx *Tx }

func NewNotificationRepository(tx *Tx) *NotificationRepository {
	return &NotificationRepository{tx: tx}
}

func (r *NotificationRepository) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	job := NotificationJob{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: append([]byte(nil), payload...),
		RunAt:   runAt,
		Status:  "queued",
	}
	r.tx.set(recordKey{table: tableJobs, id: job.ID.String()}, job)
	return nil
}

// CommandReads serves lookups either inside a transaction (pinned) or
// directly against committed state when tx is nil.
type CommandReads struct {
	store *Store
	tx    *Tx
}

func NewCommandReads(store *Store, tx *Tx) *CommandReads {
	return &CommandReads{store: store, tx: tx}
}

func (r *CommandReads) CustomerByID(_ context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	var (
		v  any
		ok bool
	)
	if r.tx != nil {
		v, ok = r.tx.get(customerKey(id))
	} else {
		var rec record
		rec, ok = r.store.load(customerKey(id))
		v = rec.value
	}
	if !ok {
		return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	c := v.(shared.CustomerSnapshot)
	return &c, nil
}

var (
	_ shared.CounterRepository      = (*CounterRepository)(nil)
	_ shared.CouponRepository       = (*CouponRepository)(nil)
	_ shared.OfferRepository        = (*OfferRepository)(nil)
	_ shared.NotificationRepository = (*NotificationRepository)(nil)
	_ shared.CommandReads           = (*CommandReads)(nil)
)
