package shared

import (
	"context"
	"time"

	"issuance-engine/internal/domain/coupon"
	"issuance-engine/internal/domain/offer"
	"issuance-engine/internal/domain/sequence"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one atomic transaction. The whole body is re-run on a
	// write conflict, so fn must not perform external side effects.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to the current transaction.
type Tx interface {
	Counters() CounterRepository
	Coupons() CouponRepository
	Offers() OfferRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
}

type CustomerSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type CounterRepository interface {
	// Get reads and locks the counter; an absent counter is returned at zero.
	Get(ctx context.Context, key sequence.CounterKey) (*sequence.Counter, error)
	Save(ctx context.Context, c *sequence.Counter) error
	// Reset recreates the counter at zero.
	Reset(ctx context.Context, key sequence.CounterKey) error
}

type CouponRepository interface {
	GetForUpdate(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	Create(ctx context.Context, c *coupon.Coupon) error
	CreateBatch(ctx context.Context, cs []*coupon.Coupon) (int64, error)
	Update(ctx context.Context, c *coupon.Coupon) error
	DeleteByPeriod(ctx context.Context, period string) (int64, error)
	// CountBatchByPeriod counts counter-numbered coupons; individual codes are excluded.
	CountBatchByPeriod(ctx context.Context, period string) (int64, error)
}

type OfferRepository interface {
	Create(ctx context.Context, o *offer.Offer) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	Update(ctx context.Context, o *offer.Offer) error
	CountByNumberPrefix(ctx context.Context, prefix string) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
