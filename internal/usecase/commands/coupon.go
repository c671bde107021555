package commands

import (
	"context"
	"log/slog"
	"time"

	"issuance-engine/internal/domain/coupon"
	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/infra"
	"issuance-engine/internal/pkg/clock"
	"issuance-engine/internal/pkg/errs"
	"issuance-engine/internal/pkg/metrics"
	"issuance-engine/internal/usecase/queries"
	"issuance-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	issueModeBatch  = "batch"
	issueModeSingle = "single"

	actorPublic = "public"
	actorAdmin  = "admin"
)

type IssueBatchRequest struct {
	// Period is YYYYMM; empty means the current month in the business time zone.
	Period   string
	Count    int64
	Template coupon.Template
}

type IssueBatchResult struct {
	Period       string
	CreatedCount int64
	FirstCode    string
	LastCode     string
}

type IssueSingleRequest struct {
	RecipientName string
	SenderName    string
	Template      coupon.Template
}

type RedeemRequest struct {
	Code    string
	Name    string
	Contact string
	Channel string
}

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/commands/coupon_mock.go -package=commandsmock

type CouponCommands interface {
	IssueBatch(ctx context.Context, req IssueBatchRequest, actorID uuid.UUID) (*IssueBatchResult, error)
	IssueSingle(ctx context.Context, req IssueSingleRequest, actorID uuid.UUID) (*queries.CouponView, error)
	Redeem(ctx context.Context, req RedeemRequest) (*queries.CouponView, error)
	AdminRedeem(ctx context.Context, code string, adminID uuid.UUID) (*queries.CouponView, error)
}

type couponUseCaseImpl struct {
	uow       shared.UnitOfWork
	allocator *SequenceAllocator
	clock     clock.Clock
	policy    Policy
	metrics   *metrics.Registry
}

func NewCouponUseCase(uow shared.UnitOfWork, allocator *SequenceAllocator, clk clock.Clock, policy Policy, m *metrics.Registry) CouponCommands {
	return &couponUseCaseImpl{
		uow:       uow,
		allocator: allocator,
		clock:     clk,
		policy:    policy,
		metrics:   m,
	}
}

func (uc *couponUseCaseImpl) IssueBatch(ctx context.Context, req IssueBatchRequest, actorID uuid.UUID) (*IssueBatchResult, error) {
	now := uc.clock.Now()
	if req.Count < 1 {
		return nil, errs.InvalidArgument(ErrInvalidCount)
	}
	if req.Count > uc.policy.MaxBatchSize {
		return nil, errs.InvalidArgument(errs.Wrapf(ErrBatchTooLarge, "%d > %d", req.Count, uc.policy.MaxBatchSize))
	}
	tmpl := req.Template.Normalize()
	if err := tmpl.Validate(now); err != nil {
		return nil, err
	}
	period := req.Period
	if period == "" {
		period = sequence.MonthPeriod(uc.policy.local(now))
	}
	key, err := sequence.NewCounterKey(sequence.DomainCoupons, period)
	if err != nil {
		return nil, err
	}

	var result IssueBatchResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		start, err := uc.allocator.Allocate(ctx, tx, key, req.Count, uc.policy.CouponCeiling)
		if err != nil {
			return err
		}

		batch := make([]*coupon.Coupon, 0, req.Count)
		for serial := start; serial < start+req.Count; serial++ {
			code := coupon.BatchCode(uc.policy.BatchPrefix, key.Period, serial)
			batch = append(batch, coupon.NewBatchCoupon(code, key.Period, tmpl, actorID, now))
		}
		created, err := tx.Coupons().CreateBatch(ctx, batch)
		if err != nil {
			return err
		}
		if created != req.Count {
			return errs.Newf("batch insert wrote %d of %d coupons", created, req.Count)
		}

		result = IssueBatchResult{
			Period:       key.Period,
			CreatedCount: created,
			FirstCode:    batch[0].Code().String(),
			LastCode:     batch[len(batch)-1].Code().String(),
		}
		return nil
	})
	if err != nil {
		var qe *sequence.QuotaExceededError
		if errs.As(err, &qe) {
			uc.metrics.RecordQuotaRejection(key.Period)
		}
		return nil, err
	}

	uc.metrics.RecordAllocation(string(sequence.DomainCoupons), result.CreatedCount)
	uc.metrics.RecordIssued(issueModeBatch, int(result.CreatedCount))
	slog.Info("coupon batch issued",
		"period", result.Period,
		"count", result.CreatedCount,
		"first", result.FirstCode,
		"last", result.LastCode)
	return &result, nil
}

// IssueSingle never touches the period counter. A code collision is retried
// with a fresh suffix.
func (uc *couponUseCaseImpl) IssueSingle(ctx context.Context, req IssueSingleRequest, actorID uuid.UUID) (*queries.CouponView, error) {
	now := uc.clock.Now()
	rcpt, err := coupon.NewRecipient(req.RecipientName, req.SenderName)
	if err != nil {
		return nil, err
	}
	tmpl := req.Template.Normalize()
	if err := tmpl.Validate(now); err != nil {
		return nil, err
	}
	period := sequence.MonthPeriod(uc.policy.local(now))

	attempts := max(uc.policy.SingleAttempts, 1)
	for attempt := 0; attempt < attempts; attempt++ {
		suffix, err := coupon.RandomSuffix()
		if err != nil {
			return nil, err
		}
		c := coupon.NewIndividualCoupon(coupon.IndividualCode(now, suffix), period, tmpl, rcpt, actorID, now)

		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Coupons().Create(ctx, c)
		})
		if err == nil {
			uc.metrics.RecordIssued(issueModeSingle, 1)
			return queries.NewCouponView(c.Snapshot()), nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
		slog.Warn("individual coupon code collision, retrying", "code", c.Code(), "attempt", attempt+1)
	}
	return nil, ErrCodeCollision
}

func (uc *couponUseCaseImpl) Redeem(ctx context.Context, req RedeemRequest) (*queries.CouponView, error) {
	code, err := coupon.NewCode(req.Code)
	if err != nil {
		return nil, err
	}
	redeemer, err := coupon.NewRedeemer(req.Name, req.Contact, req.Channel)
	if err != nil {
		return nil, err
	}
	return uc.redeem(ctx, code, actorPublic, func(c *coupon.Coupon, now time.Time) (coupon.Outcome, error) {
		return c.Redeem(now, redeemer)
	})
}

func (uc *couponUseCaseImpl) AdminRedeem(ctx context.Context, rawCode string, adminID uuid.UUID) (*queries.CouponView, error) {
	code, err := coupon.NewCode(rawCode)
	if err != nil {
		return nil, err
	}
	return uc.redeem(ctx, code, actorAdmin, func(c *coupon.Coupon, now time.Time) (coupon.Outcome, error) {
		return c.AdminRedeem(now, adminID)
	})
}

// redeem runs one redemption attempt. A lazily discovered expiry is written
// and committed while the attempt itself still fails, so the failure is held
// outside the transaction body.
func (uc *couponUseCaseImpl) redeem(
	ctx context.Context,
	code coupon.Code,
	actor string,
	apply func(c *coupon.Coupon, now time.Time) (coupon.Outcome, error),
) (*queries.CouponView, error) {
	var (
		redeemed  coupon.Snapshot
		redeemErr error
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		redeemErr = nil

		c, err := tx.Coupons().GetForUpdate(ctx, code)
		if err != nil {
			return notFoundAs(err, ErrCouponNotFound)
		}

		outcome, derr := apply(c, uc.clock.Now())
		switch outcome {
		case coupon.OutcomeRejected:
			return derr
		case coupon.OutcomeExpired:
			redeemErr = derr
		}

		if err := tx.Coupons().Update(ctx, c); err != nil {
			return err
		}
		redeemed = c.Snapshot()
		return nil
	})
	if err == nil {
		err = redeemErr
	}

	uc.metrics.RecordRedemption(actor, redemptionOutcome(err))
	if err != nil {
		return nil, err
	}
	slog.Info("coupon redeemed", "code", redeemed.Code, "actor", actor)
	return queries.NewCouponView(redeemed), nil
}

func redemptionOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeRedeemed
	case errs.Is(err, coupon.ErrAlreadyRedeemed):
		return metrics.OutcomeAlreadyRedeemed
	case errs.Is(err, coupon.ErrCouponExpired):
		return metrics.OutcomeExpired
	case errs.KindOf(err) == errs.KindNotFound:
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
