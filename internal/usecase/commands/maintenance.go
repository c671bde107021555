package commands

import (
	"context"
	"log/slog"

	"issuance-engine/internal/domain/offer"
	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/pkg/errs"
	"issuance-engine/internal/usecase/shared"
)

var ErrCounterInUse = errs.New("counter still has numbered records")

type PurgeResult struct {
	Period         string `json:"period" yaml:"period"`
	DeletedCoupons int64  `json:"deleted_coupons" yaml:"deleted_coupons"`
}

// MaintenanceCommands are operator-only actions behind the admin CLI.
type MaintenanceCommands interface {
	CounterValue(ctx context.Context, key sequence.CounterKey) (int64, error)
	ResetCounter(ctx context.Context, key sequence.CounterKey) error
	PurgeCoupons(ctx context.Context, period string) (*PurgeResult, error)
}

type maintenanceUseCaseImpl struct {
	uow    shared.UnitOfWork
	policy Policy
}

func NewMaintenanceUseCase(uow shared.UnitOfWork, policy Policy) MaintenanceCommands {
	return &maintenanceUseCaseImpl{uow: uow, policy: policy}
}

func (uc *maintenanceUseCaseImpl) CounterValue(ctx context.Context, key sequence.CounterKey) (int64, error) {
	var count int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Counters().Get(ctx, key)
		if err != nil {
			return err
		}
		count = c.Count()
		return nil
	})
	return count, err
}

// ResetCounter recreates a counter at zero, but only while nothing numbered
// from it exists. Otherwise the next allocation would mint a number that is
// already taken. Coupon months are cleared with PurgeCoupons instead.
func (uc *maintenanceUseCaseImpl) ResetCounter(ctx context.Context, key sequence.CounterKey) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := uc.numberedFrom(ctx, tx, key)
		if err != nil {
			return err
		}
		if n > 0 {
			hint := "offer numbers are permanent"
			if key.Domain == sequence.DomainCoupons {
				hint = "use coupon purge to delete the month and reset it together"
			}
			return errs.FailedPrecondition(errs.Wrapf(ErrCounterInUse, "%s has %d; %s", key, n, hint))
		}
		return tx.Counters().Reset(ctx, key)
	})
	if err != nil {
		return err
	}
	slog.Warn("counter reset by operator", "key", key.String())
	return nil
}

func (uc *maintenanceUseCaseImpl) numberedFrom(ctx context.Context, tx shared.Tx, key sequence.CounterKey) (int64, error) {
	switch key.Domain {
	case sequence.DomainCoupons:
		return tx.Coupons().CountBatchByPeriod(ctx, key.Period)
	case sequence.DomainOffers:
		return tx.Offers().CountByNumberPrefix(ctx, offer.NumberPrefix(uc.policy.OfferPrefix, key))
	default:
		return 0, errs.InvalidArgument(sequence.ErrInvalidDomain)
	}
}

// PurgeCoupons deletes every coupon of a period and resets its counter in one
// transaction, so the next batch starts again at serial 1.
func (uc *maintenanceUseCaseImpl) PurgeCoupons(ctx context.Context, period string) (*PurgeResult, error) {
	key, err := sequence.NewCounterKey(sequence.DomainCoupons, period)
	if err != nil {
		return nil, err
	}

	var deleted int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Coupons().DeleteByPeriod(ctx, key.Period)
		if err != nil {
			return err
		}
		deleted = n
		return tx.Counters().Reset(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	slog.Warn("coupons purged by operator", "period", key.Period, "deleted", deleted)
	return &PurgeResult{Period: key.Period, DeletedCoupons: deleted}, nil
}
