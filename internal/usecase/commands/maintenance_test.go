//go:build unit

package commands_test

import (
	"context"
	"testing"

	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/pkg/errs"
	"issuance-engine/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	issue := func(period string, n int64) *commands.IssueBatchResult {
		res, err := f.coupons.IssueBatch(ctx, commands.IssueBatchRequest{Period: period, Count: n, Template: template()}, f.operatorID)
		require.NoError(t, err)
		return res
	}
	issue("202505", 4)
	issue("202506", 2)
	may := sequence.CounterKey{Domain: sequence.DomainCoupons, Period: "202505"}

	t.Run("counter value", func(t *testing.T) {
		n, err := f.maintenance.CounterValue(ctx, may)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("purge removes the month and restarts numbering", func(t *testing.T) {
		res, err := f.maintenance.PurgeCoupons(ctx, "202505")
		require.NoError(t, err)
		assert.Equal(t, int64(4), res.DeletedCoupons)

		n, err := f.maintenance.CounterValue(ctx, may)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		assert.Equal(t, "DI-202505-0001", issue("202505", 1).FirstCode)
		assert.Equal(t, "DI-202506-0003", issue("202506", 1).FirstCode)
	})

	t.Run("purge rejects malformed periods", func(t *testing.T) {
		_, err := f.maintenance.PurgeCoupons(ctx, "2025-05")
		assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
	})

	t.Run("reset is refused while batch coupons of the month exist", func(t *testing.T) {
		june := sequence.CounterKey{Domain: sequence.DomainCoupons, Period: "202506"}
		err := f.maintenance.ResetCounter(ctx, june)
		require.ErrorIs(t, err, commands.ErrCounterInUse)
		assert.Equal(t, errs.KindFailedPrecondition, errs.KindOf(err))

		n, err := f.maintenance.CounterValue(ctx, june)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.Equal(t, "DI-202506-0004", issue("202506", 1).FirstCode)
	})

	t.Run("reset of a counter with nothing numbered from it", func(t *testing.T) {
		july := sequence.CounterKey{Domain: sequence.DomainCoupons, Period: "202507"}
		issue("202507", 2)
		_, err := f.maintenance.PurgeCoupons(ctx, "202507")
		require.NoError(t, err)
		require.NoError(t, f.maintenance.ResetCounter(ctx, july))

		n, err := f.maintenance.CounterValue(ctx, july)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
		assert.Equal(t, "DI-202507-0001", issue("202507", 1).FirstCode)
	})
}

func TestResetIgnoresIndividualCoupons(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	may := sequence.CounterKey{Domain: sequence.DomainCoupons, Period: "202505"}

	single, err := f.coupons.IssueSingle(ctx, commands.IssueSingleRequest{
		RecipientName: "Ana", SenderName: "Luis", Template: template(),
	}, f.operatorID)
	require.NoError(t, err)
	require.Equal(t, "202505", single.PeriodKey)

	require.NoError(t, f.maintenance.ResetCounter(ctx, may))
}

func TestResetOffersCounterKeepsNumberingUsable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	year := sequence.CounterKey{Domain: sequence.DomainOffers, Period: "2025"}

	first, err := f.offers.CreateOffer(ctx, offerInput(f.customer.ID), f.operatorID)
	require.NoError(t, err)
	require.Equal(t, "OFFERTA-2025-0001", first.OfferNumber)

	err = f.maintenance.ResetCounter(ctx, year)
	require.ErrorIs(t, err, commands.ErrCounterInUse)
	assert.Equal(t, errs.KindFailedPrecondition, errs.KindOf(err))

	for _, want := range []string{"OFFERTA-2025-0002", "OFFERTA-2025-0003"} {
		next, err := f.offers.CreateOffer(ctx, offerInput(f.customer.ID), f.operatorID)
		require.NoError(t, err)
		assert.Equal(t, want, next.OfferNumber)
	}

	t.Run("other years stay resettable", func(t *testing.T) {
		require.NoError(t, f.maintenance.ResetCounter(ctx, sequence.CounterKey{Domain: sequence.DomainOffers, Period: "2024"}))
	})
}
