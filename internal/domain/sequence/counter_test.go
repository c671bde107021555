//go:build unit

package sequence_test

import (
	"testing"
	"time"

	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterKey(t *testing.T) {
	cases := []struct {
		name    string
		domain  sequence.Domain
		period  string
		wantErr error
	}{
		{name: "offers year", domain: sequence.DomainOffers, period: "2025"},
		{name: "coupons month", domain: sequence.DomainCoupons, period: "202505"},
		{name: "coupons december", domain: sequence.DomainCoupons, period: "202512"},
		{name: "coupons month 13", domain: sequence.DomainCoupons, period: "202513", wantErr: sequence.ErrInvalidPeriod},
		{name: "coupons month 00", domain: sequence.DomainCoupons, period: "202500", wantErr: sequence.ErrInvalidPeriod},
		{name: "coupons with year only", domain: sequence.DomainCoupons, period: "2025", wantErr: sequence.ErrInvalidPeriod},
		{name: "offers with month", domain: sequence.DomainOffers, period: "202505", wantErr: sequence.ErrInvalidPeriod},
		{name: "unknown domain", domain: "invoices", period: "2025", wantErr: sequence.ErrInvalidDomain},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := sequence.NewCounterKey(tc.domain, tc.period)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr))
				assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.domain, key.Domain)
			assert.Equal(t, tc.period, key.Period)
		})
	}

	t.Run("same period in different domains is a different key", func(t *testing.T) {
		a := sequence.CounterKey{Domain: sequence.DomainOffers, Period: "2025"}
		b := sequence.CounterKey{Domain: sequence.DomainCoupons, Period: "2025"}
		assert.NotEqual(t, a, b)
		assert.NotEqual(t, a.String(), b.String())
	})
}

func TestPeriods(t *testing.T) {
	at := time.Date(2025, time.May, 31, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025", sequence.YearPeriod(at))
	assert.Equal(t, "202505", sequence.MonthPeriod(at))

	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	// 2025-06-01 02:00 UTC is still May 31st in Bogota
	utc := time.Date(2025, time.June, 1, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "202505", sequence.CouponKeyAt(utc.In(bogota)).Period)
	assert.Equal(t, "202506", sequence.CouponKeyAt(utc).Period)
}

func TestCounterAllocate(t *testing.T) {
	key := sequence.CounterKey{Domain: sequence.DomainOffers, Period: "2025"}

	t.Run("starts at one", func(t *testing.T) {
		c := sequence.NewCounter(key)
		start, err := c.Allocate(1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), start)
		assert.Equal(t, int64(1), c.Count())
	})

	t.Run("consecutive ranges have no gaps", func(t *testing.T) {
		c := sequence.NewCounter(key)
		first, err := c.Allocate(5)
		require.NoError(t, err)
		second, err := c.Allocate(3)
		require.NoError(t, err)
		assert.Equal(t, int64(1), first)
		assert.Equal(t, int64(6), second)
		assert.Equal(t, int64(8), c.Count())
	})

	t.Run("rejects non positive amounts", func(t *testing.T) {
		c := sequence.NewCounter(key)
		for _, amount := range []int64{0, -1} {
			_, err := c.Allocate(amount)
			require.Error(t, err)
			assert.True(t, errs.Is(err, sequence.ErrInvalidAmount))
			assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
		}
		assert.Equal(t, int64(0), c.Count())
	})

	t.Run("reconstruct rejects negative", func(t *testing.T) {
		_, err := sequence.ReconstructCounter(key, -1)
		assert.ErrorIs(t, err, sequence.ErrNegativeCount)
	})
}

func TestCounterAllocateBounded(t *testing.T) {
	key := sequence.CounterKey{Domain: sequence.DomainCoupons, Period: "202505"}

	t.Run("fills up to the ceiling exactly", func(t *testing.T) {
		c, err := sequence.ReconstructCounter(key, 590)
		require.NoError(t, err)
		start, err := c.AllocateBounded(10, 600)
		require.NoError(t, err)
		assert.Equal(t, int64(591), start)
		assert.Equal(t, int64(600), c.Count())
	})

	t.Run("crossing the ceiling leaves the counter untouched", func(t *testing.T) {
		c, err := sequence.ReconstructCounter(key, 590)
		require.NoError(t, err)
		_, err = c.AllocateBounded(20, 600)
		require.Error(t, err)
		assert.Equal(t, errs.KindFailedPrecondition, errs.KindOf(err))

		var qe *sequence.QuotaExceededError
		require.True(t, errs.As(err, &qe))
		assert.Equal(t, int64(590), qe.Current)
		assert.Equal(t, int64(20), qe.Requested)
		assert.Equal(t, int64(600), qe.Ceiling)
		assert.Equal(t, int64(10), qe.Remaining())
		assert.Equal(t, int64(590), c.Count())
	})
}

func TestFormatSerial(t *testing.T) {
	assert.Equal(t, "0007", sequence.FormatSerial(7, 4))
	assert.Equal(t, "0600", sequence.FormatSerial(600, 4))
	assert.Equal(t, "12345", sequence.FormatSerial(12345, 4))
}
