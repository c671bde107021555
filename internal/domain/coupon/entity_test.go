//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"issuance-engine/internal/domain/coupon"
	"issuance-engine/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	issuedAt = time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
	issuer   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
)

func newCoupon(t *testing.T, expiresAt *time.Time) *coupon.Coupon {
	t.Helper()
	tmpl := coupon.Template{Title: "Spring", ValueText: "10% off", ExpiresAt: expiresAt}
	return coupon.NewBatchCoupon(coupon.BatchCode("DI", "202505", 1), "202505", tmpl, issuer, issuedAt)
}

func redeemer(t *testing.T) coupon.Redeemer {
	t.Helper()
	r, err := coupon.NewRedeemer("Ana", "ana@example.com", "web")
	require.NoError(t, err)
	return r
}

func TestCouponRedeem(t *testing.T) {
	now := issuedAt.Add(24 * time.Hour)

	t.Run("active coupon is redeemed once", func(t *testing.T) {
		c := newCoupon(t, nil)
		out, err := c.Redeem(now, redeemer(t))
		require.NoError(t, err)
		assert.Equal(t, coupon.OutcomeRedeemed, out)
		assert.Equal(t, coupon.StatusRedeemed, c.Status())
		require.NotNil(t, c.RedeemedAt())
		assert.Equal(t, now, *c.RedeemedAt())
		require.NotNil(t, c.Redeemer())
		assert.Equal(t, "Ana", c.Redeemer().Name)
		assert.Nil(t, c.RedeemedByAdmin())

		out, err = c.Redeem(now.Add(time.Minute), redeemer(t))
		require.Error(t, err)
		assert.Equal(t, coupon.OutcomeRejected, out)
		assert.True(t, errs.Is(err, coupon.ErrAlreadyRedeemed))
		assert.Equal(t, errs.KindFailedPrecondition, errs.KindOf(err))
		assert.Equal(t, now, *c.RedeemedAt())
	})

	t.Run("past expiry moves to expired instead of redeemed", func(t *testing.T) {
		exp := issuedAt.Add(time.Hour)
		c := newCoupon(t, &exp)

		out, err := c.Redeem(now, redeemer(t))
		require.Error(t, err)
		assert.Equal(t, coupon.OutcomeExpired, out)
		assert.True(t, errs.Is(err, coupon.ErrCouponExpired))
		assert.False(t, errs.Is(err, coupon.ErrAlreadyRedeemed))
		assert.Equal(t, coupon.StatusExpired, c.Status())
		assert.Nil(t, c.RedeemedAt())

		out, err = c.Redeem(now, redeemer(t))
		require.Error(t, err)
		assert.Equal(t, coupon.OutcomeRejected, out)
		assert.Equal(t, errs.KindFailedPrecondition, errs.KindOf(err))
	})

	t.Run("expiry instant itself is still redeemable", func(t *testing.T) {
		exp := now
		c := newCoupon(t, &exp)
		_, err := c.Redeem(now, redeemer(t))
		require.NoError(t, err)
	})

	t.Run("redeemed coupon never flips to expired", func(t *testing.T) {
		exp := now.Add(time.Hour)
		c := newCoupon(t, &exp)
		_, err := c.Redeem(now, redeemer(t))
		require.NoError(t, err)

		_, err = c.Redeem(now.Add(48*time.Hour), redeemer(t))
		assert.True(t, errs.Is(err, coupon.ErrAlreadyRedeemed))
		assert.Equal(t, coupon.StatusRedeemed, c.Status())
	})

	t.Run("admin path records the admin instead of the redeemer", func(t *testing.T) {
		admin := uuid.New()
		c := newCoupon(t, nil)
		out, err := c.AdminRedeem(now, admin)
		require.NoError(t, err)
		assert.Equal(t, coupon.OutcomeRedeemed, out)
		require.NotNil(t, c.RedeemedByAdmin())
		assert.Equal(t, admin, *c.RedeemedByAdmin())
		assert.Nil(t, c.Redeemer())

		_, err = c.Redeem(now, redeemer(t))
		assert.True(t, errs.Is(err, coupon.ErrAlreadyRedeemed))
	})
}

func TestCouponSnapshot(t *testing.T) {
	exp := issuedAt.Add(72 * time.Hour)
	rcpt, err := coupon.NewRecipient("Luis", "Marta")
	require.NoError(t, err)
	code := coupon.IndividualCode(issuedAt, "ABC123")
	c := coupon.NewIndividualCoupon(code, "202505", coupon.Template{Title: "Gift", ValueText: "Free coffee", ExpiresAt: &exp}, rcpt, issuer, issuedAt)
	_, err = c.Redeem(issuedAt.Add(time.Hour), redeemer(t))
	require.NoError(t, err)

	restored, err := coupon.FromSnapshot(c.Snapshot())
	require.NoError(t, err)
	if diff := cmp.Diff(c.Snapshot(), restored.Snapshot(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, restored.IsIndividual())

	_, err = coupon.FromSnapshot(coupon.Snapshot{Code: "X", Status: "void"})
	assert.ErrorIs(t, err, coupon.ErrInvalidStatus)
}
