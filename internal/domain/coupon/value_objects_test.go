//go:build unit

package coupon_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"issuance-engine/internal/domain/coupon"
	"issuance-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	t.Run("batch code", func(t *testing.T) {
		assert.Equal(t, coupon.Code("DI-202505-0007"), coupon.BatchCode("DI", "202505", 7))
	})

	t.Run("individual code", func(t *testing.T) {
		at := time.UnixMilli(1714550400000)
		assert.Equal(t, coupon.Code("IND-1714550400000-AB12CD"), coupon.IndividualCode(at, "AB12CD"))
	})

	t.Run("random suffix", func(t *testing.T) {
		s, err := coupon.RandomSuffix()
		require.NoError(t, err)
		assert.Len(t, s, coupon.IndividualSuffixLen)
		assert.Equal(t, strings.ToUpper(s), s)
	})

	cases := []struct {
		name  string
		input string
		want  coupon.Code
		ok    bool
	}{
		{name: "batch", input: "DI-202505-0001", want: "DI-202505-0001", ok: true},
		{name: "lower case and spaces", input: "  di-202505-0001 ", want: "DI-202505-0001", ok: true},
		{name: "individual", input: "IND-1714550400000-AB12CD", want: "IND-1714550400000-AB12CD", ok: true},
		{name: "empty", input: ""},
		{name: "missing serial", input: "DI-202505"},
		{name: "injection", input: "DI-202505-0001' OR 1=1"},
	}
	for _, tc := range cases {
		t.Run("parse "+tc.name, func(t *testing.T) {
			got, err := coupon.NewCode(tc.input)
			if !tc.ok {
				require.Error(t, err)
				assert.True(t, errs.Is(err, coupon.ErrInvalidCode))
				assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTemplateValidate(t *testing.T) {
	now := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name  string
		tmpl  coupon.Template
		errIs error
	}{
		{name: "minimal", tmpl: coupon.Template{Title: "T", ValueText: "V"}},
		{name: "with future expiry", tmpl: coupon.Template{Title: "T", ValueText: "V", ExpiresAt: &future}},
		{name: "missing title", tmpl: coupon.Template{Title: "  ", ValueText: "V"}, errIs: coupon.ErrTitleRequired},
		{name: "missing value text", tmpl: coupon.Template{Title: "T"}, errIs: coupon.ErrValueTextRequired},
		{name: "expiry in the past", tmpl: coupon.Template{Title: "T", ValueText: "V", ExpiresAt: &past}, errIs: coupon.ErrInvalidExpiry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tmpl.Normalize().Validate(now)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errs.Is(err, tc.errIs))
			assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
		})
	}
}

func TestRedeemerAndRecipient(t *testing.T) {
	r, err := coupon.NewRedeemer(" Ana ", "300 123 4567", "")
	require.NoError(t, err)
	assert.Equal(t, "Ana", r.Name)
	assert.Equal(t, coupon.ChannelWeb, r.Channel)

	r, err = coupon.NewRedeemer("Ana", "x", "WhatsApp")
	require.NoError(t, err)
	assert.Equal(t, coupon.ChannelWhatsApp, r.Channel)

	_, err = coupon.NewRedeemer("Ana", "", "web")
	assert.True(t, errs.Is(err, coupon.ErrRedeemerRequired))

	_, err = coupon.NewRedeemer("Ana", "x", "pigeon")
	assert.True(t, errs.Is(err, coupon.ErrInvalidChannel))

	_, err = coupon.NewRecipient("", "Marta")
	assert.True(t, errs.Is(err, coupon.ErrRecipientRequired))
	_, err = coupon.NewRecipient("Luis", " ")
	assert.True(t, errs.Is(err, coupon.ErrSenderRequired))
}

func TestSuffixFrom(t *testing.T) {
	t.Run("bytes past the last full alphabet cycle are skipped", func(t *testing.T) {
		src := bytes.NewReader([]byte{252, 253, 254, 255, 0, 1, 35, 36, 71, 251, 72, 3})
		s, err := coupon.SuffixFrom(src)
		require.NoError(t, err)
		assert.Equal(t, "AB9A99", s)
	})

	t.Run("source exhausted by rejected bytes", func(t *testing.T) {
		src := bytes.NewReader(bytes.Repeat([]byte{255}, 12))
		_, err := coupon.SuffixFrom(src)
		assert.Error(t, err)
	})

	t.Run("symbols are uniformly drawn", func(t *testing.T) {
		const draws = 6000
		counts := map[rune]int{}
		for i := 0; i < draws; i++ {
			s, err := coupon.RandomSuffix()
			require.NoError(t, err)
			for _, r := range s {
				counts[r]++
			}
		}
		require.Len(t, counts, 36)
		// expected 1000 per symbol; the bounds sit beyond six standard deviations
		for r, n := range counts {
			assert.InDelta(t, 1000, n, 200, "symbol %q", r)
		}
	})
}
