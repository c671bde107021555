package sequence

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"issuance-engine/internal/pkg/errs"
)

var (
	ErrInvalidDomain = errs.New("invalid counter domain")
	ErrInvalidPeriod = errs.New("invalid period key")
)

type Domain string

const (
	DomainOffers  Domain = "offers"
	DomainCoupons Domain = "coupons"
)

func (d Domain) IsValid() bool {
	switch d {
	case DomainOffers, DomainCoupons:
		return true
	default:
		return false
	}
}

func (d Domain) String() string { return string(d) }

var (
	yearPeriodRegex  = regexp.MustCompile(`^[0-9]{4}$`)
	monthPeriodRegex = regexp.MustCompile(`^[0-9]{4}(0[1-9]|1[0-2])$`)
)

// CounterKey identifies one independent sequence. Domain and period are kept
// apart so "offers"+"2025" can never collide with another domain's key.
type CounterKey struct {
	Domain Domain
	Period string
}

// NewCounterKey checks the period shape each domain expects:
// YYYY for offers, YYYYMM for coupons.
func NewCounterKey(domain Domain, period string) (CounterKey, error) {
	if !domain.IsValid() {
		return CounterKey{}, errs.InvalidArgument(errs.Wrapf(ErrInvalidDomain, "%q", domain))
	}
	period = strings.TrimSpace(period)
	var ok bool
	switch domain {
	case DomainOffers:
		ok = yearPeriodRegex.MatchString(period)
	case DomainCoupons:
		ok = monthPeriodRegex.MatchString(period)
	}
	if !ok {
		return CounterKey{}, errs.InvalidArgument(errs.Wrapf(ErrInvalidPeriod, "%q for %s", period, domain))
	}
	return CounterKey{Domain: domain, Period: period}, nil
}

func (k CounterKey) String() string {
	return fmt.Sprintf("%s/%s", k.Domain, k.Period)
}

func YearPeriod(t time.Time) string {
	return t.Format("2006")
}

func MonthPeriod(t time.Time) string {
	return t.Format("200601")
}

func OfferKeyAt(t time.Time) CounterKey {
	return CounterKey{Domain: DomainOffers, Period: YearPeriod(t)}
}

func CouponKeyAt(t time.Time) CounterKey {
	return CounterKey{Domain: DomainCoupons, Period: MonthPeriod(t)}
}

// FormatSerial zero-pads n to width digits; wider numbers are printed in full.
func FormatSerial(n int64, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}
