package coupon

import (
	"time"

	"github.com/google/uuid"

	"issuance-engine/internal/pkg/errs"
)

var (
	ErrAlreadyRedeemed = errs.New("coupon has already been redeemed")
	ErrCouponExpired   = errs.New("coupon has expired")
)

// Outcome describes what a redemption attempt did to the coupon.
type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeRedeemed
	// OutcomeExpired means the attempt failed but the coupon was moved to
	// expired and must be persisted.
	OutcomeExpired
)

type Coupon struct {
	code            Code
	periodKey       string
	status          Status
	template        Template
	issuedBy        uuid.UUID
	issuedAt        time.Time
	individual      bool
	recipient       Recipient
	redeemedAt      *time.Time
	redeemer        *Redeemer
	redeemedByAdmin *uuid.UUID
}

func NewBatchCoupon(code Code, period string, tmpl Template, issuedBy uuid.UUID, issuedAt time.Time) *Coupon {
	return &Coupon{
		code:      code,
		periodKey: period,
		status:    StatusActive,
		template:  tmpl,
		issuedBy:  issuedBy,
		issuedAt:  issuedAt,
	}
}

func NewIndividualCoupon(code Code, period string, tmpl Template, rcpt Recipient, issuedBy uuid.UUID, issuedAt time.Time) *Coupon {
	c := NewBatchCoupon(code, period, tmpl, issuedBy, issuedAt)
	c.individual = true
	c.recipient = rcpt
	return c
}

// Redeem applies the public redemption path. Expiry is checked after the
// redeemed state so an already redeemed coupon never flips to expired.
func (c *Coupon) Redeem(now time.Time, r Redeemer) (Outcome, error) {
	if out, err := c.checkRedeemable(now); err != nil {
		return out, err
	}
	c.status = StatusRedeemed
	c.redeemedAt = &now
	c.redeemer = &r
	return OutcomeRedeemed, nil
}

func (c *Coupon) AdminRedeem(now time.Time, adminID uuid.UUID) (Outcome, error) {
	if out, err := c.checkRedeemable(now); err != nil {
		return out, err
	}
	c.status = StatusRedeemed
	c.redeemedAt = &now
	c.redeemedByAdmin = &adminID
	return OutcomeRedeemed, nil
}

func (c *Coupon) checkRedeemable(now time.Time) (Outcome, error) {
	switch c.status {
	case StatusRedeemed:
		return OutcomeRejected, errs.FailedPrecondition(ErrAlreadyRedeemed)
	case StatusExpired:
		return OutcomeRejected, errs.FailedPrecondition(ErrCouponExpired)
	}
	if c.IsPastExpiry(now) {
		c.status = StatusExpired
		return OutcomeExpired, errs.FailedPrecondition(ErrCouponExpired)
	}
	return OutcomeRedeemed, nil
}

func (c *Coupon) IsPastExpiry(now time.Time) bool {
	return c.template.ExpiresAt != nil && now.After(*c.template.ExpiresAt)
}

func (c *Coupon) Code() Code                  { return c.code }
func (c *Coupon) PeriodKey() string           { return c.periodKey }
func (c *Coupon) Status() Status              { return c.status }
func (c *Coupon) Template() Template          { return c.template }
func (c *Coupon) IssuedBy() uuid.UUID         { return c.issuedBy }
func (c *Coupon) IssuedAt() time.Time         { return c.issuedAt }
func (c *Coupon) IsIndividual() bool          { return c.individual }
func (c *Coupon) Recipient() Recipient        { return c.recipient }
func (c *Coupon) RedeemedAt() *time.Time      { return c.redeemedAt }
func (c *Coupon) Redeemer() *Redeemer         { return c.redeemer }
func (c *Coupon) RedeemedByAdmin() *uuid.UUID { return c.redeemedByAdmin }
