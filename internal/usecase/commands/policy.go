package commands

import (
	"time"

	"issuance-engine/internal/pkg/config"
)

// Policy holds the issuance limits and formats every command shares.
type Policy struct {
	CouponCeiling  int64
	MaxBatchSize   int64
	BatchPrefix    string
	OfferPrefix    string
	Location       *time.Location
	SingleAttempts int
}

func NewPolicy(cfg config.IssuanceConfig) Policy {
	return Policy{
		CouponCeiling:  cfg.CouponMonthlyCeiling,
		MaxBatchSize:   cfg.CouponMaxBatchSize,
		BatchPrefix:    cfg.CouponBatchPrefix,
		OfferPrefix:    cfg.OfferNumberPrefix,
		Location:       cfg.Location(),
		SingleAttempts: 3,
	}
}

// local converts t to the business time zone used for period keys.
func (p Policy) local(t time.Time) time.Time {
	if p.Location == nil {
		return t.UTC()
	}
	return t.In(p.Location)
}
