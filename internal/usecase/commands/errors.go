package commands

import (
	"issuance-engine/internal/infra"
	"issuance-engine/internal/pkg/errs"
)

var (
	ErrCouponNotFound   = errs.New("coupon not found")
	ErrOfferNotFound    = errs.New("offer not found")
	ErrCustomerNotFound = errs.New("customer not found")
	ErrNoContactAddress = errs.New("customer has no valid email address")
	ErrInvalidCount     = errs.New("count must be at least 1")
	ErrBatchTooLarge    = errs.New("batch size exceeds the maximum")
	ErrCodeCollision    = errs.New("could not mint a unique coupon code")
)

// notFoundAs turns a repository NOT_FOUND into the caller-facing sentinel and
// passes every other error through untouched so conflict retries still see it.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.NotFound(sentinel)
	}
	return err
}
