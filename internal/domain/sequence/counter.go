package sequence

import (
	"fmt"

	"issuance-engine/internal/pkg/errs"
)

var (
	ErrInvalidAmount   = errs.New("allocation amount must be at least 1")
	ErrNegativeCount   = errs.New("counter value cannot be negative")
	ErrCounterOverflow = errs.New("counter would overflow")
)

// QuotaExceededError reports a bounded allocation that would cross the period ceiling.
type QuotaExceededError struct {
	Key       CounterKey
	Current   int64
	Requested int64
	Ceiling   int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded for %s: %d issued, %d requested, ceiling %d",
		e.Key, e.Current, e.Requested, e.Ceiling)
}

func (e *QuotaExceededError) Remaining() int64 {
	if e.Current >= e.Ceiling {
		return 0
	}
	return e.Ceiling - e.Current
}

// Counter is the last number handed out for one (domain, period). A counter
// that has never been persisted starts at zero.
type Counter struct {
	key   CounterKey
	count int64
}

func NewCounter(key CounterKey) *Counter {
	return &Counter{key: key}
}

func ReconstructCounter(key CounterKey, count int64) (*Counter, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	return &Counter{key: key, count: count}, nil
}

// Allocate reserves amount consecutive numbers and returns the first one.
func (c *Counter) Allocate(amount int64) (int64, error) {
	if amount < 1 {
		return 0, errs.InvalidArgument(ErrInvalidAmount)
	}
	if c.count > maxCount-amount {
		return 0, errs.FailedPrecondition(ErrCounterOverflow)
	}
	start := c.count + 1
	c.count += amount
	return start, nil
}

// AllocateBounded is Allocate with a hard ceiling on the counter value. The
// counter is left untouched when the ceiling would be crossed.
func (c *Counter) AllocateBounded(amount, ceiling int64) (int64, error) {
	if amount < 1 {
		return 0, errs.InvalidArgument(ErrInvalidAmount)
	}
	if c.count+amount > ceiling {
		return 0, errs.FailedPrecondition(&QuotaExceededError{
			Key:       c.key,
			Current:   c.count,
			Requested: amount,
			Ceiling:   ceiling,
		})
	}
	return c.Allocate(amount)
}

func (c *Counter) Key() CounterKey { return c.key }
func (c *Counter) Count() int64    { return c.count }

const maxCount = int64(1<<63 - 1)
