package commands

import (
	"context"

	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/pkg/errs"
	"issuance-engine/internal/usecase/shared"
)

// Unbounded disables the ceiling check in SequenceAllocator.Allocate.
const Unbounded int64 = 0

// SequenceAllocator hands out gap-free numbers from a period counter. It must
// be called inside the transaction that consumes the numbers so a retried
// body re-reads the latest counter value.
type SequenceAllocator struct{}

func NewSequenceAllocator() *SequenceAllocator {
	return &SequenceAllocator{}
}

// Allocate reserves amount numbers and returns the first. With a positive
// ceiling the allocation fails with a quota error instead of crossing it.
func (a *SequenceAllocator) Allocate(ctx context.Context, tx shared.Tx, key sequence.CounterKey, amount, ceiling int64) (int64, error) {
	counter, err := tx.Counters().Get(ctx, key)
	if err != nil {
		return 0, errs.Wrapf(err, "read counter %s", key)
	}

	var start int64
	if ceiling > Unbounded {
		start, err = counter.AllocateBounded(amount, ceiling)
	} else {
		start, err = counter.Allocate(amount)
	}
	if err != nil {
		return 0, err
	}

	if err := tx.Counters().Save(ctx, counter); err != nil {
		return 0, errs.Wrapf(err, "save counter %s", key)
	}
	return start, nil
}
