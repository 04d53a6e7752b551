// SPDX-License-Identifier: MIT

package perftable

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// BuildAll builds one table per record on a bounded worker pool.
// The result preserves input order. If any record fails, BuildAll returns a
// *RecordError for the lowest failing index, independent of scheduling;
// records after a known failure are skipped. A cancelled ctx returns
// ctx.Err(). Records are independent, so Build's guarantees hold per table.
func BuildAll(ctx context.Context, inputs []PerformanceInput, opts ...Option) ([]*Table, error) {
	o := gatherOptions(opts...)
	out := make([]*Table, len(inputs))
	errs := make([]error, len(inputs)) // errs[i] set only by record i's goroutine

	// lowestBad only decreases; len(inputs) means no failure so far.
	var lowestBad atomic.Int64
	lowestBad.Store(int64(len(inputs)))
	markBad := func(i int) {
		for {
			cur := lowestBad.Load()
			if int64(i) >= cur || lowestBad.CompareAndSwap(cur, int64(i)) {
				return
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i := range inputs {
		if gctx.Err() != nil || int64(i) > lowestBad.Load() {
			break // dispatch is in order, so every later record is also past the failure
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if int64(i) > lowestBad.Load() {
				return nil // cannot change the reported index
			}
			t, err := Build(inputs[i])
			if err != nil {
				errs[i] = err
				markBad(i)

				return nil
			}
			out[i] = t // each goroutine owns its slot

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Records skipped after a cancellation leave no error in the group.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Every record below bad was built successfully, so bad is the lowest failure.
	if bad := int(lowestBad.Load()); bad < len(inputs) {
		return nil, &RecordError{Index: bad, Err: errs[bad]}
	}

	return out, nil
}
