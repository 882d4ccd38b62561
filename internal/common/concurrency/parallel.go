// Package concurrency runs independent lookups with bounded parallelism.
package concurrency

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

type ParallelOptions struct {
	// MaxWorkers bounds concurrently running items; <= 0 means DefaultOptions.
	MaxWorkers int
	// ItemTimeout, when positive, bounds each item with its own deadline.
	ItemTimeout time.Duration
}

func DefaultOptions() ParallelOptions {
	return ParallelOptions{MaxWorkers: 10}
}

// ProcessParallel calls itemFunc for every item and returns results and
// errors aligned with items: results[i] and errs[i] belong to items[i].
// One item failing never cancels the others. Items not yet started when ctx
// is done report ctx.Err().
func ProcessParallel[T any, R any](
	ctx context.Context,
	items []T,
	opts ParallelOptions,
	itemFunc func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))
	if len(items) == 0 {
		return results, errs
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = DefaultOptions().MaxWorkers
	}

	var g errgroup.Group
	g.SetLimit(maxWorkers)

	for i := range items {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}

			itemCtx := ctx
			if opts.ItemTimeout > 0 {
				var cancel context.CancelFunc
				itemCtx, cancel = context.WithTimeout(ctx, opts.ItemTimeout)
				defer cancel()
			}

			results[i], errs[i] = itemFunc(itemCtx, i, items[i])
			return nil
		})
	}
	_ = g.Wait()

	return results, errs
}
