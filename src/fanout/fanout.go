// Package fanout runs a function over many items concurrently and collects all
// of the results.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map calls fn once for every item and returns the results in the order of
// items: the result for items[i] is at index i. At most limit calls are running
// at the same time. A non-positive limit means no limit.
//
// Map waits for all calls to finish. It has no notion of failure, fn is expected
// to encode failures in its result so that one failing item never stops the
// others. When ctx is done fn is still called for the items which have not
// started yet, with the done ctx, so that every item gets a result.
func Map[T, R any](
	ctx context.Context,
	limit int,
	items []T,
	fn func(context.Context, T) R,
) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			results[i] = fn(ctx, item)
			return nil
		})
	}

	_ = g.Wait()
	return results
}
