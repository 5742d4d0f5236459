package geocode

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const warmConcurrency = 4

// Warm prefetches lookup outcomes for a list of queries, typically at
// startup. Individual failures never fail the batch, and all requests honor
// the client's global rate limit. Returns how many queries resolved to
// coordinates.
func (c *Client) Warm(ctx context.Context, queries []string) int {
	if len(queries) == 0 {
		return 0
	}

	var resolved atomic.Int32

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(warmConcurrency)

	for _, q := range queries {
		q := q
		eg.Go(func() error {
			r, err := c.Lookup(gctx, q)
			if err == nil && r.Found {
				resolved.Add(1)
			}
			return nil
		})
	}

	_ = eg.Wait()
	return int(resolved.Load())
}
