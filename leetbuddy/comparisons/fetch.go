package comparisons

import (
	"context"

	"codeberg.org/leetbuddy/server/internal/leetcode"
	"golang.org/x/sync/errgroup"
)

// fetches both profiles concurrently. both requests start before either is
// awaited; the first failure cancels the other and no partial result is returned.
func FetchPair(ctx context.Context, fetcher leetcode.Fetcher, username1, username2 string) (*leetcode.Stats, *leetcode.Stats, error) {
	var a, b *leetcode.Stats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := fetcher.FetchProfile(gctx, username1)
		if err != nil {
			return err
		}
		a = stats
		return nil
	})

	g.Go(func() error {
		stats, err := fetcher.FetchProfile(gctx, username2)
		if err != nil {
			return err
		}
		b = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}
