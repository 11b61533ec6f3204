package comparisons

import (
	"context"
	"math/rand/v2"
	"time"

	"codeberg.org/leetbuddy/server/internal/leetcode"
)

// creates a comparison service backed by fetcher
func NewService(fetcher leetcode.Fetcher) *Service {
	return &Service{
		fetcher: fetcher,
		now:     time.Now,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // placeholder chart data
	}
}

// fetches both profiles and compares them by solved count
func (s *Service) Compare(ctx context.Context, username1, username2, comparedBy string) (*Report, error) {
	a, b, err := FetchPair(ctx, s.fetcher, username1, username2)
	if err != nil {
		return nil, err
	}

	return &Report{
		Result:     Compare(username1, username2, a, b),
		ComparedBy: comparedBy,
		Timestamp:  s.now().UTC(),
	}, nil
}

// fetches both profiles and builds the chart payload
func (s *Service) ChartData(ctx context.Context, username1, username2 string) (*ChartData, error) {
	a, b, err := FetchPair(ctx, s.fetcher, username1, username2)
	if err != nil {
		return nil, err
	}

	s.rngMu.Lock()
	monthly := MonthlySeries(s.rng)
	s.rngMu.Unlock()

	return &ChartData{
		Monthly:    monthly,
		Categories: CompareCategories(a, b),
		Comparison: ScoreMetrics(username1, username2, a, b),
		Synthetic:  true,
	}, nil
}

// fetches a single profile
func (s *Service) Profile(ctx context.Context, username string) (*leetcode.Stats, error) {
	return s.fetcher.FetchProfile(ctx, username)
}

// returns the service clock, shared with handlers so timestamps agree
func (s *Service) Now() time.Time {
	return s.now().UTC()
}
