package mocks

import (
	"context"

	"codeberg.org/leetbuddy/server/internal/leetcode"
	"github.com/stretchr/testify/mock"
)

// MockFetcher is a mock implementation of leetcode.Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchProfile(ctx context.Context, username string) (*leetcode.Stats, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leetcode.Stats), args.Error(1)
}
