package history

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// max comparisons kept per owner; older ones are evicted from the tail
	Capacity = 50

	// comparedBy label used when the caller has no email
	UnknownCaller = "unknown"
)

// a persisted record of two usernames compared by one identity
type Comparison struct {
	ID         string    `json:"id"`
	User1      string    `json:"user1"`
	User2      string    `json:"user2"`
	Timestamp  time.Time `json:"timestamp"`
	ComparedBy string    `json:"comparedBy"`
}

// per-identity, capacity-bounded, most-recent-first comparison history.
// every method is scoped by ownerID; there is no global index by comparison id.
type Store interface {
	// returns the owner's history, newest first; empty when there is none
	List(ctx context.Context, ownerID string) ([]Comparison, error)
	// creates a comparison, puts it at the head and trims to Capacity
	Append(ctx context.Context, ownerID, user1, user2, comparedBy string) (*Comparison, error)
	// drops the comparison with that id; unknown ids are a no-op
	Remove(ctx context.Context, ownerID, comparisonID string) error
	// drops the owner's whole history; no-op when empty
	Clear(ctx context.Context, ownerID string) error
}

// in-memory Store; data lives as long as the process
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
	now     func() time.Time
	newID   func() string
}

// one owner's list with its own lock so owners never contend with each other
type bucket struct {
	mu      sync.Mutex
	entries []Comparison
}

// Redis-backed Store, one list per owner
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
	newID  func() string
}
