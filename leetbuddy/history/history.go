package history

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
)

// ensure both backends satisfy the interface
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)

// creates an empty in-memory history store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (s *MemoryStore) List(_ context.Context, ownerID string) ([]Comparison, error) {
	b := s.lookup(ownerID)
	if b == nil {
		return []Comparison{}, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// never nil, so an emptied history still encodes as []
	entries := make([]Comparison, len(b.entries))
	copy(entries, b.entries)
	return entries, nil
}

func (s *MemoryStore) Append(_ context.Context, ownerID, user1, user2, comparedBy string) (*Comparison, error) {
	comparison := newComparison(s.newID(), user1, user2, comparedBy, s.now())
	b := s.bucketFor(ownerID)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = slices.Insert(b.entries, 0, comparison)
	if len(b.entries) > Capacity {
		b.entries = b.entries[:Capacity]
	}

	return &comparison, nil
}

func (s *MemoryStore) Remove(_ context.Context, ownerID, comparisonID string) error {
	b := s.lookup(ownerID)
	if b == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = slices.DeleteFunc(b.entries, func(c Comparison) bool {
		return c.ID == comparisonID
	})

	return nil
}

// empties the bucket in place; dropping the map entry would let a concurrent
// Append write into a bucket nobody can reach anymore
func (s *MemoryStore) Clear(_ context.Context, ownerID string) error {
	b := s.lookup(ownerID)
	if b == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = nil
	return nil
}

func (s *MemoryStore) lookup(ownerID string) *bucket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.buckets[ownerID]
}

// returns the owner's bucket, creating it on first use
func (s *MemoryStore) bucketFor(ownerID string) *bucket {
	if b := s.lookup(ownerID); b != nil {
		return b
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if b, exists := s.buckets[ownerID]; exists {
		return b
	}

	b := &bucket{}
	s.buckets[ownerID] = b
	return b
}

func newComparison(id, user1, user2, comparedBy string, now time.Time) Comparison {
	if comparedBy == "" {
		comparedBy = UnknownCaller
	}

	return Comparison{
		ID:         id,
		User1:      user1,
		User2:      user2,
		Timestamp:  now.UTC(),
		ComparedBy: comparedBy,
	}
}
