package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyHistory = "leetbuddy:history:%s"

// creates a Redis-backed history store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (s *RedisStore) List(ctx context.Context, ownerID string) ([]Comparison, error) {
	raw, err := s.client.LRange(ctx, historyKey(ownerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	comparisons := make([]Comparison, 0, len(raw))
	for _, item := range raw {
		var c Comparison
		if err := json.Unmarshal([]byte(item), &c); err != nil {
			return nil, fmt.Errorf("failed to decode history entry: %w", err)
		}
		comparisons = append(comparisons, c)
	}

	return comparisons, nil
}

func (s *RedisStore) Append(ctx context.Context, ownerID, user1, user2, comparedBy string) (*Comparison, error) {
	comparison := newComparison(s.newID(), user1, user2, comparedBy, s.now())

	data, err := json.Marshal(comparison)
	if err != nil {
		return nil, fmt.Errorf("failed to encode comparison: %w", err)
	}

	key := historyKey(ownerID)

	// push and trim in one MULTI so the list never exceeds Capacity
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, Capacity-1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to append history: %w", err)
	}

	return &comparison, nil
}

func (s *RedisStore) Remove(ctx context.Context, ownerID, comparisonID string) error {
	key := historyKey(ownerID)

	raw, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	for _, item := range raw {
		var c Comparison
		if err := json.Unmarshal([]byte(item), &c); err != nil {
			continue
		}

		if c.ID != comparisonID {
			continue
		}

		if err := s.client.LRem(ctx, key, 0, item).Err(); err != nil {
			return fmt.Errorf("failed to remove history entry: %w", err)
		}
	}

	return nil
}

func (s *RedisStore) Clear(ctx context.Context, ownerID string) error {
	if err := s.client.Del(ctx, historyKey(ownerID)).Err(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	return nil
}

func historyKey(ownerID string) string {
	return fmt.Sprintf(keyHistory, ownerID)
}
