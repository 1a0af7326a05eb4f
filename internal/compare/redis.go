package compare

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "unihub:compare:"

// RedisStore keeps each user's comparison set as one JSON array with a TTL,
// matching the session store's retention policy.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration // 0 = no expiry
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, userID string) ([]string, error) {
	return s.load(ctx, userID)
}

func (s *RedisStore) Add(ctx context.Context, userID, recordID string) ([]string, error) {
	ids, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids, addErr := add(ids, recordID)
	if addErr != nil {
		return ids, addErr
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("marshal comparison set: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+userID, data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store comparison set for %s: %w", userID, err)
	}
	return ids, nil
}

func (s *RedisStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("clear comparison set for %s: %w", userID, err)
	}
	return nil
}

func (s *RedisStore) load(ctx context.Context, userID string) ([]string, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load comparison set for %s: %w", userID, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, nil // corrupt value: treat as empty
	}
	return ids, nil
}
