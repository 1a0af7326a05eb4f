package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "unihub:session:"

// RedisStore keeps sessions as JSON values with a TTL, so state survives
// process restarts and the TTL doubles as the eviction policy. Read-modify-
// write is not atomic across replicas; per-user last-write-wins is the
// accepted model here.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration // 0 = no expiry
}

// NewRedisStore wraps an existing client. ttl 0 stores keys without expiry.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, userID string) (Session, error) {
	return s.load(ctx, userID)
}

func (s *RedisStore) Update(ctx context.Context, userID string, mutate func(*Session)) (Session, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return Session{}, err
	}
	mutate(&sess)

	data, err := json.Marshal(sess)
	if err != nil {
		return Session{}, fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+userID, data, s.ttl).Err(); err != nil {
		return Session{}, fmt.Errorf("store session for %s: %w", userID, err)
	}
	return sess, nil
}

func (s *RedisStore) load(ctx context.Context, userID string) (Session, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("load session for %s: %w", userID, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// Corrupt value: fall back to a fresh session instead of wedging
		// the user forever.
		return New(), nil
	}
	return sess, nil
}
