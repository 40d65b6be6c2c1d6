package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisStore implements Store using Redis GET/SET/DEL.
type redisStore struct{ rc *redis.Client }

// NewRedisStore creates a Store backed by an existing Redis client.
func NewRedisStore(rc *redis.Client) Store {
	return &redisStore{rc: rc}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	// namespace keys for safety
	v, err := s.rc.Get(ctx, "cache:"+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return s.rc.Set(ctx, "cache:"+key, value, ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.rc.Del(ctx, "cache:"+key).Err()
}
