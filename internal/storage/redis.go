package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKV stores ledger payloads in Redis. Keys are namespaced with a
// prefix so carts and wishlists never collide with other keys, and carry
// a TTL so abandoned ledgers eventually expire.
type RedisKV struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisKV(rdb *redis.Client, prefix string, ttl time.Duration) *RedisKV {
	return &RedisKV{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, s.prefix+key, value, s.ttl).Err()
}
