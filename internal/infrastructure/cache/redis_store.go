package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "idem:"
	pendingMarker = "pending"
)

type RedisStore struct {
	rdb *goredis.Client
}

var _ IdempotencyStore = (*RedisStore)(nil)

// NewRedisStore connects and pings within 5s.
func NewRedisStore(addr string) (*RedisStore, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, keyPrefix+key, pendingMarker, ttl).Result()
}

func (s *RedisStore) Save(ctx context.Context, key string, resp StoredResponse, ttl time.Duration) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyPrefix+key, raw, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) (StoredResponse, bool, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return StoredResponse{}, false, nil
	}
	if err != nil {
		return StoredResponse{}, false, err
	}
	if string(raw) == pendingMarker {
		return StoredResponse{}, true, ErrKeyInFlight
	}
	var resp StoredResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return StoredResponse{}, false, fmt.Errorf("decode stored response: %w", err)
	}
	return resp, true, nil
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, keyPrefix+key).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
