package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"FinAdvisor/internal/domain/models"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a SnapshotStore backed by redis. Records are JSON-encoded
// under a namespaced key and expire after the retention window, which is
// kept longer than the cache TTL so stale entries are still visible to the
// refresh decision.
type RedisStore struct {
	cli       *redis.Client
	retention time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore creates a redis-backed snapshot store.
func NewRedisStore(cfg RedisConfig) *RedisStore {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	return &RedisStore{cli: rdb, retention: time.Hour}
}

func redisKey(key string) string { return "snapshot:" + key }

func (s *RedisStore) FindOne(ctx context.Context, key string) (*models.SnapshotRecord, error) {
	b, err := s.cli.Get(ctx, redisKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var rec models.SnapshotRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode snapshot record: %w", err)
	}
	return &rec, nil
}

func (s *RedisStore) Upsert(ctx context.Context, key string, rec *models.SnapshotRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode snapshot record: %w", err)
	}
	if err := s.cli.Set(ctx, redisKey(key), b, s.retention).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close closes the underlying redis client.
func (s *RedisStore) Close() error { return s.cli.Close() }
