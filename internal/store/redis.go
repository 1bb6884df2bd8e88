package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/mr-thop/recruit-edge-api/internal/models"
)

const redisKeyPrefix = "schedule:"

// RedisStore is the ScheduleStore used when a Redis address is
// configured, so schedules survive process restarts until their TTL
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store and verifies the
// connection
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if _, err := client.Ping(pingCtx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	return &RedisStore{client: client}, nil
}

// Save stores a schedule as JSON with the given TTL
func (s *RedisStore) Save(ctx context.Context, record models.ScheduleRecord, ttl time.Duration) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule %s: %w", record.ID, err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+record.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache schedule %s: %w", record.ID, err)
	}
	return nil
}

// Get returns a stored schedule or ErrNotFound once the TTL has passed
func (s *RedisStore) Get(ctx context.Context, id string) (models.ScheduleRecord, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.ScheduleRecord{}, ErrNotFound
	}
	if err != nil {
		return models.ScheduleRecord{}, fmt.Errorf("failed to read schedule %s: %w", id, err)
	}

	var record models.ScheduleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return models.ScheduleRecord{}, fmt.Errorf("failed to unmarshal schedule %s: %w", id, err)
	}
	return record, nil
}

// Close releases the underlying Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ ScheduleStore = (*RedisStore)(nil)
