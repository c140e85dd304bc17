package storage

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps keys in Redis so several storefront processes can share one guest cart.
type RedisStore struct {
	client *redis.Client
}

var _ repository.KeyValueStore = (*RedisStore)(nil)

// NewRedisStore creates a client for cfg. No connection is made until first use.
func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// Ping verifies the server is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return errors.Wrap(s.client.Ping(ctx).Err(), "ping redis")
}

// Get returns the value stored under key, or repository.ErrKeyNotFound.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "redis get %q", key)
	}

	return value, nil
}

// Set stores value under key without expiry.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.Wrapf(s.client.Set(ctx, key, value, 0).Err(), "redis set %q", key)
}

// Delete removes key; a missing key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(s.client.Del(ctx, key).Err(), "redis del %q", key)
}

// Close releases the client.
func (s *RedisStore) Close() error {
	return errors.WithStack(s.client.Close())
}
