package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	errUtils "github.com/cloudposse/tokenicon/errors"
)

const defaultRedisPrefix = "tokenicon"

// RedisClient is the subset of the go-redis client the store needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// RedisStoreOptions configures a RedisStore.
type RedisStoreOptions struct {
	URL    string        `mapstructure:"url"`
	Prefix string        `mapstructure:"prefix"`
	TTL    time.Duration `mapstructure:"ttl"`
}

// RedisStore keeps values in Redis under "<prefix>/<key>".
type RedisStore struct {
	prefix      string
	ttl         time.Duration
	redisClient RedisClient
}

var (
	_ Store     = (*RedisStore)(nil)
	_ io.Closer = (*RedisStore)(nil)
)

// NewRedisStore connects lazily to the Redis server named by opts.URL.
func NewRedisStore(opts RedisStoreOptions) (*RedisStore, error) {
	if opts.URL == "" {
		return nil, errUtils.Build(errUtils.ErrMissingStoreOption).
			WithContext("store", TypeRedis).
			WithContext("option", "url").
			Err()
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrStoreConnection).WithCause(err).Err()
	}

	return NewRedisStoreWithClient(redis.NewClient(redisOpts), opts), nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client RedisClient, opts RedisStoreOptions) *RedisStore {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{
		prefix:      strings.TrimSuffix(prefix, "/"),
		ttl:         opts.TTL,
		redisClient: client,
	}
}

func (s *RedisStore) fullKey(key string) string {
	return s.prefix + "/" + key
}

// Get reads key from Redis.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.redisClient.Get(ctx, s.fullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: '%s'", errUtils.ErrStoreKeyNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrStoreRead, err)
	}
	return value, nil
}

// Set writes key to Redis with the configured TTL (zero keeps it forever).
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.redisClient.Set(ctx, s.fullKey(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrStoreWrite, err)
	}
	return nil
}

// Has reports whether key exists in Redis.
func (s *RedisStore) Has(ctx context.Context, key string) (bool, error) {
	n, err := s.redisClient.Exists(ctx, s.fullKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrStoreRead, err)
	}
	return n > 0, nil
}

// Close releases the client's connection pool.
func (s *RedisStore) Close() error {
	return s.redisClient.Close()
}
