package store

import (
	"fmt"

	errUtils "github.com/cloudposse/tokenicon/errors"
	"github.com/cloudposse/tokenicon/pkg/schema"
)

const (
	TypeInMemory = "in-memory"
	TypeRedis    = "redis"
	TypeBolt     = "bolt"
)

// NewStore builds the backend named by cfg.Type. An empty type selects in-memory.
func NewStore(cfg schema.StoreConfig) (Store, error) {
	switch cfg.Type {
	case "", TypeInMemory:
		s, err := NewInMemoryStore(cfg.Options)
		if err != nil {
			return nil, err
		}
		return s, nil

	case TypeRedis:
		var opts RedisStoreOptions
		if err := parseOptions(cfg.Options, &opts); err != nil {
			return nil, fmt.Errorf("failed to parse redis store options: %w", err)
		}
		s, err := NewRedisStore(opts)
		if err != nil {
			return nil, err
		}
		return s, nil

	case TypeBolt:
		var opts BoltStoreOptions
		if err := parseOptions(cfg.Options, &opts); err != nil {
			return nil, fmt.Errorf("failed to parse bolt store options: %w", err)
		}
		s, err := NewBoltStore(opts)
		if err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, errUtils.Build(errUtils.ErrStoreTypeNotFound).
			WithContext("type", cfg.Type).
			WithHint("Supported store types are in-memory, redis and bolt").
			Err()
	}
}
