package store

import (
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/tokenicon/errors"
	"github.com/cloudposse/tokenicon/pkg/schema"
)

func TestNewStore(t *testing.T) {
	mr := miniredis.RunT(t)
	boltPath := filepath.Join(t.TempDir(), "icons.db")

	tests := []struct {
		name    string
		cfg     schema.StoreConfig
		want    interface{}
		wantErr error
	}{
		{"empty type is in-memory", schema.StoreConfig{}, &InMemoryStore{}, nil},
		{"in-memory", schema.StoreConfig{Type: TypeInMemory}, &InMemoryStore{}, nil},
		{
			"redis",
			schema.StoreConfig{Type: TypeRedis, Options: map[string]interface{}{"url": "redis://" + mr.Addr(), "ttl": "1h"}},
			&RedisStore{},
			nil,
		},
		{
			"bolt",
			schema.StoreConfig{Type: TypeBolt, Options: map[string]interface{}{"path": boltPath}},
			&BoltStore{},
			nil,
		},
		{"redis without url", schema.StoreConfig{Type: TypeRedis}, nil, errUtils.ErrMissingStoreOption},
		{
			"bad option type",
			schema.StoreConfig{Type: TypeRedis, Options: map[string]interface{}{"ttl": []string{"x"}}},
			nil,
			errUtils.ErrStoreOptions,
		},
		{"unknown", schema.StoreConfig{Type: "etcd"}, nil, errUtils.ErrStoreTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStore(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
			if b, ok := s.(*BoltStore); ok {
				_ = b.Close()
			}
		})
	}
}
