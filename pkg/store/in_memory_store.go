package store

import (
	"context"
	"fmt"
	"sync"

	errUtils "github.com/cloudposse/tokenicon/errors"
)

// InMemoryStore is an in-memory store implementation.
type InMemoryStore struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// Ensure InMemoryStore implements the Store interface.
var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore initializes a new InMemoryStore. Options are accepted for registry symmetry and ignored.
func NewInMemoryStore(_ map[string]interface{}) (*InMemoryStore, error) {
	return &InMemoryStore{data: make(map[string][]byte)}, nil
}

// Set stores a copy of value in memory.
func (m *InMemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Get retrieves a copy of the value stored under key.
func (m *InMemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return nil, fmt.Errorf("%w: '%s'", errUtils.ErrStoreKeyNotFound, key)
	}
	return append([]byte(nil), value...), nil
}

// Has reports whether key is present.
func (m *InMemoryStore) Has(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.data[key]
	return exists, nil
}
