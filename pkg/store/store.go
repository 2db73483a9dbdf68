//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=store.go -destination=mock_store.go -package=store

package store

import "context"

// Store is a byte-oriented key/value backend.
type Store interface {
	// Get returns the value for key, or an error wrapping ErrStoreKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Has reports whether key exists.
	Has(ctx context.Context, key string) (bool, error)
}
