package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	errUtils "github.com/cloudposse/tokenicon/errors"
)

const (
	defaultBoltBucket  = "tokenicon"
	defaultBoltTimeout = time.Second
)

// BoltStoreOptions configures a BoltStore.
type BoltStoreOptions struct {
	Path    string        `mapstructure:"path"`
	Bucket  string        `mapstructure:"bucket"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// BoltStore keeps values in a single bbolt bucket.
type BoltStore struct {
	db     *bolt.DB
	bucket []byte
}

var _ Store = (*BoltStore)(nil)

// NewBoltStore opens (creating if needed) the database at opts.Path.
func NewBoltStore(opts BoltStoreOptions) (*BoltStore, error) {
	if opts.Path == "" {
		return nil, errUtils.Build(errUtils.ErrMissingStoreOption).
			WithContext("store", TypeBolt).
			WithContext("option", "path").
			Err()
	}
	if opts.Bucket == "" {
		opts.Bucket = defaultBoltBucket
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultBoltTimeout
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, errUtils.Build(errUtils.ErrStoreConnection).WithCause(err).WithContext("path", opts.Path).Err()
	}

	db, err := bolt.Open(opts.Path, 0o600, &bolt.Options{Timeout: opts.Timeout})
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrStoreConnection).WithCause(err).WithContext("path", opts.Path).Err()
	}

	bucket := []byte(opts.Bucket)
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errUtils.Build(errUtils.ErrStoreConnection).WithCause(err).WithContext("bucket", opts.Bucket).Err()
	}

	return &BoltStore{db: db, bucket: bucket}, nil
}

// Get reads key from the bucket.
func (s *BoltStore) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(key))
		if v == nil {
			return fmt.Errorf("%w: '%s'", errUtils.ErrStoreKeyNotFound, key)
		}
		// Bolt values are only valid for the life of the transaction.
		value = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set writes key to the bucket.
func (s *BoltStore) Set(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrStoreWrite, err)
	}
	return nil
}

// Has reports whether key exists in the bucket.
func (s *BoltStore) Has(_ context.Context, key string) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(s.bucket).Get([]byte(key)) != nil
		return nil
	})
	if err != nil {
		return false, fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrStoreRead, err)
	}
	return found, nil
}

// Close releases the database file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
