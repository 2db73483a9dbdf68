//go:build !windows

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"

	errUtils "github.com/cloudposse/tokenicon/errors"
	log "github.com/cloudposse/tokenicon/pkg/logger"
)

const (
	lockTimeout    = 500 * time.Millisecond
	lockRetryDelay = 10 * time.Millisecond
)

type flockFileLock struct {
	path    string
	timeout time.Duration
}

// NewFileLock returns a lock guarding path. The lock file is path + ".lock",
// so atomic renames onto path leave it in place.
func NewFileLock(path string) FileLock {
	return &flockFileLock{path: path + ".lock", timeout: lockTimeout}
}

// WithLock runs fn under an exclusive lock, waiting up to the lock timeout.
func (f *flockFileLock) WithLock(fn func() error) error {
	fl := flock.New(f.path)

	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	switch {
	case errors.Is(err, context.DeadlineExceeded), err == nil && !locked:
		return fmt.Errorf("%w: %s is held by another process", errUtils.ErrCacheLocked, f.path)
	case err != nil:
		return errors.Join(errUtils.ErrCacheLocked, err)
	}
	defer f.unlock(fl)

	return fn()
}

// WithRLock runs fn under a shared lock. When a writer holds the lock fn runs
// unlocked; readers see either the old or the new file.
func (f *flockFileLock) WithRLock(fn func() error) error {
	fl := flock.New(f.path)

	locked, err := fl.TryRLock()
	if err != nil {
		return errors.Join(errUtils.ErrCacheLocked, err)
	}
	if locked {
		defer f.unlock(fl)
	}
	return fn()
}

func (f *flockFileLock) unlock(fl *flock.Flock) {
	if err := fl.Unlock(); err != nil {
		log.Trace("Failed to release lock", "path", f.path, "error", err)
	}
}
