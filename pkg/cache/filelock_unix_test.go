//go:build !windows

package cache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/tokenicon/errors"
)

func TestNewFileLock_LockPathSuffix(t *testing.T) {
	lock, ok := NewFileLock("/var/lib/tokenicon/tokens.json").(*flockFileLock)
	require.True(t, ok)
	assert.Equal(t, "/var/lib/tokenicon/tokens.json.lock", lock.path)
	assert.Equal(t, lockTimeout, lock.timeout)
}

func TestWithLock_PropagatesFnError(t *testing.T) {
	lock := NewFileLock(filepath.Join(t.TempDir(), "cache"))
	expected := errors.New("write failed")

	assert.Equal(t, expected, lock.WithLock(func() error { return expected }))
	assert.Equal(t, expected, lock.WithRLock(func() error { return expected }))
}

func TestWithLock_TimesOutWhenContended(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "contended.lock")

	blocker := flock.New(lockPath)
	locked, err := blocker.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer func() { _ = blocker.Unlock() }()

	lock := &flockFileLock{path: lockPath, timeout: 50 * time.Millisecond}
	err = lock.WithLock(func() error {
		t.Fatal("function should not have been executed")
		return nil
	})

	assert.ErrorIs(t, err, errUtils.ErrCacheLocked)
}

func TestWithRLock_FallbackWithoutLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "contended.lock")

	blocker := flock.New(lockPath)
	locked, err := blocker.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer func() { _ = blocker.Unlock() }()

	executed := false
	lock := &flockFileLock{path: lockPath, timeout: 50 * time.Millisecond}
	require.NoError(t, lock.WithRLock(func() error {
		executed = true
		return nil
	}))
	assert.True(t, executed)
}

func TestWithLock_InvalidLockPath(t *testing.T) {
	lock := &flockFileLock{path: "/nonexistent/dir/test.lock", timeout: 50 * time.Millisecond}

	err := lock.WithLock(func() error {
		t.Fatal("function should not have been executed")
		return nil
	})

	assert.ErrorIs(t, err, errUtils.ErrCacheLocked)
}
