//go:build windows

package cache

import "sync"

// mutexFileLock serializes access within the process only.
type mutexFileLock struct {
	mu sync.RWMutex
}

// NewFileLock creates a process-local FileLock.
func NewFileLock(_ string) FileLock {
	return &mutexFileLock{}
}

func (m *mutexFileLock) WithLock(fn func() error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn()
}

func (m *mutexFileLock) WithRLock(fn func() error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fn()
}
