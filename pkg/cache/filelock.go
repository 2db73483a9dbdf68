package cache

// FileLock serializes access to cache files across processes.
type FileLock interface {
	// WithLock executes fn while holding an exclusive lock.
	WithLock(fn func() error) error
	// WithRLock executes fn while holding a shared lock.
	WithRLock(fn func() error) error
}
