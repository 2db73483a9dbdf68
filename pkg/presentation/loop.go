package presentation

import (
	"context"
	"sync"
)

// Dispatcher marshals work onto the presentation context.
type Dispatcher interface {
	// Post schedules fn to run on the presentation context. It never blocks.
	Post(fn func())
}

// Loop is a single-goroutine run loop. Functions posted to it run in order,
// one at a time, on whichever goroutine calls Run or Drain.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
}

var _ Dispatcher = (*Loop)(nil)

// NewLoop creates an idle Loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post implements Dispatcher.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}

	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run executes posted functions until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.Drain()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Drain runs every function queued so far, including ones they post, and returns the count.
func (l *Loop) Drain() int {
	n := 0
	for {
		l.mu.Lock()
		batch := l.pending
		l.pending = nil
		l.mu.Unlock()

		if len(batch) == 0 {
			return n
		}
		for _, fn := range batch {
			fn()
			n++
		}
	}
}

// Len returns the number of queued functions.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}
