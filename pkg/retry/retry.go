package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	errUtils "github.com/cloudposse/tokenicon/errors"
	"github.com/cloudposse/tokenicon/pkg/schema"
)

// Func represents a function that can be retried.
type Func func(ctx context.Context) error

// Predicate reports whether an error is worth another attempt.
type Predicate func(error) bool

// Executor handles the retry logic.
type Executor struct {
	config schema.RetryConfig
	rand   *rand.Rand
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a new retry executor with the given config.
// Zero-valued fields fall back to DefaultConfig.
func New(config schema.RetryConfig) *Executor {
	return &Executor{
		config: withDefaults(config),
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:  sleepContext,
	}
}

// Config returns the effective configuration.
func (e *Executor) Config() schema.RetryConfig {
	return e.config
}

// Execute runs the function with retry logic.
func (e *Executor) Execute(ctx context.Context, fn Func) error {
	return e.ExecuteWithPredicate(ctx, fn, RetryOnAnyError)
}

// ExecuteWithPredicate runs fn until it succeeds, shouldRetry rejects the error,
// attempts run out, or the elapsed-time budget is spent.
func (e *Executor) ExecuteWithPredicate(ctx context.Context, fn Func, shouldRetry Predicate) error {
	startTime := time.Now()

	var lastErr error
	for attempt := 1; attempt <= e.config.MaxAttempts; attempt++ {
		if e.config.MaxElapsedTime > 0 && time.Since(startTime) > e.config.MaxElapsedTime {
			return errUtils.Build(errUtils.ErrRetryTimeout).
				WithCause(lastErr).
				WithContext("max_elapsed_time", e.config.MaxElapsedTime.String()).
				Err()
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return err
		}

		if attempt == e.config.MaxAttempts {
			return fmt.Errorf("%w: max attempts (%d) exceeded, last error: %w", errUtils.ErrRetryExhausted, e.config.MaxAttempts, err)
		}

		if err := e.sleep(ctx, e.calculateDelay(attempt)); err != nil {
			return fmt.Errorf("context cancelled during retry: %w", err)
		}
	}
	return lastErr
}

const (
	jitterFlipChance = 0.5
	jitterFraction   = 0.1
)

// calculateDelay calculates the delay for the next retry attempt.
func (e *Executor) calculateDelay(attempt int) time.Duration {
	var delay time.Duration

	switch e.config.BackoffStrategy {
	case schema.BackoffConstant:
		delay = e.config.InitialDelay
	case schema.BackoffLinear:
		delay = time.Duration(float64(e.config.InitialDelay) * float64(attempt))
	case schema.BackoffExponential:
		delay = time.Duration(float64(e.config.InitialDelay) * math.Pow(e.config.Multiplier, float64(attempt-1)))
	default:
		delay = e.config.InitialDelay
	}

	if e.config.MaxDelay > 0 && delay > e.config.MaxDelay {
		delay = e.config.MaxDelay
	}

	if e.config.RandomJitter {
		jitter := time.Duration(e.rand.Float64() * float64(delay) * jitterFraction)
		if e.rand.Float64() < jitterFlipChance {
			delay += jitter
		} else {
			delay -= jitter
		}

		if delay < 0 {
			delay = 0
		}
	}

	return delay
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Do is a convenience function that creates an executor and runs the function.
func Do(ctx context.Context, config *schema.RetryConfig, fn Func) error {
	return WithPredicate(ctx, config, fn, RetryOnAnyError)
}

// WithPredicate allows you to specify which errors should trigger a retry.
func WithPredicate(ctx context.Context, config *schema.RetryConfig, fn Func, shouldRetry Predicate) error {
	if config == nil {
		temp := DefaultConfig()
		config = &temp
	}
	return New(*config).ExecuteWithPredicate(ctx, fn, shouldRetry)
}

const (
	defaultMaxAttempts    = 3
	defaultInitialDelay   = 200 * time.Millisecond
	defaultMaxDelay       = 2 * time.Second
	defaultMultiplier     = 2.0
	defaultMaxElapsedTime = 30 * time.Second
)

// DefaultConfig returns the policy used for icon downloads.
func DefaultConfig() schema.RetryConfig {
	return schema.RetryConfig{
		MaxAttempts:     defaultMaxAttempts,
		BackoffStrategy: schema.BackoffExponential,
		InitialDelay:    defaultInitialDelay,
		MaxDelay:        defaultMaxDelay,
		RandomJitter:    true,
		Multiplier:      defaultMultiplier,
		MaxElapsedTime:  defaultMaxElapsedTime,
	}
}

func withDefaults(config schema.RetryConfig) schema.RetryConfig {
	def := DefaultConfig()
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = def.MaxAttempts
	}
	if config.BackoffStrategy == "" {
		config.BackoffStrategy = def.BackoffStrategy
	}
	if config.InitialDelay < 0 {
		config.InitialDelay = 0
	}
	if config.Multiplier <= 0 {
		config.Multiplier = def.Multiplier
	}
	return config
}

// RetryOnAnyError retries on any error.
var RetryOnAnyError Predicate = func(error) bool { return true }
