// Package retry runs operations again with exponential backoff when they
// fail with a retryable error.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"
)

// ErrNoAttempts is returned when a Config allows no attempts at all.
var ErrNoAttempts = errors.New("retry: MaxAttempts must be greater than 0")

// jitterFraction bounds the random spread applied to every delay.
const jitterFraction = 0.1

// Config describes how often and how patiently an operation is retried.
type Config struct {
	// MaxAttempts counts the first call too.
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// RetryableErrors are case-insensitive substrings of retryable error
	// messages. RetryableTargets are sentinels matched with errors.Is.
	// With neither set every error is retried.
	RetryableErrors  []string
	RetryableTargets []error

	// OnRetry, when set, is called before sleeping with the 1-based number
	// of the attempt that just failed.
	OnRetry func(attempt int, err error)
}

// DefaultConfig returns a patient configuration suited to start-up work.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     5,
		InitialDelay:    time.Second,
		MaxDelay:        30 * time.Second,
		Multiplier:      2.0,
		RetryableErrors: []string{},
	}
}

// PostgresConfig retries connection-level PostgreSQL failures.
func PostgresConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryableErrors = DefaultPostgresRetryableErrors()
	return cfg
}

// ConflictConfig returns a short, fast configuration for write conflicts
// between concurrent requests. Only the given sentinels are retried.
func ConflictConfig(targets ...error) Config {
	return Config{
		MaxAttempts:      3,
		InitialDelay:     5 * time.Millisecond,
		MaxDelay:         50 * time.Millisecond,
		Multiplier:       2.0,
		RetryableTargets: targets,
	}
}

// DefaultPostgresRetryableErrors lists messages of transient PostgreSQL
// connection failures.
func DefaultPostgresRetryableErrors() []string {
	return []string{
		"connection refused",
		"connection reset",
		"connection reset by peer",
		"connection timed out",
		"i/o timeout",
		"dial tcp",
		"network is unreachable",
		"no connection could be made",
		"server closed the connection",
		"too many connections",
		"the database system is starting up",
	}
}

// Do calls fn until it succeeds, fails with a non-retryable error, runs
// out of attempts or ctx is done. The last error is returned unchanged.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	_, err := DoWithResult(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// DoWithResult is Do for operations that produce a value.
func DoWithResult[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	if cfg.MaxAttempts <= 0 {
		return zero, ErrNoAttempts
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		switch {
		case err == nil:
			return result, nil
		case attempt >= cfg.MaxAttempts, !IsRetryableError(err, cfg):
			return zero, err
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err)
		}
		if err := sleep(ctx, addJitter(cfg.Backoff(attempt-1))); err != nil {
			return zero, err
		}
	}
}

// Backoff returns the un-jittered delay after the given 0-based retry.
func (c Config) Backoff(retry int) time.Duration {
	return calculateDelay(retry, c)
}

// IsRetryableError reports whether err matches cfg's retry filters.
func IsRetryableError(err error, cfg Config) bool {
	if err == nil {
		return false
	}
	if len(cfg.RetryableErrors) == 0 && len(cfg.RetryableTargets) == 0 {
		return true
	}

	for _, target := range cfg.RetryableTargets {
		if errors.Is(err, target) {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range cfg.RetryableErrors {
		if strings.Contains(msg, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

func calculateDelay(retry int, cfg Config) time.Duration {
	retry = max(retry, 0)
	delay := float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(retry))
	return time.Duration(min(delay, float64(cfg.MaxDelay)))
}

func addJitter(delay time.Duration) time.Duration {
	//nolint:gosec // jitter needs no cryptographic randomness
	spread := float64(delay) * jitterFraction * (rand.Float64()*2 - 1)
	return delay + time.Duration(spread)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
