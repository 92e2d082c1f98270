// Package retry runs an operation a bounded number of times with
// backoff between attempts.
package retry

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const defaultDelay = 100 * time.Millisecond

type Backoff func(attempt int) time.Duration

type ShouldRetry func(error) bool

type RetryConfig struct {
	MaxAttempts int
	Backoff     Backoff
	ShouldRetry ShouldRetry
}

func (c *RetryConfig) normalize() {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 1
	}

	if c.Backoff == nil {
		c.Backoff = ExponentialBackoff(defaultDelay)
	}

	if c.ShouldRetry == nil {
		c.ShouldRetry = func(error) bool { return true }
	}
}

func ExponentialBackoff(delay time.Duration) Backoff {
	return func(attempt int) time.Duration {
		base := 1 << attempt * delay
		jitter := time.Duration(rand.IntN(int(base/2)) + 1)
		return base + jitter
	}
}

func Do(ctx context.Context, c RetryConfig, fn func() error) error {
	_, err := DoWithResult(ctx, c, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

func DoWithResult[T any](ctx context.Context, c RetryConfig, fn func() (T, error)) (T, error) {
	var (
		zero, result T
		err          error
	)

	err = ctx.Err()
	if err != nil {
		return zero, err
	}

	c.normalize()
	timer := time.NewTimer(0)
	defer timer.Stop()

	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		result, err = fn()
		if err == nil || !c.ShouldRetry(err) {
			return result, err
		}

		if attempt == c.MaxAttempts {
			break
		}

		wait := c.Backoff(attempt)
		timer.Reset(wait)
		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("%w: %w", ctx.Err(), err)
		case <-timer.C:
		}
	}

	return zero, err
}
