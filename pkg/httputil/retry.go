package httputil

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// maxRetryDelay caps a server-requested wait. Longer waits (such as a
// rate-limit window resetting in an hour) end the retry loop instead.
const maxRetryDelay = time.Minute

// RetryPolicy runs attempt one or more times and returns the final error.
// Implementations must stop when ctx is done.
type RetryPolicy func(ctx context.Context, attempt func() error) error

// NoRetry runs attempt exactly once.
func NoRetry(_ context.Context, attempt func() error) error {
	return attempt()
}

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (network timeouts, connection resets) with this
// type so that [Backoff] knows to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable wraps err as a [RetryableError]. It returns nil for nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err, or any error it wraps, is transient.
func IsRetryable(err error) bool {
	if errors.As(err, new(*RetryableError)) {
		return true
	}
	var r interface{ Retryable() bool }
	return errors.As(err, &r) && r.Retryable()
}

// RetryDelay returns the wait requested by err, or 0 if it requests none.
func RetryDelay(err error) time.Duration {
	var d interface{ RetryDelay() time.Duration }
	if errors.As(err, &d) {
		return d.RetryDelay()
	}
	return 0
}

// Backoff returns a policy that retries transient errors with exponential
// backoff, making at most maxTries attempts in total. A zero maxTries is
// treated as 1. initial sets the first delay; zero keeps the backoff
// library default.
func Backoff(maxTries uint, initial time.Duration) RetryPolicy {
	maxTries = max(maxTries, 1)
	return func(ctx context.Context, attempt func() error) error {
		b := backoff.NewExponentialBackOff()
		if initial > 0 {
			b.InitialInterval = initial
			b.MaxInterval = 60 * initial
		}

		var tries uint
		_, err := backoff.Retry(ctx, func() (struct{}, error) {
			tries++
			err := attempt()
			switch {
			case err == nil:
				return struct{}{}, nil
			case !IsRetryable(err):
				return struct{}{}, backoff.Permanent(err)
			}
			if d := RetryDelay(err); d > 0 && tries < maxTries {
				if d > maxRetryDelay {
					return struct{}{}, backoff.Permanent(err)
				}
				return struct{}{}, backoff.RetryAfter(int((d + time.Second - 1) / time.Second))
			}
			return struct{}{}, err
		},
			backoff.WithBackOff(b),
			backoff.WithMaxTries(maxTries),
		)
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			return perm.Err
		}
		return err
	}
}
