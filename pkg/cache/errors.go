package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared by cache-backed fetchers.
var (
	// ErrNotFound is returned when a requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// RetryableError wraps an error to indicate it should trigger a retry.
type RetryableError struct {
	Err error

	// After, when positive, overrides the backoff delay before the next
	// attempt (for example from a Retry-After header).
	After time.Duration
}

// Retryable wraps an error as a RetryableError.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// RetryableAfter wraps err and asks the next attempt to wait for d.
func RetryableAfter(err error, d time.Duration) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err, After: d}
}

// Error returns the error message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable checks if an error is wrapped with RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// Backoff parameters for RetryWithBackoff. Tests shorten BaseDelay.
var (
	RetryAttempts = 3
	BaseDelay     = time.Second
	MaxDelay      = 30 * time.Second
)

// RetryWithBackoff retries fn up to RetryAttempts times with exponential
// backoff. Only errors wrapped with Retryable trigger retries.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := BaseDelay
	var lastErr error

	for i := 0; i < RetryAttempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !IsRetryable(err) {
			return err
		}
		if i == RetryAttempts-1 {
			break
		}

		wait := delay
		var re *RetryableError
		if errors.As(err, &re) && re.After > 0 {
			wait = min(re.After, MaxDelay)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
			delay *= 2
		}
	}
	return lastErr
}
