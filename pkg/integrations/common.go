package integrations

import (
	"errors"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds a single HTTP request. Large Figma files can take
// well over ten seconds to serialize on the server side.
const DefaultTimeout = 60 * time.Second

// maxErrorBody caps how much of an error response is kept in the message.
const maxErrorBody = 512

var (
	// ErrNotFound is returned when a file or resource doesn't exist (404).
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrUnauthorized is returned when the token is missing or invalid (401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the token may not access the resource (403).
	ErrForbidden = errors.New("forbidden")

	// ErrRateLimited is returned when the API throttles the caller (429).
	ErrRateLimited = errors.New("rate limited")
)

// NewHTTPClient creates an HTTP client with the given timeout and a cookie
// jar, so that session cookies set by one request are sent on the next.
// A non-positive timeout uses [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	jar, _ := cookiejar.New(nil)
	return &http.Client{Timeout: timeout, Jar: jar}
}

// parseRetryAfter reads a Retry-After header given in seconds.
func parseRetryAfter(h string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// truncate shortens s to n bytes for inclusion in error messages.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
