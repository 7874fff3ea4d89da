// Package cache stores fetched Figma responses between runs.
//
// # Backends
//
//   - [FileCache]: JSON files under ~/.cache/figscope (the CLI default)
//   - [RedisCache]: a shared Redis server, selected with redis-url
//   - [NullCache]: disables caching (--no-cache)
//
// All three implement [Cache] and [Clearer].
//
// # Keys
//
// A [Keyer] derives keys from the request: file key, resource, depth and
// scoped node ids. Responses fetched through a password-unlocked session
// use a [ScopedKeyer] so they are never served to a plain token session.
//
// # Retries
//
// [RetryWithBackoff] re-runs a fetch while it fails with a [RetryableError].
// Network failures, 5xx and 429 responses are marked retryable by the HTTP
// client; everything else fails on the first attempt.
package cache
