// Package integrations provides the shared HTTP client used by API clients.
//
// # Overview
//
// [Client] wraps net/http with the behaviour every remote call in figscope
// needs:
//
//   - default headers (authentication) merged with per-request headers
//   - status mapping to sentinel errors ([ErrNotFound], [ErrUnauthorized],
//     [ErrForbidden], [ErrRateLimited], [ErrNetwork])
//   - retries with exponential backoff for network failures, 5xx and 429
//     responses (honouring Retry-After)
//   - response caching through any [cache.Cache] via [Client.Cached]
//   - observability hooks for every request and cache lookup
//
// The HTTP client carries a cookie jar, so a session established with
// [Client.PostJSON] (for example a password unlock) is reused by later GETs.
//
// # API Clients
//
// The Figma REST client lives in the [figma] subpackage.
//
// [figma]: github.com/matzehuels/figscope/pkg/integrations/figma
// [cache.Cache]: github.com/matzehuels/figscope/pkg/cache.Cache
package integrations
