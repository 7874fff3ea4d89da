package cli

import (
	"context"
	"time"

	"github.com/matzehuels/figscope/pkg/observability"
)

// logHooks traces fetches, view builds, cache lookups and HTTP calls at
// debug level, using the logger attached to the context.
type logHooks struct{}

var (
	_ observability.PipelineHooks = logHooks{}
	_ observability.CacheHooks    = logHooks{}
	_ observability.HTTPHooks     = logHooks{}
)

func (logHooks) OnFetchStart(ctx context.Context, resource, fileKey string) {
	loggerFromContext(ctx).Debug("Fetching", "resource", resource, "file", fileKey)
}

func (logHooks) OnFetchComplete(ctx context.Context, resource, fileKey string, size int, d time.Duration, err error) {
	logger := loggerFromContext(ctx)
	if err != nil {
		logger.Debug("Fetch failed", "resource", resource, "file", fileKey, "err", err)
		return
	}
	logger.Debug("Fetched", "resource", resource, "file", fileKey, "records", size, "took", d.Round(time.Millisecond))
}

func (logHooks) OnViewStart(ctx context.Context, view string) {
	loggerFromContext(ctx).Debug("Building view", "view", view)
}

func (logHooks) OnViewComplete(ctx context.Context, view string, records int, d time.Duration) {
	loggerFromContext(ctx).Debug("Built view", "view", view, "records", records, "took", d.Round(time.Millisecond))
}

func (logHooks) OnCacheHit(ctx context.Context, keyType string) {
	loggerFromContext(ctx).Debug("Cache hit", "type", keyType)
}

func (logHooks) OnCacheMiss(ctx context.Context, keyType string) {
	loggerFromContext(ctx).Debug("Cache miss", "type", keyType)
}

func (logHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	loggerFromContext(ctx).Debug("Cache set", "type", keyType, "bytes", size)
}

func (logHooks) OnRequest(ctx context.Context, method, host, path string) {
	loggerFromContext(ctx).Debug("HTTP request", "method", method, "host", host, "path", path)
}

func (logHooks) OnResponse(ctx context.Context, method, host, path string, status int, d time.Duration) {
	loggerFromContext(ctx).Debug("HTTP response", "method", method, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (logHooks) OnError(ctx context.Context, method, host, path string, err error) {
	loggerFromContext(ctx).Debug("HTTP error", "method", method, "host", host, "path", path, "err", err)
}
