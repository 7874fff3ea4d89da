package figma

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/figscope/pkg/cache"
	"github.com/matzehuels/figscope/pkg/core/node"
	ferrors "github.com/matzehuels/figscope/pkg/errors"
	"github.com/matzehuels/figscope/pkg/integrations"
	"github.com/matzehuels/figscope/pkg/observability"
)

const (
	// DefaultBaseURL is the Figma REST API root.
	DefaultBaseURL = "https://api.figma.com/v1"

	// DefaultWebURL hosts the browser endpoints used for password unlock.
	DefaultWebURL = "https://www.figma.com"

	// TokenHeader carries the personal access token.
	TokenHeader = "X-Figma-Token"
)

// Resource names used in cache keys and observability events.
const (
	ResourceFile      = "file"
	ResourceNodes     = "nodes"
	ResourceVariables = "variables"
	ResourceComments  = "comments"
)

// Options configures a [Client].
type Options struct {
	Token   string        // personal access token (required)
	BaseURL string        // defaults to DefaultBaseURL
	WebURL  string        // defaults to DefaultWebURL
	Cache   cache.Cache   // nil disables caching
	Keyer   cache.Keyer   // defaults to cache.NewDefaultKeyer()
	TTL     time.Duration // defaults to cache.TTLFile
	Timeout time.Duration // per request; defaults to integrations.DefaultTimeout
}

// FileQuery selects the part of a file to fetch.
type FileQuery struct {
	// Depth limits how many levels of the tree the API returns. Zero or
	// negative fetches the whole tree.
	Depth int

	// IDs restricts the response to these nodes and their ancestors.
	IDs []string
}

// Client fetches Figma files and their metadata.
type Client struct {
	*integrations.Client
	baseURL string
	webURL  string
	keyer   cache.Keyer
}

// NewClient creates a Client. It fails with MISSING_TOKEN when no token is
// configured.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.Token) == "" {
		return nil, ferrors.New(ferrors.ErrCodeMissingToken, "FIGMA_TOKEN is not set")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.WebURL == "" {
		opts.WebURL = DefaultWebURL
	}
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}
	if opts.TTL == 0 {
		opts.TTL = cache.TTLFile
	}

	base := integrations.NewClient(opts.Cache, opts.TTL, map[string]string{TokenHeader: opts.Token})
	base.SetHTTPClient(integrations.NewHTTPClient(opts.Timeout))

	return &Client{
		Client:  base,
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		webURL:  strings.TrimSuffix(opts.WebURL, "/"),
		keyer:   opts.Keyer,
	}, nil
}

// Unlock opens a password-protected file for this client.
//
// It posts the password to the browser check_password endpoint; the session
// cookie it returns is kept in the client's cookie jar and sent with every
// later request. Responses fetched afterwards are cached under a key scope
// derived from the password, so they are never served to a client that has
// not unlocked the file. Call Unlock before starting concurrent fetches.
func (c *Client) Unlock(ctx context.Context, fileKey, password string) error {
	endpoint := c.webURL + "/api/files/" + url.PathEscape(fileKey) + "/check_password"
	err := c.PostJSON(ctx, endpoint, map[string]string{"password": password}, nil, nil)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if isAuthError(err) || (errors.Is(err, integrations.ErrNetwork) && !cache.IsRetryable(err)) {
			return ferrors.Wrap(ferrors.ErrCodePasswordRejected, err, "password rejected for file %s", fileKey)
		}
		return classify(err, "unlock file "+fileKey)
	}
	scope := "unlocked:" + cache.Hash([]byte(fileKey+"\x00"+password))[:16] + ":"
	c.keyer = cache.NewScopedKeyer(c.keyer, scope)
	return nil
}

// File fetches GET /files/:key.
func (c *Client) File(ctx context.Context, fileKey string, q FileQuery, refresh bool) (*File, error) {
	params := url.Values{}
	if q.Depth > 0 {
		params.Set("depth", strconv.Itoa(q.Depth))
	}
	if len(q.IDs) > 0 {
		params.Set("ids", strings.Join(q.IDs, ","))
	}

	body, err := c.fetch(ctx, fileKey, ResourceFile, "/files/"+url.PathEscape(fileKey), params,
		cache.FileKeyOpts{Resource: ResourceFile, Depth: max(q.Depth, 0), IDs: q.IDs}, 0, refresh)
	if err != nil {
		return nil, err
	}
	return FileFrom(body), nil
}

// Nodes fetches GET /files/:key/nodes for ids and returns id → document.
func (c *Client) Nodes(ctx context.Context, fileKey string, ids []string, refresh bool) (map[string]node.Node, error) {
	params := url.Values{"ids": {strings.Join(ids, ",")}}
	body, err := c.fetch(ctx, fileKey, ResourceNodes, "/files/"+url.PathEscape(fileKey)+"/nodes", params,
		cache.FileKeyOpts{Resource: ResourceNodes, IDs: ids}, 0, refresh)
	if err != nil {
		return nil, err
	}
	return NodesFrom(body), nil
}

// Variables fetches GET /files/:key/variables/local. The endpoint requires
// an Enterprise plan; other plans get FORBIDDEN.
func (c *Client) Variables(ctx context.Context, fileKey string, refresh bool) (*Variables, error) {
	body, err := c.fetch(ctx, fileKey, ResourceVariables, "/files/"+url.PathEscape(fileKey)+"/variables/local", nil,
		cache.FileKeyOpts{Resource: ResourceVariables}, cache.TTLMetadata, refresh)
	if err != nil {
		return nil, err
	}
	return VariablesFrom(body), nil
}

// Comments fetches GET /files/:key/comments in API order.
func (c *Client) Comments(ctx context.Context, fileKey string, refresh bool) ([]node.Node, error) {
	body, err := c.fetch(ctx, fileKey, ResourceComments, "/files/"+url.PathEscape(fileKey)+"/comments", nil,
		cache.FileKeyOpts{Resource: ResourceComments}, cache.TTLMetadata, refresh)
	if err != nil {
		return nil, err
	}
	return CommentsFrom(body), nil
}

// Raw fetches GET /files/:key and returns the response body unmodified.
// It bypasses the cache.
func (c *Client) Raw(ctx context.Context, fileKey string, q FileQuery) ([]byte, error) {
	params := url.Values{}
	if q.Depth > 0 {
		params.Set("depth", strconv.Itoa(q.Depth))
	}
	if len(q.IDs) > 0 {
		params.Set("ids", strings.Join(q.IDs, ","))
	}

	hooks := observability.Pipeline()
	hooks.OnFetchStart(ctx, ResourceFile, fileKey)
	start := time.Now()

	var data []byte
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		data, err = c.GetBytes(ctx, c.endpoint("/files/"+url.PathEscape(fileKey), params), nil)
		return err
	})
	hooks.OnFetchComplete(ctx, ResourceFile, fileKey, len(data), time.Since(start), err)
	if err != nil {
		return nil, classify(err, "download file "+fileKey)
	}
	return data, nil
}

func (c *Client) fetch(ctx context.Context, fileKey, resource, path string, params url.Values, keyOpts cache.FileKeyOpts, ttl time.Duration, refresh bool) (node.Node, error) {
	hooks := observability.Pipeline()
	hooks.OnFetchStart(ctx, resource, fileKey)
	start := time.Now()

	var body node.Node
	key := c.keyer.FileKey(fileKey, keyOpts)
	err := c.Cached(ctx, key, ttl, refresh, &body, func() error {
		return c.Get(ctx, c.endpoint(path, params), &body)
	})
	hooks.OnFetchComplete(ctx, resource, fileKey, len(body), time.Since(start), err)
	if err != nil {
		return nil, classify(err, "fetch "+resource+" of "+fileKey)
	}
	return body, nil
}

func (c *Client) endpoint(path string, params url.Values) string {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func isAuthError(err error) bool {
	return errors.Is(err, integrations.ErrUnauthorized) ||
		errors.Is(err, integrations.ErrForbidden) ||
		errors.Is(err, integrations.ErrNotFound)
}

// classify maps transport errors to coded errors. Cancellation is returned
// unchanged so callers can detect it with errors.Is.
func classify(err error, what string) error {
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return ferrors.Wrap(ferrors.ErrCodeTimeout, err, "%s: timed out", what)
	case errors.Is(err, integrations.ErrNotFound):
		return ferrors.Wrap(ferrors.ErrCodeNotFound, err, "%s: not found", what)
	case errors.Is(err, integrations.ErrUnauthorized):
		return ferrors.Wrap(ferrors.ErrCodeUnauthorized, err, "%s: token rejected", what)
	case errors.Is(err, integrations.ErrForbidden):
		return ferrors.Wrap(ferrors.ErrCodeForbidden, err, "%s: access denied", what)
	case errors.Is(err, integrations.ErrRateLimited):
		return ferrors.Wrap(ferrors.ErrCodeRateLimited, err, "%s: rate limited", what)
	default:
		return ferrors.Wrap(ferrors.ErrCodeNetwork, err, "%s", what)
	}
}
