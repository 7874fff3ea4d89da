package cache

import "strings"

// Keyer derives cache keys for the values figscope stores.
type Keyer interface {
	// HTTPKey returns the key for a raw HTTP response body.
	HTTPKey(namespace, key string) string

	// FileKey returns the key for one Figma resource of a file.
	FileKey(fileKey string, opts FileKeyOpts) string
}

// FileKeyOpts identifies a request variant for a Figma file.
type FileKeyOpts struct {
	Resource string   // "file", "nodes", "variables", "comments"
	Depth    int      // 0 means unlimited
	IDs      []string // node ids, order-sensitive
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// HTTPKey returns "http:<namespace>:<key>".
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// FileKey hashes the request variant so that keys stay short and free of
// separator characters regardless of how many node ids are scoped.
func (DefaultKeyer) FileKey(fileKey string, opts FileKeyOpts) string {
	resource := opts.Resource
	if resource == "" {
		resource = "file"
	}
	return hashKey("figma:"+resource, fileKey, opts.Depth, strings.Join(opts.IDs, ","))
}
