package cache

// ScopedKeyer wraps a Keyer with a prefix so that responses fetched under
// different credentials never share entries.
//
// A password-unlocked session can read files the bare token cannot, so its
// responses are cached under their own namespace:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "unlocked:"+Hash([]byte(pw))[:12]+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// FileKey generates a prefixed key for a Figma file resource.
func (k *ScopedKeyer) FileKey(fileKey string, opts FileKeyOpts) string {
	return k.prefix + k.inner.FileKey(fileKey, opts)
}
