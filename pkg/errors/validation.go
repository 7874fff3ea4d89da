package errors

import (
	"regexp"
	"strings"
	"unicode"
)

const maxFileKeyLength = 128

var fileKeyRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ValidateFileKey checks that key looks like a Figma file key. URLs must be
// reduced to their key before validation.
func ValidateFileKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidFileKey, "file key cannot be empty")
	}
	if len(key) > maxFileKeyLength {
		return New(ErrCodeInvalidFileKey, "file key too long (max %d characters)", maxFileKeyLength)
	}
	if !fileKeyRegex.MatchString(key) {
		return New(ErrCodeInvalidFileKey, "invalid file key: %q", key)
	}
	return nil
}

// nodeIDRegex accepts plain ids ("1:2"), instance ids ("I1:2;3:4") and the
// dash form used in share URLs ("1-2").
var nodeIDRegex = regexp.MustCompile(`^I?-?\d+[:-]\d+(;-?\d+[:-]\d+)*$`)

// ValidateNodeID checks a single node id.
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNodeIDs, "node id cannot be empty")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNodeIDs, "node id contains invalid control characters")
		}
	}
	if !nodeIDRegex.MatchString(id) {
		return New(ErrCodeInvalidNodeIDs, "invalid node id: %q", id)
	}
	return nil
}

// ValidateNodeIDs checks every id in ids. An empty list is valid.
func ValidateNodeIDs(ids []string) error {
	for _, id := range ids {
		if err := ValidateNodeID(id); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDepth checks a structure depth. -1 means unlimited; other
// negative values are rejected.
func ValidateDepth(depth int) error {
	if depth < -1 {
		return New(ErrCodeInvalidDepth, "depth must be >= 0, or -1 for unlimited (got %d)", depth)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidConfig, "URL must use http or https scheme: %q", rawURL)
	}
	return nil
}
