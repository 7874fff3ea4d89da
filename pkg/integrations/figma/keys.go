package figma

import (
	"net/url"
	"regexp"
	"strings"
)

var fileURLRegex = regexp.MustCompile(`figma\.com/(?:design|file|proto)/([a-zA-Z0-9]+)`)

// ExtractFileKey returns the file key from a Figma URL
// (figma.com/design/KEY/..., /file/KEY/..., /proto/KEY/...). Anything
// that is not such a URL is treated as a raw key and returned trimmed.
func ExtractFileKey(keyOrURL string) string {
	if m := fileURLRegex.FindStringSubmatch(keyOrURL); m != nil {
		return m[1]
	}
	return strings.TrimSpace(keyOrURL)
}

// NodeIDFromURL returns the node-id query parameter of a Figma URL in API
// form ("12-34" becomes "12:34"), or "" when there is none.
func NodeIDFromURL(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	id := u.Query().Get("node-id")
	if id == "" {
		return ""
	}
	return normalizeNodeID(id)
}

var dashNodeID = regexp.MustCompile(`^(-?\d+)-(\d+)$`)

func normalizeNodeID(id string) string {
	id = strings.TrimSpace(id)
	if m := dashNodeID.FindStringSubmatch(id); m != nil {
		return m[1] + ":" + m[2]
	}
	return id
}

// ParseNodeIDs splits a comma-separated node id list, trimming blanks and
// converting URL-style ids to API form. It returns nil for an empty list.
func ParseNodeIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if id := normalizeNodeID(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
