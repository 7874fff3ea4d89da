package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/figscope/pkg/core/node"
)

// ReadJSON decodes a JSON object from r, such as a GET /files/:key response
// saved by download.
//
// Numbers decode as float64, exactly as they do for live responses, so
// views built from a saved file match views built from the API.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (node.Node, error) {
	n, err := node.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if n == nil {
		return nil, fmt.Errorf("decode: not a JSON object")
	}
	return n, nil
}

// ImportJSON reads a JSON file at path and returns the decoded object.
// The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (node.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	n, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
