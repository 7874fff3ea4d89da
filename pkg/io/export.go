package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

// WriteJSON encodes v as indented JSON and writes it to w. HTML characters
// are not escaped, so messages and names round-trip as written.
func WriteJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalJSON is [WriteJSON] into a byte slice.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(v, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportJSON writes v to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(v any, path string) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile writes data to path, creating parent directories. The file is
// written to a temporary sibling first and renamed into place.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".figscope-*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

var unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}\p{M}_\-. ]`)

// SafeName turns a file name into something usable as a path component:
// every character other than letters, digits, underscore, dash, dot and
// space becomes "_", and the result is cut to 50 characters. An empty
// name yields "figma".
func SafeName(name string) string {
	if name == "" {
		return "figma"
	}
	safe := unsafeChars.ReplaceAllString(name, "_")
	if r := []rune(safe); len(r) > 50 {
		safe = string(r[:50])
	}
	return safe
}

// DefaultOutputName is the file name used by download when none is given:
// "<safe name>_<file key>.json".
func DefaultOutputName(fileName, fileKey string) string {
	return SafeName(fileName) + "_" + fileKey + ".json"
}
