package node

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
)

// Well-known field names shared by every Figma node.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldType     = "type"
	FieldChildren = "children"
)

// Node is a single element of a Figma document tree.
//
// A Node is the decoded JSON object exactly as the API returned it: an open
// set of named fields with arbitrary values. Nested objects are Nodes too
// (or plain map[string]any when they came straight from a decoder); the
// accessors below accept both shapes.
//
// Nodes are treated as immutable. Transformations build new Nodes with
// [Node.Clone] or [Node.Without] and never write into a Node they did not
// create.
type Node map[string]any

// Decode reads a single JSON object from r.
func Decode(r io.Reader) (Node, error) {
	var n Node
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return nil, fmt.Errorf("decode node: %w", err)
	}
	return n, nil
}

// Parse decodes a JSON object held in memory.
func Parse(data []byte) (Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("parse node: %w", err)
	}
	return n, nil
}

// From converts v into a Node when it has object shape.
// It reports false for nil, scalars, and lists.
func From(v any) (Node, bool) {
	switch m := v.(type) {
	case Node:
		return m, m != nil
	case map[string]any:
		return Node(m), m != nil
	}
	return nil, false
}

// Get returns the raw value of field and whether the field is present.
// A present field may hold nil (JSON null); use [Node.IsNull] to tell the
// two apart.
func (n Node) Get(field string) (any, bool) {
	v, ok := n[field]
	return v, ok
}

// Has reports whether field is present, even if its value is null.
func (n Node) Has(field string) bool {
	_, ok := n[field]
	return ok
}

// IsNull reports whether field is present with a null value.
func (n Node) IsNull(field string) bool {
	v, ok := n[field]
	return ok && v == nil
}

// String returns field as a string. It reports false when the field is
// absent, null, or not a string.
func (n Node) String(field string) (string, bool) {
	s, ok := n[field].(string)
	return s, ok
}

// StringOr returns field as a string, or def when it is not a string.
func (n Node) StringOr(field, def string) string {
	if s, ok := n.String(field); ok {
		return s
	}
	return def
}

// Bool returns field as a boolean.
func (n Node) Bool(field string) (bool, bool) {
	b, ok := n[field].(bool)
	return b, ok
}

// Number returns field as a float64. JSON numbers decode to float64 and
// json.Number values are converted.
func (n Node) Number(field string) (float64, bool) {
	switch v := n[field].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// Map returns field as a nested Node. Absent, null, and non-object values
// all report false.
func (n Node) Map(field string) (Node, bool) {
	return From(n[field])
}

// List returns field as a list of raw values.
func (n Node) List(field string) ([]any, bool) {
	switch v := n[field].(type) {
	case []any:
		return v, true
	case []Node:
		out := make([]any, len(v))
		for i, c := range v {
			out[i] = c
		}
		return out, true
	}
	return nil, false
}

// Nodes returns the object elements of a list field. Elements that are not
// objects are skipped. The second result reports whether the field held a
// list at all.
func (n Node) Nodes(field string) ([]Node, bool) {
	items, ok := n.List(field)
	if !ok {
		return nil, false
	}
	out := make([]Node, 0, len(items))
	for _, item := range items {
		if c, ok := From(item); ok {
			out = append(out, c)
		}
	}
	return out, true
}

// Children returns the node's child nodes and whether a children list is
// present. A node without the field is a leaf; a node with an empty list
// reports (empty, true).
func (n Node) Children() ([]Node, bool) {
	return n.Nodes(FieldChildren)
}

// Records returns an object-valued field as id → record. Entries whose value
// is not an object are dropped.
func (n Node) Records(field string) map[string]Node {
	m, ok := n.Map(field)
	if !ok {
		return nil
	}
	return RecordsOf(m)
}

// RecordsOf converts a dictionary of records into id → Node.
func RecordsOf(m Node) map[string]Node {
	out := make(map[string]Node, len(m))
	for id, v := range m {
		if rec, ok := From(v); ok {
			out[id] = rec
		}
	}
	return out
}

// ID returns the node id, or "" when absent.
func (n Node) ID() string { return n.StringOr(FieldID, "") }

// Name returns the node name, or "" when absent.
func (n Node) Name() string { return n.StringOr(FieldName, "") }

// Type returns the node type tag, or "" when absent.
func (n Node) Type() string { return n.StringOr(FieldType, "") }

// Clone returns a shallow copy. Nested values are shared with n.
func (n Node) Clone() Node {
	if n == nil {
		return Node{}
	}
	return maps.Clone(n)
}

// Without returns a shallow copy of n lacking every field for which drop
// returns true.
func (n Node) Without(drop func(field string) bool) Node {
	out := make(Node, len(n))
	for k, v := range n {
		if !drop(k) {
			out[k] = v
		}
	}
	return out
}

// Walk visits n and its descendants in depth-first pre-order. Returning
// false from fn skips the node's children.
func (n Node) Walk(fn func(n Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n Node) walk(fn func(Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	children, _ := n.Children()
	for _, c := range children {
		c.walk(fn, depth+1)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func (n Node) Count() int {
	total := 0
	n.Walk(func(Node, int) bool {
		total++
		return true
	})
	return total
}
