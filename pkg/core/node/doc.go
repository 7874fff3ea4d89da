// Package node provides the generic tree node used by every figscope pass.
//
// # Overview
//
// Figma returns its document as deeply nested JSON whose shape is only
// loosely guaranteed: fields come and go between API versions, node types are
// open-ended, and optional values may be missing, null, or of an unexpected
// type. Rather than decoding into fixed structs, figscope keeps each node as
// a [Node] (an open field map) and reads it through accessors that tell
// "absent" from "present but null" from "wrong shape":
//
//	n, _ := node.Parse(data)
//	if name, ok := n.String("name"); ok {
//	    fmt.Println(name)
//	}
//	children, ok := n.Children() // ok=false: leaf, no children field
//
// # Immutability
//
// Nodes are never mutated by the transformation packages. [Node.Clone] and
// [Node.Without] produce new maps, so the structure, interaction, and
// metadata passes can read the same tree concurrently.
package node
