// Package flow extracts the prototype interaction graph of a Figma document.
//
// # Overview
//
// Prototype wiring in Figma lives on individual nodes: each node may carry
// an "interactions" list whose entries pair a trigger (ON_CLICK, ON_HOVER,
// AFTER_TIMEOUT, ...) with one or more actions (NODE navigation, URL,
// OPEN_OVERLAY, BACK, ...). Pages and top-level frames may also declare
// "flowStartingPoints", the named entry screens of a prototype.
//
// This package flattens both into relational records:
//
//	edges := flow.ExtractDocumentInteractions(doc)
//	entries := flow.ExtractEntryPoints(doc)
//
// # Depth
//
// Extraction always walks the complete tree. It must be given the document
// as fetched, not a depth-limited structure view, or interactions below the
// cutoff are lost.
//
// # Conditional Fields
//
// [Action.Overlay] is set only for overlay actions and [Edge.Transition]
// only when the action carries a transition. Both are omitted from JSON
// when unset, which is distinct from a null value.
package flow
