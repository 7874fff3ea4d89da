// Package transform builds the structure view of a Figma document.
//
// # Overview
//
// The structure view is a copy of the document tree that keeps what a node
// is and does (ids, names, types, component references, interactions,
// visibility, text content) and drops how it looks. Two operations produce
// it:
//
//   - [Filter] removes the closed set of presentation-only fields (paints,
//     strokes, effects, typography, layout geometry, sizing constraints).
//   - [Prune] applies Filter to every node and cuts the tree off below a
//     maximum depth, recording how many children were hidden.
//
// # Depth
//
// Depth counts levels below the root. With maxDepth 2 a document keeps its
// pages (depth 1) and their top-level frames (depth 2); each frame that had
// children carries [ChildCountField] instead:
//
//	pruned := transform.Prune(doc, 2)
//	stats := transform.Measure(pruned)
//	fmt.Println(stats.Truncated, "frames truncated")
//
// # Purity
//
// Neither function modifies its input. The output shares nested values that
// were not rewritten (for example a node's interactions list) with the
// source tree, so callers must treat both as read-only.
package transform
