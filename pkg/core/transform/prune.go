package transform

import "github.com/matzehuels/figscope/pkg/core/node"

// ChildCountField is the synthetic field that replaces a truncated children
// list. Its value is the number of children the node originally had.
const ChildCountField = "_childCount"

// Unlimited disables the depth cutoff in [Prune].
const Unlimited = -1

// Prune returns a filtered copy of the tree rooted at n in which no node is
// more than maxDepth levels below n.
//
// Every node is passed through [Filter]. A node at depth maxDepth that has a
// children field loses it and gains [ChildCountField] instead, so callers can
// tell a truncated subtree from a leaf. The root is depth 0: Prune(n, 0)
// keeps only the root's own fields. A negative maxDepth keeps the whole tree.
//
// A children field that is not a list is left as an ordinary field.
// Non-object elements inside a children list are copied through unchanged.
func Prune(n node.Node, maxDepth int) node.Node {
	return prune(n, maxDepth, 0)
}

func prune(n node.Node, maxDepth, depth int) node.Node {
	out := Filter(n)

	children, ok := out.List(node.FieldChildren)
	if !ok {
		return out
	}

	if maxDepth >= 0 && depth >= maxDepth {
		delete(out, node.FieldChildren)
		out[ChildCountField] = len(children)
		return out
	}

	pruned := make([]any, len(children))
	for i, c := range children {
		if child, ok := node.From(c); ok {
			pruned[i] = prune(child, maxDepth, depth+1)
		} else {
			pruned[i] = c
		}
	}
	out[node.FieldChildren] = pruned
	return out
}

// Stats summarizes a pruned tree.
type Stats struct {
	// Nodes is the number of nodes kept in the output.
	Nodes int

	// Truncated is the number of nodes whose children were cut off.
	Truncated int

	// Hidden is the total number of direct children removed by truncation.
	Hidden int

	// MaxDepth is the deepest level present in the output.
	MaxDepth int
}

// Measure computes [Stats] for a tree produced by [Prune].
func Measure(pruned node.Node) Stats {
	var s Stats
	pruned.Walk(func(n node.Node, depth int) bool {
		s.Nodes++
		s.MaxDepth = max(s.MaxDepth, depth)
		if c, ok := n.Number(ChildCountField); ok {
			s.Truncated++
			s.Hidden += int(c)
		}
		return true
	})
	return s
}
