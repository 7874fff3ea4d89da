// Package render groups the visual renderers of figscope.
//
// Rendering is optional: every view is first and foremost JSON. The only
// drawable view is the prototype flow graph, rendered by the [flowgraph]
// subpackage through Graphviz:
//
//	dot := flowgraph.ToDOT(view, flowgraph.Options{})
//	svg, err := flowgraph.RenderSVG(ctx, dot)
//
// [flowgraph]: github.com/matzehuels/figscope/pkg/render/flowgraph
package render
