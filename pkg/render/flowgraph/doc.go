// Package flowgraph draws the prototype graph of an interaction view.
//
// [ToDOT] turns a [views.InteractionView] into Graphviz DOT: screens are
// boxes, interactions are edges labelled "TRIGGER → ACTION", and flow
// entry points are bold ovals. [RenderSVG] and [Render] lay the graph out
// in-process with [github.com/goccy/go-graphviz], so no Graphviz
// installation is required:
//
//	dot := flowgraph.ToDOT(view, flowgraph.Options{})
//	svg, err := flowgraph.RenderSVG(ctx, dot)
package flowgraph
