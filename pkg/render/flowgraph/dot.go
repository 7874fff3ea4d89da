package flowgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/figscope/pkg/core/flow"
	"github.com/matzehuels/figscope/pkg/core/views"
)

// Options configures flow graph rendering.
type Options struct {
	// Detailed labels source nodes with their full path instead of their
	// name, and adds the transition to edge labels.
	Detailed bool
}

// ToDOT converts an interaction view to Graphviz DOT format.
//
// Every source node and every destination id becomes a box; destinations
// that never act as a source are labelled with their id. Actions without
// a destination point at a URL node (URL actions) or at a plain text node
// named after the action type (BACK, CLOSE, ...). Each flow entry point
// becomes a bold oval pointing at its target.
func ToDOT(v views.InteractionView, opts Options) string {
	g := newGraph()

	for _, e := range v.Interactions {
		label := e.NodeName
		if opts.Detailed && e.Path != "" {
			label = e.Path
		}
		g.node(screenID(e.NodeID), label, "")
	}

	for _, e := range v.Interactions {
		to := g.target(e.Action)
		g.edge(screenID(e.NodeID), to, edgeLabel(e, opts.Detailed), "")
	}

	for i, p := range v.FlowStartingPoints {
		id := "start:" + strconv.Itoa(i)
		label := p.Name
		if label == "" {
			label = "start"
		}
		g.node(id, label, `shape=oval, style="bold,filled", fillcolor="#e8f5e9"`)
		target := screenID(p.NodeID)
		g.node(target, p.NodeID, "")
		g.edge(id, target, p.Page, "style=bold")
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	if v.FileName != nil {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", *v.FileName)
	}
	buf.WriteString("\n")

	for _, n := range g.nodes {
		attrs := []string{fmt.Sprintf("label=%q", n.label)}
		if n.attrs != "" {
			attrs = append(attrs, n.attrs)
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.edges {
		attrs := []string{fmt.Sprintf("label=%q", e.label)}
		if e.attrs != "" {
			attrs = append(attrs, e.attrs)
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.from, e.to, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

type dotNode struct {
	id, label, attrs string
}

type dotEdge struct {
	from, to, label, attrs string
}

// graph collects nodes in first-seen order so the output is stable.
type graph struct {
	nodes []dotNode
	index map[string]int
	edges []dotEdge
}

func newGraph() *graph {
	return &graph{index: make(map[string]int)}
}

// node adds id unless it exists. A later call with a non-empty label
// replaces a placeholder label equal to the raw id.
func (g *graph) node(id, label, attrs string) {
	if i, ok := g.index[id]; ok {
		if n := &g.nodes[i]; n.label == strings.TrimPrefix(id, "node:") && label != "" {
			n.label = label
		}
		return
	}
	if label == "" {
		label = strings.TrimPrefix(id, "node:")
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, dotNode{id: id, label: label, attrs: attrs})
}

func (g *graph) edge(from, to, label, attrs string) {
	g.edges = append(g.edges, dotEdge{from: from, to: to, label: label, attrs: attrs})
}

func (g *graph) target(a flow.Action) string {
	switch {
	case a.DestinationID != nil:
		id := screenID(*a.DestinationID)
		g.node(id, "", "")
		return id
	case a.URL != nil:
		id := "url:" + *a.URL
		g.node(id, *a.URL, `shape=note, fillcolor="#e3f2fd"`)
		return id
	default:
		kind := "ACTION"
		if a.Type != nil {
			kind = *a.Type
		}
		id := "action:" + kind
		g.node(id, kind, "shape=plaintext, style=\"\"")
		return id
	}
}

func screenID(nodeID string) string {
	return "node:" + nodeID
}

func edgeLabel(e flow.Edge, detailed bool) string {
	trigger := "?"
	if e.Trigger.Type != nil {
		trigger = *e.Trigger.Type
	}
	action := "?"
	switch {
	case e.Action.NavigationType != nil:
		action = *e.Action.NavigationType
	case e.Action.Type != nil:
		action = *e.Action.Type
	}
	label := trigger + " → " + action
	if detailed && e.Transition != nil && e.Transition.Type != nil {
		label += "\n" + *e.Transition.Type
		if e.Transition.Duration != nil {
			label += " " + strconv.FormatFloat(*e.Transition.Duration, 'f', -1, 64) + "s"
		}
	}
	return label
}

// Format is an output format of [Render].
type Format string

// Supported render formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	svg, err := Render(ctx, dot, FormatSVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(svg), nil
}

// Render renders a DOT graph in the given format using Graphviz.
func Render(ctx context.Context, dot string, format Format) ([]byte, error) {
	var gvFormat graphviz.Format
	switch format {
	case FormatSVG:
		gvFormat = graphviz.SVG
	case FormatPNG:
		gvFormat = graphviz.PNG
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the drawing scales from the
// origin with pixel width and height equal to the view box.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
