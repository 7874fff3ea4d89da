package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/figscope/pkg/core/views"
	"github.com/matzehuels/figscope/pkg/io"
	"github.com/matzehuels/figscope/pkg/render/flowgraph"
)

// RenderInteractions encodes an interaction view in the given format:
// JSON, Graphviz DOT, or an SVG or PNG drawing of the flow graph.
func RenderInteractions(ctx context.Context, v views.InteractionView, format string, detailed bool) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	if format == FormatJSON {
		return io.MarshalJSON(v)
	}

	dot := flowgraph.ToDOT(v, flowgraph.Options{Detailed: detailed})
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatDOT:
		data = []byte(dot)
	case FormatSVG:
		data, err = flowgraph.RenderSVG(ctx, dot)
	case FormatPNG:
		data, err = flowgraph.Render(ctx, dot, flowgraph.FormatPNG)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}
