// Package pipeline runs figscope's fetch → build pipeline.
//
// This package is the single place that decides what to fetch for a view
// and how the views are assembled, so the CLI and any other entry point
// behave identically.
//
// # Architecture
//
// Every operation has two stages:
//
//  1. Fetch: read the file (and, depending on the view, scoped nodes,
//     variables and comments) from a [Source]
//  2. Build: turn the fetched [views.Snapshot] into one or more views
//
// [Runner.Full] fetches the secondary sources concurrently and builds all
// views concurrently over the same read-only snapshot.
//
// # Usage
//
//	runner := pipeline.NewRunner(client, logger)
//	opts := pipeline.NewOptions("https://www.figma.com/design/ABC123/App")
//	opts.Depth = 2
//	result, err := runner.Full(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range result.Warnings {
//	    fmt.Fprintln(os.Stderr, "warning:", w)
//	}
//	io.WriteJSON(result.Output(), os.Stdout)
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/figscope/pkg/core/views"
	ferrors "github.com/matzehuels/figscope/pkg/errors"
	"github.com/matzehuels/figscope/pkg/integrations/figma"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultDepth is the structure cutoff used when none is given.
const DefaultDepth = 3

// View names, as used by the CLI subcommands and observability events.
const (
	ViewStructure    = "structure"
	ViewInteractions = "interactions"
	ViewComponents   = "components"
	ViewVariables    = "variables"
	ViewComments     = "comments"
	ViewFull         = "full"
)

// ValidViews is the set of views [Runner.Run] accepts.
var ValidViews = map[string]bool{
	ViewStructure:    true,
	ViewInteractions: true,
	ViewComponents:   true,
	ViewVariables:    true,
	ViewComments:     true,
	ViewFull:         true,
}

// Format constants for interaction output.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported interaction output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// FileKey is a file key or any figma.com design, file or proto URL.
	FileKey string `json:"file_key"`

	// Depth is the structure cutoff below the document root. Zero keeps
	// only the root; -1 keeps the whole tree. Only structure and full use it.
	Depth int `json:"depth"`

	// NodeIDs scopes the run: the file fetch is restricted to these nodes
	// and components additionally reports their component properties.
	NodeIDs []string `json:"node_ids,omitempty"`

	// Refresh bypasses cached responses.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// NewOptions returns options for fileKey with the default depth.
func NewOptions(fileKey string) Options {
	return Options{FileKey: fileKey, Depth: DefaultDepth}
}

// ValidateAndSetDefaults normalizes the file key and node ids, checks every
// field and applies defaults. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	o.FileKey = figma.ExtractFileKey(o.FileKey)
	if err := ferrors.ValidateFileKey(o.FileKey); err != nil {
		return err
	}
	if err := ferrors.ValidateDepth(o.Depth); err != nil {
		return err
	}
	if len(o.NodeIDs) > 0 {
		o.NodeIDs = figma.ParseNodeIDs(strings.Join(o.NodeIDs, ","))
	}
	if err := ferrors.ValidateNodeIDs(o.NodeIDs); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Scoped reports whether the run is restricted to node ids.
func (o *Options) Scoped() bool {
	return len(o.NodeIDs) > 0
}

// fileQuery is the file request of views that need the whole tree.
func (o *Options) fileQuery() figma.FileQuery {
	return figma.FileQuery{IDs: o.NodeIDs}
}

// structureQuery asks the API for one level more than the cutoff, so nodes
// at the cutoff still carry the children that _childCount reports.
func (o *Options) structureQuery() figma.FileQuery {
	q := o.fileQuery()
	if o.Depth >= 0 {
		q.Depth = o.Depth + 1
	}
	return q
}

// ValidateFormat checks that an interaction output format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return ferrors.New(ferrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, dot, svg, png)", format)
	}
	return nil
}

// ValidateView checks that a view name is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return ferrors.New(ferrors.ErrCodeInvalidInput, "unknown view: %q", view)
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the output of a pipeline run. Exactly one of the view
// fields is set, matching View.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// View is the name of the view that was built.
	View string

	Structure    *views.StructureView
	Interactions *views.InteractionView
	Metadata     *views.MetadataView
	Variables    *views.VariablesView
	Comments     *views.CommentView
	Full         *views.Full

	// Warnings lists secondary sources that could not be fetched and were
	// replaced by empty collections.
	Warnings []string

	// Stats contains timing and size information.
	Stats Stats
}

// Output returns the built view for serialization.
func (r *Result) Output() any {
	switch {
	case r.Full != nil:
		return r.Full
	case r.Structure != nil:
		return r.Structure
	case r.Interactions != nil:
		return r.Interactions
	case r.Metadata != nil:
		return r.Metadata
	case r.Variables != nil:
		return r.Variables
	case r.Comments != nil:
		return r.Comments
	}
	return nil
}

// Stats contains pipeline execution statistics.
type Stats struct {
	// DocumentNodes counts the nodes of the fetched document.
	DocumentNodes int

	// StructureNodes counts the nodes kept by the structure view, and
	// Truncated the nodes whose children were cut off.
	StructureNodes int
	Truncated      int

	// Records counts interactions, components, variables or comments,
	// depending on the view; Full reports interactions.
	Records int

	FetchTime time.Duration
	BuildTime time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("%d nodes, %d records, fetch %s, build %s",
		s.DocumentNodes, s.Records, s.FetchTime.Round(time.Millisecond), s.BuildTime.Round(time.Millisecond))
}
