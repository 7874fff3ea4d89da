// Package pkg provides the core libraries of figscope.
//
// # Overview
//
// figscope reduces a Figma file to compact, appearance-free JSON views that
// are cheap to read for people and for language models alike. The pkg
// directory is organized into four main areas:
//
//  1. core - Domain logic (node model, pruning, flow and metadata extraction, views)
//  2. [integrations] - The Figma REST client on a shared, cached HTTP client
//  3. [pipeline] - Orchestration (fetch → build views → render)
//  4. Infrastructure - [cache], [config], [errors], [io], [observability]
//
// # Architecture
//
// The typical data flow through figscope:
//
//	Figma REST API (or a saved file)
//	         ↓
//	    [integrations/figma] package (fetch, cache, unlock)
//	         ↓
//	    [core/node] package (generic JSON node tree)
//	         ↓
//	    [core/transform], [core/flow], [core/meta] packages (extraction)
//	         ↓
//	    [core/views] package (structure, interactions, components, ...)
//	         ↓
//	    JSON / DOT / SVG / PNG output
//
// # Quick Start
//
// Build the structure view of a file:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/figscope/pkg/integrations/figma"
//	    "github.com/matzehuels/figscope/pkg/pipeline"
//	)
//
//	client, _ := figma.NewClient(figma.Options{Token: token})
//	runner := pipeline.NewRunner(client, nil)
//	res, _ := runner.Structure(context.Background(), pipeline.NewOptions(fileKey))
//
// # Main Packages
//
// [core/node] - The loosely typed node tree every stage works on. Unknown
// fields are carried through untouched.
//
// [core/transform] - Appearance filtering and depth pruning with child
// counts for truncated nodes.
//
// [core/flow] - Prototype interactions and flow starting points.
//
// [core/meta] - Components, component sets, variables and comments.
//
// [core/views] - Pure builders that turn one fetched snapshot into output
// records, and [views.Assemble] for the combined record.
//
// [render/flowgraph] - The interaction graph as Graphviz DOT, SVG or PNG.
//
// [core/node]: github.com/matzehuels/figscope/pkg/core/node
// [core/transform]: github.com/matzehuels/figscope/pkg/core/transform
// [core/flow]: github.com/matzehuels/figscope/pkg/core/flow
// [core/meta]: github.com/matzehuels/figscope/pkg/core/meta
// [core/views]: github.com/matzehuels/figscope/pkg/core/views
// [views.Assemble]: github.com/matzehuels/figscope/pkg/core/views.Assemble
// [integrations]: github.com/matzehuels/figscope/pkg/integrations
// [integrations/figma]: github.com/matzehuels/figscope/pkg/integrations/figma
// [pipeline]: github.com/matzehuels/figscope/pkg/pipeline
// [render/flowgraph]: github.com/matzehuels/figscope/pkg/render/flowgraph
// [cache]: github.com/matzehuels/figscope/pkg/cache
// [config]: github.com/matzehuels/figscope/pkg/config
// [errors]: github.com/matzehuels/figscope/pkg/errors
// [io]: github.com/matzehuels/figscope/pkg/io
// [observability]: github.com/matzehuels/figscope/pkg/observability
package pkg
