package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/figscope/pkg/core/node"
	"github.com/matzehuels/figscope/pkg/core/transform"
	"github.com/matzehuels/figscope/pkg/core/views"
	ferrors "github.com/matzehuels/figscope/pkg/errors"
	"github.com/matzehuels/figscope/pkg/integrations/figma"
	"github.com/matzehuels/figscope/pkg/observability"
)

// Source provides the raw Figma data a run needs. [figma.Client] is the
// live implementation; [FileSource] serves a saved file.
type Source interface {
	File(ctx context.Context, fileKey string, q figma.FileQuery, refresh bool) (*figma.File, error)
	Nodes(ctx context.Context, fileKey string, ids []string, refresh bool) (map[string]node.Node, error)
	Variables(ctx context.Context, fileKey string, refresh bool) (*figma.Variables, error)
	Comments(ctx context.Context, fileKey string, refresh bool) ([]node.Node, error)
}

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for its source and logger; it doesn't
// store results. Multiple goroutines can safely use the same Runner with
// different options as long as the source allows concurrent use.
type Runner struct {
	Source Source
	Logger *log.Logger
}

// NewRunner creates a runner reading from src.
// If logger is nil, log.Default() is used.
func NewRunner(src Source, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Source: src, Logger: logger}
}

// Run builds the named view.
func (r *Runner) Run(ctx context.Context, view string, opts Options) (*Result, error) {
	switch view {
	case ViewStructure:
		return r.Structure(ctx, opts)
	case ViewInteractions:
		return r.Interactions(ctx, opts)
	case ViewComponents:
		return r.Components(ctx, opts)
	case ViewVariables:
		return r.Variables(ctx, opts)
	case ViewComments:
		return r.Comments(ctx, opts)
	case ViewFull:
		return r.Full(ctx, opts)
	}
	return nil, ValidateView(view)
}

// Structure fetches the file down to one level below the cutoff and builds
// the pruned structure view.
func (r *Runner) Structure(ctx context.Context, opts Options) (*Result, error) {
	res, logger, err := r.begin(ViewStructure, &opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	f, err := r.Source.File(ctx, opts.FileKey, opts.structureQuery(), opts.Refresh)
	if err != nil {
		return nil, err
	}
	res.Stats.FetchTime = time.Since(start)
	snap := snapshotOf(f)
	r.logFetched(logger, snap, res.Stats.FetchTime)

	start = time.Now()
	v := buildStructure(ctx, snap, opts.Depth)
	res.Stats.BuildTime = time.Since(start)
	res.Structure = &v
	res.Stats.DocumentNodes = snap.Document.Count()
	res.setStructureStats(v)
	return r.finish(logger, res), nil
}

// Interactions fetches the whole file and extracts its prototype graph.
func (r *Runner) Interactions(ctx context.Context, opts Options) (*Result, error) {
	res, logger, err := r.begin(ViewInteractions, &opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	f, err := r.Source.File(ctx, opts.FileKey, opts.fileQuery(), opts.Refresh)
	if err != nil {
		return nil, err
	}
	res.Stats.FetchTime = time.Since(start)
	snap := snapshotOf(f)
	r.logFetched(logger, snap, res.Stats.FetchTime)

	start = time.Now()
	v := buildInteractions(ctx, snap)
	res.Stats.BuildTime = time.Since(start)
	res.Interactions = &v
	res.Stats.DocumentNodes = snap.Document.Count()
	res.Stats.Records = len(v.Interactions)
	return r.finish(logger, res), nil
}

// Components fetches component metadata. When the run is scoped, the
// scoped nodes are looked up concurrently and their component properties
// are reported too.
func (r *Runner) Components(ctx context.Context, opts Options) (*Result, error) {
	res, logger, err := r.begin(ViewComponents, &opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var (
		f      *figma.File
		scoped map[string]node.Node
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		f, err = r.Source.File(gctx, opts.FileKey, figma.FileQuery{}, opts.Refresh)
		return err
	})
	if opts.Scoped() {
		g.Go(func() error {
			var err error
			scoped, err = r.Source.Nodes(gctx, opts.FileKey, opts.NodeIDs, opts.Refresh)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	res.Stats.FetchTime = time.Since(start)
	snap := snapshotOf(f)
	snap.ScopedNodes = scoped
	r.logFetched(logger, snap, res.Stats.FetchTime)

	start = time.Now()
	v := buildMetadata(ctx, snap)
	res.Stats.BuildTime = time.Since(start)
	res.Metadata = &v
	res.Stats.DocumentNodes = snap.Document.Count()
	res.Stats.Records = len(v.Components)
	return r.finish(logger, res), nil
}

// Variables fetches local variables and their collections.
func (r *Runner) Variables(ctx context.Context, opts Options) (*Result, error) {
	res, logger, err := r.begin(ViewVariables, &opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	vars, err := r.Source.Variables(ctx, opts.FileKey, opts.Refresh)
	if err != nil {
		return nil, err
	}
	res.Stats.FetchTime = time.Since(start)

	snap := &views.Snapshot{Variables: vars.Variables, VariableCollections: vars.Collections}
	start = time.Now()
	v := buildVariables(ctx, snap)
	res.Stats.BuildTime = time.Since(start)
	res.Variables = &v
	res.Stats.Records = len(v.Variables)
	return r.finish(logger, res), nil
}

// Comments fetches the file's comments.
func (r *Runner) Comments(ctx context.Context, opts Options) (*Result, error) {
	res, logger, err := r.begin(ViewComments, &opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	list, err := r.Source.Comments(ctx, opts.FileKey, opts.Refresh)
	if err != nil {
		return nil, err
	}
	res.Stats.FetchTime = time.Since(start)

	snap := &views.Snapshot{Comments: list}
	start = time.Now()
	v := buildComments(ctx, snap)
	res.Stats.BuildTime = time.Since(start)
	res.Comments = &v
	res.Stats.Records = len(v.Comments)
	return r.finish(logger, res), nil
}

// Full builds every view from one fetch of the whole file.
//
// The file, the scoped nodes (when scoped), variables and comments are
// fetched concurrently. Variables and comments are optional: when either
// cannot be fetched the run logs a warning, records it in
// [Result.Warnings] and continues with an empty collection. The views are
// then built concurrently over the shared snapshot and joined.
func (r *Runner) Full(ctx context.Context, opts Options) (*Result, error) {
	res, logger, err := r.begin(ViewFull, &opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var (
		f        *figma.File
		scoped   map[string]node.Node
		vars     *figma.Variables
		comments []node.Node
		mu       sync.Mutex
	)
	optional := func(what string, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Debug("Optional fetch failed, continuing without", "resource", what, "err", err)
		mu.Lock()
		res.Warnings = append(res.Warnings, fmt.Sprintf("could not fetch %s: %s", what, ferrors.UserMessage(err)))
		mu.Unlock()
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		f, err = r.Source.File(gctx, opts.FileKey, opts.fileQuery(), opts.Refresh)
		return err
	})
	if opts.Scoped() {
		g.Go(func() error {
			var err error
			scoped, err = r.Source.Nodes(gctx, opts.FileKey, opts.NodeIDs, opts.Refresh)
			return err
		})
	}
	g.Go(func() error {
		v, err := r.Source.Variables(gctx, opts.FileKey, opts.Refresh)
		if err != nil {
			return optional("variables", err)
		}
		vars = v
		return nil
	})
	g.Go(func() error {
		list, err := r.Source.Comments(gctx, opts.FileKey, opts.Refresh)
		if err != nil {
			return optional("comments", err)
		}
		comments = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	res.Stats.FetchTime = time.Since(start)

	snap := snapshotOf(f)
	snap.ScopedNodes = scoped
	if vars != nil {
		snap.Variables = vars.Variables
		snap.VariableCollections = vars.Collections
	}
	snap.Comments = comments
	r.logFetched(logger, snap, res.Stats.FetchTime)

	start = time.Now()
	var (
		st  views.StructureView
		in  views.InteractionView
		md  views.MetadataView
		vv  views.VariablesView
		cv  views.CommentView
		all errgroup.Group
	)
	all.Go(func() error { st = buildStructure(ctx, snap, opts.Depth); return nil })
	all.Go(func() error { in = buildInteractions(ctx, snap); return nil })
	all.Go(func() error { md = buildMetadata(ctx, snap); return nil })
	all.Go(func() error { vv = buildVariables(ctx, snap); return nil })
	all.Go(func() error { cv = buildComments(ctx, snap); return nil })
	_ = all.Wait()

	full := views.Assemble(st, in, md, vv, cv)
	res.Stats.BuildTime = time.Since(start)
	res.Full = &full
	res.Stats.DocumentNodes = snap.Document.Count()
	res.Stats.Records = len(in.Interactions)
	res.setStructureStats(st)
	return r.finish(logger, res), nil
}

// =============================================================================
// Helpers
// =============================================================================

// begin validates opts and starts a result with a fresh run id.
func (r *Runner) begin(view string, opts *Options) (*Result, *log.Logger, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}
	res := &Result{RunID: uuid.NewString(), View: view}
	logger := opts.Logger.With("run", res.RunID[:8], "file", opts.FileKey)
	logger.Debug("starting run", "view", view, "depth", opts.Depth, "node_ids", len(opts.NodeIDs), "refresh", opts.Refresh)
	return res, logger, nil
}

func (r *Runner) finish(logger *log.Logger, res *Result) *Result {
	logger.Debug("built view",
		"view", res.View,
		"records", res.Stats.Records,
		"duration", res.Stats.BuildTime)
	return res
}

func (r *Runner) logFetched(logger *log.Logger, snap *views.Snapshot, d time.Duration) {
	name := ""
	if snap.Name != nil {
		name = *snap.Name
	}
	logger.Info("fetched file",
		"name", name,
		"nodes", snap.Document.Count(),
		"duration", d.Round(time.Millisecond))
}

func (res *Result) setStructureStats(v views.StructureView) {
	s := transform.Measure(v.Document)
	res.Stats.StructureNodes = s.Nodes
	res.Stats.Truncated = s.Truncated
}

func snapshotOf(f *figma.File) *views.Snapshot {
	return &views.Snapshot{
		Name:          f.Name,
		LastModified:  f.LastModified,
		Version:       f.Version,
		Document:      f.Document,
		Components:    f.Components,
		ComponentSets: f.ComponentSets,
	}
}

// build runs fn between view hooks. fn returns the view and the number of
// records it holds.
func build[T any](ctx context.Context, view string, fn func() (T, int)) T {
	hooks := observability.Pipeline()
	hooks.OnViewStart(ctx, view)
	start := time.Now()
	v, n := fn()
	hooks.OnViewComplete(ctx, view, n, time.Since(start))
	return v
}

func buildStructure(ctx context.Context, s *views.Snapshot, depth int) views.StructureView {
	return build(ctx, ViewStructure, func() (views.StructureView, int) {
		v := views.BuildStructure(s, depth)
		return v, v.Document.Count()
	})
}

func buildInteractions(ctx context.Context, s *views.Snapshot) views.InteractionView {
	return build(ctx, ViewInteractions, func() (views.InteractionView, int) {
		v := views.BuildInteractions(s)
		return v, len(v.Interactions)
	})
}

func buildMetadata(ctx context.Context, s *views.Snapshot) views.MetadataView {
	return build(ctx, ViewComponents, func() (views.MetadataView, int) {
		v := views.BuildMetadata(s)
		return v, len(v.Components)
	})
}

func buildVariables(ctx context.Context, s *views.Snapshot) views.VariablesView {
	return build(ctx, ViewVariables, func() (views.VariablesView, int) {
		v := views.BuildVariables(s)
		return v, len(v.Variables)
	})
}

func buildComments(ctx context.Context, s *views.Snapshot) views.CommentView {
	return build(ctx, ViewComments, func() (views.CommentView, int) {
		v := views.BuildComments(s)
		return v, len(v.Comments)
	})
}
