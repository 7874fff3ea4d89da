package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/figscope/pkg/buildinfo"
	"github.com/matzehuels/figscope/pkg/cache"
	"github.com/matzehuels/figscope/pkg/config"
	ferrors "github.com/matzehuels/figscope/pkg/errors"
	"github.com/matzehuels/figscope/pkg/integrations/figma"
	"github.com/matzehuels/figscope/pkg/observability"
	"github.com/matzehuels/figscope/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "figscope"

	// localFileKey stands in for the file key of offline runs that were
	// not given one.
	localFileKey = "local"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command results. Status lines, warnings and logs go to
	// stderr so results can be piped.
	Out io.Writer

	configFile string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "figscope turns Figma files into compact JSON views",
		Long: `figscope fetches a Figma file through the REST API and reduces it to small,
appearance-free JSON views: the node structure, the prototype flow graph,
component metadata, variables and comments.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (default: ./"+config.FileName+", then "+config.Dir()+")")
	pf.String(config.KeyPassword, "", "password of a password-protected file")
	pf.Bool(config.KeyNoCache, false, "disable the response cache")
	pf.Bool(config.KeyRefresh, false, "ignore cached responses and refetch")

	// Register all subcommands
	root.AddCommand(c.structureCommand())
	root.AddCommand(c.interactionsCommand())
	root.AddCommand(c.componentsCommand())
	root.AddCommand(c.variablesCommand())
	root.AddCommand(c.commentsCommand())
	root.AddCommand(c.fullCommand())
	root.AddCommand(c.downloadCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration for the command being run and registers
// the debug-logging hooks.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.Options{Flags: cmd.Flags(), File: c.configFile})
	if err != nil {
		return err
	}
	c.cfg = cfg
	for _, src := range cfg.Source {
		c.Logger.Debug("Loaded config", "file", src)
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	hooks := logHooks{}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	return nil
}

// ReportError prints err with its remediation hint, if one exists.
func (c *CLI) ReportError(err error) {
	c.Logger.Debug("Command failed", "err", err)
	printError("%s", ferrors.UserMessage(err))
	if hint := ferrors.Hint(err); hint != "" {
		printDetail("%s", hint)
	}
}

// =============================================================================
// Source Factory
// =============================================================================

// newSource returns the data source of a run: a saved file when input is
// set, the Figma API otherwise. The returned func releases the source.
func (c *CLI) newSource(ctx context.Context, input, fileKey string) (pipeline.Source, func(), error) {
	if input != "" {
		src, err := pipeline.OpenFileSource(input)
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Debug("Reading saved file", "path", input)
		return src, func() {}, nil
	}
	return c.newClient(ctx, fileKey)
}

// newClient creates an API client for fileKey, unlocking the file when a
// password is configured.
func (c *CLI) newClient(ctx context.Context, fileKey string) (*figma.Client, func(), error) {
	ch, err := c.newCache(ctx)
	if err != nil {
		return nil, nil, err
	}
	release := func() { _ = ch.Close() }

	client, err := figma.NewClient(figma.Options{
		Token:   c.cfg.Token,
		BaseURL: c.cfg.BaseURL,
		WebURL:  c.cfg.WebURL,
		Cache:   ch,
		TTL:     c.cfg.CacheTTL,
		Timeout: c.cfg.Timeout,
	})
	if err != nil {
		release()
		return nil, nil, err
	}

	if c.cfg.Password != "" {
		c.Logger.Debug("Unlocking file", "file", fileKey)
		if err := client.Unlock(ctx, fileKey, c.cfg.Password); err != nil {
			release()
			return nil, nil, err
		}
	}
	return client, release, nil
}

// newCache returns the response cache selected by the configuration.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	if c.cfg.NoCache {
		return cache.NewNullCache(), nil
	}
	return c.openCache(ctx)
}

// openCache opens the configured backing store, ignoring --no-cache:
// Redis when a URL is set, the file cache otherwise.
func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	if c.cfg.RedisURL != "" {
		return cache.NewRedisCache(ctx, c.cfg.RedisURL)
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("No cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.cfg != nil && c.cfg.CacheDir != "" {
		return c.cfg.CacheDir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/figscope/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Terminal
// =============================================================================

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// spin shows a spinner on an interactive stderr while debug logging is
// off. The returned func stops it.
func (c *CLI) spin(ctx context.Context, message string) func() {
	if c.Logger.GetLevel() <= log.DebugLevel || !isTerminal(os.Stderr) {
		return func() {}
	}
	s := newSpinnerWithContext(ctx, message)
	s.Start()
	return s.Stop
}
