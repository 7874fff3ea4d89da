package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/figscope/pkg/config"
	ferrors "github.com/matzehuels/figscope/pkg/errors"
	"github.com/matzehuels/figscope/pkg/integrations/figma"
	"github.com/matzehuels/figscope/pkg/io"
	"github.com/matzehuels/figscope/pkg/pipeline"
)

// viewFlags holds the flags shared by the view commands.
type viewFlags struct {
	fileKey string
	nodeIDs string
	output  string
	input   string

	// interactions only
	format   string
	detailed bool
}

// structureCommand creates the "structure" command.
func (c *CLI) structureCommand() *cobra.Command {
	cmd := c.viewCommand(pipeline.ViewStructure,
		"Print the node tree without appearance fields",
		`Print the document tree down to --depth levels below the root, with fills,
strokes, effects and other appearance fields removed. Nodes whose children
were cut off report the number of children as _childCount.`)
	addDepthFlag(cmd)
	return cmd
}

// interactionsCommand creates the "interactions" command.
func (c *CLI) interactionsCommand() *cobra.Command {
	cmd := c.viewCommand(pipeline.ViewInteractions,
		"Print the prototype flow graph",
		`Print every prototype interaction of the file with the path of its source
node, plus the flow starting points of every page.

The flow graph can also be written as Graphviz DOT or drawn as SVG or PNG:

  figscope interactions KEY --format svg -o flows.svg`)
	return cmd
}

// componentsCommand creates the "components" command.
func (c *CLI) componentsCommand() *cobra.Command {
	return c.viewCommand(pipeline.ViewComponents,
		"Print components and component sets",
		`Print the file's components and component sets. With --node-ids the
component properties of the given instances are listed as well.`)
}

// variablesCommand creates the "variables" command.
func (c *CLI) variablesCommand() *cobra.Command {
	return c.viewCommand(pipeline.ViewVariables,
		"Print local variables and collections",
		`Print the file's local variables and variable collections. The variables
endpoint is only available on Figma Enterprise plans.`)
}

// commentsCommand creates the "comments" command.
func (c *CLI) commentsCommand() *cobra.Command {
	return c.viewCommand(pipeline.ViewComments,
		"Print file comments",
		`Print the file's comments in the order the API returns them.`)
}

// fullCommand creates the "full" command.
func (c *CLI) fullCommand() *cobra.Command {
	cmd := c.viewCommand(pipeline.ViewFull,
		"Print every view in one document",
		`Print structure, interactions, components, variables and comments in a
single document. Variables and comments are optional: when they cannot be
fetched a warning is printed and they are reported empty.`)
	addDepthFlag(cmd)
	return cmd
}

// viewCommand builds a command that runs one pipeline view.
func (c *CLI) viewCommand(view, short, long string) *cobra.Command {
	flags := &viewFlags{format: pipeline.FormatJSON}

	cmd := &cobra.Command{
		Use:   view + " [file-key|url]",
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				flags.fileKey = args[0]
			}
			return c.runView(cmd.Context(), view, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.fileKey, "file-key", "f", "", "file key or figma.com URL")
	cmd.Flags().StringVar(&flags.nodeIDs, "node-ids", "", "comma-separated node ids to scope to (e.g. 1:2,3:4)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&flags.input, "input", "", "read a file saved with 'download' instead of calling the API")
	if view == pipeline.ViewInteractions {
		cmd.Flags().StringVar(&flags.format, "format", pipeline.FormatJSON, "output format: json, dot, svg, png")
		cmd.Flags().BoolVar(&flags.detailed, "detailed", false, "label graph nodes with their paths and show transitions")
	}
	return cmd
}

// addDepthFlag registers --depth. The value reaches the run through the
// loaded configuration, so config files and FIGSCOPE_DEPTH apply too.
func addDepthFlag(cmd *cobra.Command) {
	cmd.Flags().Int(config.KeyDepth, config.DefaultDepth, "levels below the document root to keep (-1 for all)")
}

// runView builds one view and writes it to stdout or --output.
func (c *CLI) runView(ctx context.Context, view string, flags *viewFlags) error {
	if view == pipeline.ViewInteractions {
		if err := pipeline.ValidateFormat(flags.format); err != nil {
			return err
		}
		if flags.format == pipeline.FormatPNG && flags.output == "" && isTerminal(c.Out) {
			return ferrors.New(ferrors.ErrCodeInvalidInput, "refusing to write PNG to a terminal; use --output")
		}
	}

	opts, err := c.viewOptions(flags)
	if err != nil {
		return err
	}

	src, release, err := c.newSource(ctx, flags.input, opts.FileKey)
	if err != nil {
		return err
	}
	defer release()

	runner := pipeline.NewRunner(src, c.Logger)
	stop := c.spin(ctx, fmt.Sprintf("Building %s view...", view))
	res, err := runner.Run(ctx, view, opts)
	stop()
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		printWarning("%s", w)
	}

	data, err := encodeResult(ctx, res, flags)
	if err != nil {
		return err
	}

	if flags.output == "" {
		_, err := c.Out.Write(data)
		return err
	}
	if err := io.WriteFile(flags.output, data); err != nil {
		return err
	}
	printSuccess("Wrote %s view", view)
	printFile(flags.output)
	printStats(res.Stats)
	return nil
}

// viewOptions turns flags and configuration into validated run options.
// A node id in a share URL scopes the run when --node-ids is not given.
func (c *CLI) viewOptions(flags *viewFlags) (pipeline.Options, error) {
	key := flags.fileKey
	if key == "" && flags.input != "" {
		key = localFileKey
	}
	if key == "" {
		return pipeline.Options{}, ferrors.New(ferrors.ErrCodeInvalidFileKey, "a file key or URL is required")
	}

	opts := pipeline.NewOptions(key)
	opts.Depth = c.cfg.Depth
	opts.Refresh = c.cfg.Refresh
	opts.Logger = c.Logger
	opts.NodeIDs = figma.ParseNodeIDs(flags.nodeIDs)
	if len(opts.NodeIDs) == 0 {
		if id := figma.NodeIDFromURL(key); id != "" {
			opts.NodeIDs = []string{id}
		}
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// encodeResult serializes the built view. Interactions honor --format;
// everything else is JSON.
func encodeResult(ctx context.Context, res *pipeline.Result, flags *viewFlags) ([]byte, error) {
	if res.Interactions != nil {
		return pipeline.RenderInteractions(ctx, *res.Interactions, flags.format, flags.detailed)
	}
	return io.MarshalJSON(res.Output())
}
