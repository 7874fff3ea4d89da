package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/figscope/pkg/config"
	"github.com/matzehuels/figscope/pkg/core/node"
	ferrors "github.com/matzehuels/figscope/pkg/errors"
	"github.com/matzehuels/figscope/pkg/integrations/figma"
	"github.com/matzehuels/figscope/pkg/io"
)

// downloadCommand creates the "download" command.
func (c *CLI) downloadCommand() *cobra.Command {
	var (
		output    string
		outputDir string
		nodeIDs   string
		depth     int
	)

	cmd := &cobra.Command{
		Use:   "download <file-key|url>",
		Short: "Save the raw file JSON",
		Long: `Save the unmodified GET /files response for offline use. The file is named
<file name>_<file key>.json unless --output is given.

Every view command can read the saved file with --input:

  figscope download KEY
  figscope structure --input Design_KEY.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			key := figma.ExtractFileKey(args[0])
			if err := ferrors.ValidateFileKey(key); err != nil {
				return err
			}
			ids := figma.ParseNodeIDs(nodeIDs)
			if err := ferrors.ValidateNodeIDs(ids); err != nil {
				return err
			}
			// The whole tree unless --depth was given explicitly.
			q := figma.FileQuery{IDs: ids}
			if cmd.Flags().Changed(config.KeyDepth) {
				if err := ferrors.ValidateDepth(depth); err != nil {
					return err
				}
				q.Depth = depth
			}

			client, release, err := c.newClient(ctx, key)
			if err != nil {
				return err
			}
			defer release()

			prog := newProgress(c.Logger)
			stop := c.spin(ctx, "Downloading "+key+"...")
			data, err := client.Raw(ctx, key, q)
			stop()
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Downloaded %d bytes", len(data)))

			path := output
			if path == "" {
				path = filepath.Join(outputDir, io.DefaultOutputName(fileName(data), key))
			}
			if err := io.WriteFile(path, data); err != nil {
				return err
			}

			printSuccess("Downloaded %s", key)
			printFile(path)
			printNextStep("Inspect offline", appName+" structure --input "+path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: <file name>_<file key>.json)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for the default output name (default: current directory)")
	cmd.Flags().StringVar(&nodeIDs, "node-ids", "", "comma-separated node ids to scope to (e.g. 1:2,3:4)")
	cmd.Flags().IntVar(&depth, config.KeyDepth, 0, "depth limit of the document tree (default: unlimited)")

	return cmd
}

// fileName returns the "name" field of a file response, or "" when the
// body cannot be read.
func fileName(data []byte) string {
	doc, err := node.Parse(data)
	if err != nil {
		return ""
	}
	return doc.Name()
}
