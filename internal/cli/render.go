package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pillarchart/pillar/pkg/pipeline"
)

// renderCommand creates the render command, the file-to-file path
// through the pipeline.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := pipeline.Options{
		Width:  pipeline.DefaultWidth,
		Height: pipeline.DefaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "render [data.json|data.xlsx]",
		Short: "Render a chart data file to SVG or PNG",
		Long: `Render a chart data file to SVG or PNG.

The chart kind is read from the data file: a top-level "bars" key (or
a "label" header column in a workbook) renders a stacked bar chart, a
"tracks" key (or "track" column) a day timeline. --kind pins the
expectation when that is worth checking.

The SVG output is responsive: it stretches to its host element and
keeps bar caps round and text legible at any aspect ratio. --width and
--height fix the container measurement used for this render; PNG
output is rasterized at that size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DataPath = args[0]
			opts.Formats = parseFormats(formatsStr)
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Kind, "kind", "", "expected chart kind: bar or timeline (default: detect)")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "TOML configuration file")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "container width in px")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "container height in px")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output directory (default: working directory)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png (comma-separated)")

	return cmd
}

// runRender executes the pipeline and prints the written files.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.DataPath))
	spinner.Start()

	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	printSuccess("Rendered %s chart from %s", result.Kind, opts.DataPath)
	for _, path := range result.Written {
		printFile(path)
	}
	printStats(result.Items, result.Elements, result.Stats.BuildTime)
	return nil
}
