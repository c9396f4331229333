package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pillarchart/pillar/internal/server"
	"github.com/pillarchart/pillar/pkg/barchart"
	chartio "github.com/pillarchart/pillar/pkg/io"
	"github.com/pillarchart/pillar/pkg/pipeline"
	"github.com/pillarchart/pillar/pkg/timeline"
)

// serveCommand creates the serve command, the browser preview loop.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		barPath    string
		tlPath     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the browser preview server",
		Long: `Start the browser preview server.

The index page re-renders both charts at the new width on every window
resize, which makes it the quickest way to judge responsive behavior.
Chart data comes from --bar and --timeline files; without them the
server uses built-in sample data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, barPath, tlPath, configPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8930", "listen address")
	cmd.Flags().StringVar(&barPath, "bar", "", "bar chart data file (.json or .xlsx)")
	cmd.Flags().StringVar(&tlPath, "timeline", "", "timeline data file (.json or .xlsx)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file")

	return cmd
}

// runServe loads the preview data and blocks serving it until the
// context is canceled (SIGINT from the terminal).
func (c *CLI) runServe(ctx context.Context, addr, barPath, tlPath, configPath string) error {
	logger := loggerFromContext(ctx)

	cfg, err := chartio.LoadConfig(configPath)
	if err != nil {
		return err
	}
	opts := []server.Option{server.WithLogger(logger), server.WithConfig(cfg)}

	runner := pipeline.NewRunner(logger)
	if barPath != "" {
		prog := newProgress(logger)
		data, err := runner.Import(ctx, pipeline.Options{DataPath: barPath, Kind: barchart.Kind})
		if err != nil {
			return err
		}
		opts = append(opts, server.WithBars(data.Bars))
		prog.done(fmt.Sprintf("Loaded %d bars from %s", len(data.Bars), barPath))
	}
	if tlPath != "" {
		prog := newProgress(logger)
		data, err := runner.Import(ctx, pipeline.Options{DataPath: tlPath, Kind: timeline.Kind})
		if err != nil {
			return err
		}
		opts = append(opts, server.WithTracks(data.Tracks))
		prog.done(fmt.Sprintf("Loaded %d tracks from %s", len(data.Tracks), tlPath))
	}

	printInfo("Preview at %s", StyleLink.Render(previewURL(addr)))
	return server.New(opts...).Serve(ctx, addr)
}

// previewURL turns a listen address into something clickable.
func previewURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
