package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pillarchart/pillar/pkg/pipeline"
)

const (
	// cellWidthPx and cellHeightPx approximate a terminal glyph in px,
	// so the terminal window can stand in for a browser viewport.
	cellWidthPx  = 8
	cellHeightPx = 16

	// watchPoll is how often the data and config files are polled for
	// modification time changes.
	watchPoll = 500 * time.Millisecond
)

// watchCommand creates the watch command, a terminal loop that
// re-renders on resize and on file changes.
func (c *CLI) watchCommand() *cobra.Command {
	var formatsStr string
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "watch [data.json|data.xlsx]",
		Short: "Re-render on terminal resize and file changes",
		Long: `Re-render on terminal resize and file changes.

The terminal stands in for a browser window: every resize measures a
new container (8 px per column by 16 px per row) and re-runs the full
pipeline, and the data and config files are polled for changes twice a
second. Output files are rewritten in place on every render.

Quit with q or ctrl+c.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DataPath = args[0]
			opts.Formats = parseFormats(formatsStr)
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runWatch(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Kind, "kind", "", "expected chart kind: bar or timeline (default: detect)")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "TOML configuration file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output directory (default: working directory)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png (comma-separated)")

	return cmd
}

// runWatch drives the bubbletea program until quit or cancellation.
func (c *CLI) runWatch(ctx context.Context, opts pipeline.Options) error {
	p := tea.NewProgram(newWatchModel(opts), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if m, ok := final.(watchModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

// watchTick is the poll timer message.
type watchTick time.Time

// watchModel is the bubbletea model for the watch loop.
type watchModel struct {
	runner *pipeline.Runner
	opts   pipeline.Options

	cols, rows int
	renders    int
	kind       string
	items      int
	elements   int
	last       time.Duration
	written    []string
	err        error
	mtimes     map[string]time.Time
}

func newWatchModel(opts pipeline.Options) watchModel {
	m := watchModel{
		// Pipeline logs would draw over the TUI; the view reports
		// the stats instead.
		runner: pipeline.NewRunner(log.New(io.Discard)),
		opts:   opts,
		mtimes: map[string]time.Time{},
	}
	m.filesChanged() // record the starting stamps
	return m
}

func (m watchModel) Init() tea.Cmd {
	return watchTickCmd()
}

func watchTickCmd() tea.Cmd {
	return tea.Tick(watchPoll, func(t time.Time) tea.Msg { return watchTick(t) })
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.opts.Width = float64(msg.Width * cellWidthPx)
		m.opts.Height = float64(msg.Height * cellHeightPx)
		return m.rendered(), nil
	case watchTick:
		if m.filesChanged() {
			return m.rendered(), watchTickCmd()
		}
		return m, watchTickCmd()
	}
	return m, nil
}

// rendered runs the pipeline at the current measurement and stamps the
// outcome onto the model.
func (m watchModel) rendered() watchModel {
	start := time.Now()
	result, err := m.runner.Execute(context.Background(), m.opts)
	m.renders++
	m.last = time.Since(start)
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.kind = result.Kind
	m.items = result.Items
	m.elements = result.Elements
	m.written = result.Written
	return m
}

// filesChanged polls the watched files and refreshes the stored
// stamps. Only a stamp newer than a previously seen one counts as a
// change, so the first poll just records.
func (m *watchModel) filesChanged() bool {
	changed := false
	paths := []string{m.opts.DataPath}
	if m.opts.ConfigPath != "" {
		paths = append(paths, m.opts.ConfigPath)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		prev, seen := m.mtimes[path]
		m.mtimes[path] = info.ModTime()
		if seen && info.ModTime().After(prev) {
			changed = true
		}
	}
	return changed
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("pillar watch"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render("q to quit"))
	b.WriteString("\n\n")

	b.WriteString(watchRow("data", m.opts.DataPath))
	if m.opts.ConfigPath != "" {
		b.WriteString(watchRow("config", m.opts.ConfigPath))
	}
	b.WriteString(watchRow("container", fmt.Sprintf("%.0fx%.0f px (%dx%d cells)", m.opts.Width, m.opts.Height, m.cols, m.rows)))
	if m.kind != "" {
		b.WriteString(watchRow("chart", fmt.Sprintf("%s · %d items · %d elements", m.kind, m.items, m.elements)))
	}
	b.WriteString(watchRow("renders", fmt.Sprintf("%d (last %s)", m.renders, m.last.Round(time.Millisecond))))

	for _, path := range m.written {
		b.WriteString("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path) + "\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render(fmt.Sprintf("%s %v", iconWarning, m.err)))
		b.WriteString("\n")
	}
	return b.String()
}

func watchRow(key, value string) string {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(10)
	return keyStyle.Render(key) + " " + StyleValue.Render(value) + "\n"
}
