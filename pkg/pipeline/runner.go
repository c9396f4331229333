package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pillarchart/pillar/pkg/barchart"
	"github.com/pillarchart/pillar/pkg/errors"
	chartio "github.com/pillarchart/pillar/pkg/io"
	"github.com/pillarchart/pillar/pkg/observability"
	"github.com/pillarchart/pillar/pkg/raster"
	"github.com/pillarchart/pillar/pkg/timeline"
	"github.com/pillarchart/pillar/pkg/vector"
)

// Runner executes the pipeline. It is stateless apart from the logger,
// so multiple goroutines can share one Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to the package
// default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs import, build, and export for one data file and writes
// the requested outputs under opts.Output.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	importStart := time.Now()
	data, err := r.Import(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Kind = data.Kind
	result.Items = len(data.Bars) + len(data.Tracks)
	result.Stats.ImportTime = time.Since(importStart)

	buildStart := time.Now()
	canvas, err := r.Build(data, opts)
	if err != nil {
		return nil, err
	}
	result.Elements = canvas.ElementCount()
	result.Stats.BuildTime = time.Since(buildStart)

	exportStart := time.Now()
	result.Artifacts, err = r.Export(ctx, canvas, opts)
	if err != nil {
		return nil, err
	}
	for _, format := range opts.Formats {
		path := OutputPath(opts, format)
		if err := chartio.WriteFile(path, result.Artifacts[format]); err != nil {
			return nil, err
		}
		result.Written = append(result.Written, path)
	}
	result.Stats.ExportTime = time.Since(exportStart)

	r.Logger.Debug("pipeline finished",
		"kind", result.Kind,
		"items", result.Items,
		"elements", result.Elements,
		"import", result.Stats.ImportTime,
		"build", result.Stats.BuildTime,
		"export", result.Stats.ExportTime)

	return result, nil
}

// Import reads and validates the data file, picking the reader by
// extension. A pinned opts.Kind must match the detected kind.
func (r *Runner) Import(ctx context.Context, opts Options) (*chartio.Data, error) {
	start := time.Now()
	observability.Pipeline().OnImportStart(ctx, opts.DataPath)

	var data *chartio.Data
	var err error
	switch ext := strings.ToLower(filepath.Ext(opts.DataPath)); ext {
	case ".json":
		data, err = chartio.ImportJSON(opts.DataPath)
	case ".xlsx":
		data, err = chartio.ImportXLSX(opts.DataPath)
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "unsupported data file extension %q (use .json or .xlsx)", ext)
	}
	if err == nil && opts.Kind != "" && opts.Kind != data.Kind {
		err = errors.New(errors.ErrCodeInvalidKind, "data file %s carries %s data, not %s", opts.DataPath, data.Kind, opts.Kind)
	}

	kind, items := "", 0
	if err == nil {
		kind = data.Kind
		items = len(data.Bars) + len(data.Tracks)
	}
	observability.Pipeline().OnImportComplete(ctx, opts.DataPath, kind, items, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("imported chart data",
		"path", opts.DataPath,
		"kind", kind,
		"items", items,
		"duration", time.Since(start))
	return data, nil
}

// Build loads the configuration and renders the chart against a fixed
// container of opts.Width by opts.Height px.
func (r *Runner) Build(data *chartio.Data, opts Options) (*vector.Canvas, error) {
	cfg, err := chartio.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	container := vector.Fixed{W: opts.Width, H: opts.Height}

	switch data.Kind {
	case barchart.Kind:
		chart, err := barchart.New(container, cfg.Barchart, barchart.WithLogger(r.Logger))
		if err != nil {
			return nil, err
		}
		if err := chart.SetData(data.Bars); err != nil {
			return nil, err
		}
		return chart.Canvas()
	case timeline.Kind:
		chart, err := timeline.New(container, cfg.Timeline, timeline.WithLogger(r.Logger))
		if err != nil {
			return nil, err
		}
		if err := chart.SetData(data.Tracks); err != nil {
			return nil, err
		}
		return chart.Canvas()
	}
	return nil, errors.New(errors.ErrCodeInvalidKind, "invalid kind %q (must be %s or %s)", data.Kind, barchart.Kind, timeline.Kind)
}

// Export encodes the rendered canvas into each requested format.
func (r *Runner) Export(ctx context.Context, canvas *vector.Canvas, opts Options) (map[string][]byte, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnExportStart(ctx, opts.Formats)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var err error
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = canvas.SVG()
		case FormatPNG:
			artifacts[format], err = raster.ToPNG(canvas)
		}
		if err != nil {
			break
		}
	}

	observability.Pipeline().OnExportComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// OutputPath names the written file for a format: the data file's base
// name with the format extension, under opts.Output.
func OutputPath(opts Options, format string) string {
	base := strings.TrimSuffix(filepath.Base(opts.DataPath), filepath.Ext(opts.DataPath))
	return filepath.Join(opts.Output, base+"."+format)
}
