// Package pipeline turns chart data files into finished SVG and PNG
// documents.
//
// A run has three stages:
//
//  1. Import: read and validate the data file (.json or .xlsx) and
//     detect the chart kind.
//  2. Build: layer the TOML configuration over the defaults, construct
//     the chart against a fixed-size container, and render its element
//     tree.
//  3. Export: encode each requested format and write the output files.
//
// The CLI runs charts through this package so file handling,
// configuration layering, and error codes stay identical across entry
// points.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    DataPath: "day.json",
//	    Formats:  []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/pillarchart/pillar/pkg/barchart"
	"github.com/pillarchart/pillar/pkg/errors"
	"github.com/pillarchart/pillar/pkg/timeline"
)

const (
	// DefaultWidth and DefaultHeight measure the container in px when
	// the caller does not pick a size.
	DefaultWidth  = 800.0
	DefaultHeight = 400.0
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
}

// ValidKinds is the set of supported chart kinds.
var ValidKinds = map[string]bool{
	barchart.Kind: true,
	timeline.Kind: true,
}

// Options contains all configuration for one pipeline run. The zero
// value plus a DataPath is a complete run: detected kind, default
// container, SVG output next to the working directory.
//
// The struct serializes to JSON so callers can log or replay runs.
type Options struct {
	// DataPath is the chart data file (.json or .xlsx).
	DataPath string `json:"data_path"`

	// Kind pins the expected chart kind. Empty accepts whatever the
	// data file carries; set, it must match the detected kind.
	Kind string `json:"kind,omitempty"`

	// ConfigPath is an optional TOML configuration file.
	ConfigPath string `json:"config_path,omitempty"`

	// Width and Height measure the container in px.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Formats lists the outputs to encode.
	Formats []string `json:"formats,omitempty"`

	// Output is the directory written files land in. Empty writes to
	// the working directory.
	Output string `json:"output,omitempty"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Kind is the chart kind that was rendered.
	Kind string

	// Items counts the bars or tracks in the data file.
	Items int

	// Elements counts the elements of the rendered canvas.
	Elements int

	// Artifacts contains the encoded outputs keyed by format.
	Artifacts map[string][]byte

	// Written lists the files Execute wrote, in format order.
	Written []string

	// Stats contains per-stage timings.
	Stats Stats
}

// Stats contains pipeline execution timings.
type Stats struct {
	ImportTime time.Duration
	BuildTime  time.Duration
	ExportTime time.Duration
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be svg or png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateKind checks that a chart kind is supported.
func ValidateKind(kind string) error {
	if !ValidKinds[kind] {
		return errors.New(errors.ErrCodeInvalidKind, "invalid kind %q (must be %s or %s)", kind, barchart.Kind, timeline.Kind)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and fills the house
// defaults. Calling it more than once has the same effect as calling
// it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.DataPath == "" {
		return errors.New(errors.ErrCodeDataInvalid, "data path is required")
	}
	if o.Kind != "" {
		if err := ValidateKind(o.Kind); err != nil {
			return err
		}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width <= 0 || o.Height <= 0 {
		return errors.New(errors.ErrCodeNotMeasurable, "container %vx%v cannot be rendered", o.Width, o.Height)
	}
	return nil
}
