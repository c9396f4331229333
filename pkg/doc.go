// Package pkg provides the core libraries for Pillar chart rendering.
//
// # Overview
//
// Pillar turns small data files into responsive SVG charts: stacked bar
// charts whose rounded caps survive any viewport shape, and multi-track
// day timelines with a clock axis. The pkg directory is organized into
// four main areas:
//
//  1. Charts ([barchart], [timeline]) - chart models, validation, layout
//  2. Geometry ([geometry], [vector], [palette], [fonts], [timefmt]) -
//     the scale-aware drawing substrate the charts build on
//  3. Output ([raster], [io]) - PNG rasterization and file import/export
//  4. Orchestration ([pipeline], [observability], [errors]) - the
//     import → build → export pipeline shared by CLI and preview server
//
// # Architecture
//
// The typical data flow through Pillar:
//
//	JSON/XLSX data file
//	         ↓
//	    [io] package (import + validation)
//	         ↓
//	    [barchart] or [timeline] package (layout against a container)
//	         ↓
//	    [vector] package (element tree → SVG document)
//	         ↓
//	    SVG/PNG output
//
// # Quick Start
//
// Render a stacked bar chart to SVG:
//
//	import (
//	    "github.com/pillarchart/pillar/pkg/barchart"
//	    "github.com/pillarchart/pillar/pkg/vector"
//	)
//
//	// 1. Measure the container
//	container := vector.Fixed{W: 800, H: 400}
//
//	// 2. Build the chart
//	chart, _ := barchart.New(container, barchart.DefaultConfig())
//	_ = chart.SetData([]barchart.Bar{
//	    {Label: "Q1", Segments: []barchart.Segment{{Title: "compute", Value: 30}}},
//	})
//
//	// 3. Render to SVG
//	svg, _ := chart.SVG()
//
// # Main Packages
//
// ## Charts
//
// [barchart] - Stacked bar charts with capsule-shaped bars. Layout is
// anisotropic-scale aware: caps stay circular in screen space at any
// container aspect ratio.
//
// [timeline] - Day timelines: one horizontal lane per track, intervals
// placed on a minutes-since-midnight clock axis with hour stripes and
// a shared legend.
//
// ## Geometry
//
// [geometry] - Anisotropic scale pairs, capsule construction, and arc
// flattening. The invariant the whole library leans on: radii are
// chosen in screen space and mapped back to user space.
//
// [vector] - Minimal SVG element tree (rects, paths, text, groups) and
// the document writer. Charts append elements; the writer emits a
// viewBox-based responsive document.
//
// [palette] - Deterministic segment coloring built on HCL color space,
// plus named palette resolution.
//
// [fonts] - Text measurement for label fitting, backed by embedded
// font metrics.
//
// [timefmt] - Clock-axis label formatting (minutes since midnight to
// "9:00", "14:30").
//
// ## Output
//
// [io] - Data import (JSON, XLSX workbooks), TOML configuration files,
// and export helpers.
//
// [raster] - SVG-to-PNG rasterization for chart snapshots.
//
// ## Orchestration
//
// [pipeline] - The import → build → export pipeline used by the CLI
// render/watch commands and the preview server. Every render measures
// its container fresh; nothing is cached between runs.
//
// [observability] - Hook interfaces for render, pipeline, and HTTP
// instrumentation.
//
// [errors] - Structured errors with machine-readable codes shared by
// the library, CLI, and server.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/barchart/...     # Specific package
//	go test -run Example           # Examples only
//
// [barchart]: https://pkg.go.dev/github.com/pillarchart/pillar/pkg/barchart
// [timeline]: https://pkg.go.dev/github.com/pillarchart/pillar/pkg/timeline
// [geometry]: https://pkg.go.dev/github.com/pillarchart/pillar/pkg/geometry
// [vector]: https://pkg.go.dev/github.com/pillarchart/pillar/pkg/vector
// [palette]: https://pkg.go.dev/github.com/pillarchart/pillar/pkg/palette
// [fonts]: https://pkg.go.dev/github.com/pillarchart/pillar/pkg/fonts
// [timefmt]: https://pkg.go.dev/github.com/pillarchart/pillar/pkg/timefmt
// [io]: https://pkg.go.dev/github.com/pillarchart/pillar/pkg/io
// [raster]: https://pkg.go.dev/github.com/pillarchart/pillar/pkg/raster
// [pipeline]: https://pkg.go.dev/github.com/pillarchart/pillar/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/pillarchart/pillar/pkg/observability
// [errors]: https://pkg.go.dev/github.com/pillarchart/pillar/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/pillarchart/pillar/pkg/buildinfo
package pkg
