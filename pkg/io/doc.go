// Package io reads and writes chart data and configuration files.
//
// # JSON Format
//
// A data file carries exactly one chart kind, named by its top-level
// key. Bar chart files:
//
//	{
//	  "bars": [
//	    {"label": "Q1", "segments": [
//	      {"title": "storage", "value": 40},
//	      {"title": "compute", "value": 25}
//	    ]}
//	  ]
//	}
//
// Timeline files:
//
//	{
//	  "tracks": [
//	    {"label": "Mon", "intervals": [
//	      {"title": "deep work", "start": 540, "length": 90}
//	    ]}
//	  ]
//	}
//
// Timeline times are minutes; a full day runs 0 to 1440. [DetectKind]
// peeks at the top-level key, and [ReadJSON]/[ImportJSON] decode and
// validate in one step. Validation failures surface as DATA_INVALID,
// structural problems as INVALID_FORMAT.
//
// # Configuration
//
// Chart configuration is TOML, one file carrying both kinds:
//
//	[barchart]
//	bar_width = 32
//	palette = ["#1f77b4", "#ff7f0e"]
//
//	[timeline]
//	track_height = 20
//
//	[timeline.scale]
//	from = 360
//	to = 1260
//	interval = 120
//
// [LoadConfig] decodes over the package defaults, so a file only names
// what it changes. Unknown keys are errors: a typoed key fails loudly
// instead of silently keeping the default.
//
// # XLSX
//
// [ImportXLSX] reads the first sheet of a workbook. Bar sheets carry a
// header row of "label" followed by one column per segment title, one
// bar per row. Timeline sheets carry "track", "title", "start",
// "length" columns, one interval per row; rows sharing a track value
// belong to the same track, which keeps the position of its first
// appearance.
//
// # Export
//
// [WriteJSON]/[ExportJSON] write data back out in the JSON format
// above, and [WriteFile] is the output helper the render pipeline uses
// for finished SVG and PNG bytes (parent directories are created as
// needed).
package io
