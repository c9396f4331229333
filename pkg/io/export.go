package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pillarchart/pillar/pkg/barchart"
	"github.com/pillarchart/pillar/pkg/errors"
	"github.com/pillarchart/pillar/pkg/timeline"
)

// jsonFile is the wire shape of a data file. Exactly one key is
// present, matching the kind detection on import.
type jsonFile struct {
	Bars   []barchart.Bar   `json:"bars,omitempty"`
	Tracks []timeline.Track `json:"tracks,omitempty"`
}

// WriteJSON encodes data to w, indented. Output round-trips through
// [ReadJSON] unchanged.
func WriteJSON(data *Data, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonFile{Bars: data.Bars, Tracks: data.Tracks}); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encoding chart data")
	}
	return nil
}

// ExportJSON writes data as a JSON file at path.
func ExportJSON(data *Data, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "creating %s", path)
	}
	defer f.Close()
	return WriteJSON(data, f)
}

// WriteFile writes finished output bytes, an SVG or PNG document, to
// path. Parent directories are created as needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "creating %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "writing %s", path)
	}
	return nil
}
