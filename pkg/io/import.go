package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pillarchart/pillar/pkg/barchart"
	"github.com/pillarchart/pillar/pkg/errors"
	"github.com/pillarchart/pillar/pkg/timeline"
)

// Data is one decoded chart data set. Kind names the chart it belongs
// to (barchart.Kind or timeline.Kind) and exactly one of the slices is
// populated.
type Data struct {
	Kind   string
	Bars   []barchart.Bar
	Tracks []timeline.Track
}

// DetectKind reports which chart kind a JSON document carries, by its
// top-level key: "bars" or "tracks".
func DetectKind(r io.Reader) (string, error) {
	var keys map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&keys); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding chart data")
	}
	return kindFromKeys(keys)
}

func kindFromKeys(keys map[string]json.RawMessage) (string, error) {
	_, hasBars := keys["bars"]
	_, hasTracks := keys["tracks"]
	switch {
	case hasBars && hasTracks:
		return "", errors.New(errors.ErrCodeInvalidFormat, "chart data carries both bars and tracks")
	case hasBars:
		return barchart.Kind, nil
	case hasTracks:
		return timeline.Kind, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "chart data carries neither bars nor tracks")
}

// ReadJSON decodes and validates a chart data document from r. The
// chart kind is detected from the top-level key.
//
// The returned data is independent of r, which is not closed.
func ReadJSON(r io.Reader) (*Data, error) {
	var keys map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&keys); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding chart data")
	}
	kind, err := kindFromKeys(keys)
	if err != nil {
		return nil, err
	}

	data := &Data{Kind: kind}
	switch kind {
	case barchart.Kind:
		if err := json.Unmarshal(keys["bars"], &data.Bars); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding bars")
		}
		if err := barchart.Validate(data.Bars); err != nil {
			return nil, err
		}
	case timeline.Kind:
		if err := json.Unmarshal(keys["tracks"], &data.Tracks); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding tracks")
		}
		if err := timeline.Validate(data.Tracks); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// ImportJSON reads a chart data file at path via [ReadJSON].
func ImportJSON(path string) (*Data, error) {
	f, err := openData(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

func openData(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "data file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "opening %s", path)
	}
	return f, nil
}
