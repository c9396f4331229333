package io

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pillarchart/pillar/pkg/barchart"
	"github.com/pillarchart/pillar/pkg/errors"
	"github.com/pillarchart/pillar/pkg/timeline"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantCode errors.Code
	}{
		{name: "bars", input: `{"bars": []}`, want: barchart.Kind},
		{name: "tracks", input: `{"tracks": []}`, want: timeline.Kind},
		{name: "both keys", input: `{"bars": [], "tracks": []}`, wantCode: errors.ErrCodeInvalidFormat},
		{name: "neither key", input: `{"items": []}`, wantCode: errors.ErrCodeInvalidFormat},
		{name: "not json", input: `<svg/>`, wantCode: errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := DetectKind(strings.NewReader(tt.input))
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("DetectKind() error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectKind() error = %v", err)
			}
			if kind != tt.want {
				t.Errorf("DetectKind() = %q, want %q", kind, tt.want)
			}
		})
	}
}

func TestReadJSONBars(t *testing.T) {
	doc := `{
	  "bars": [
	    {"label": "Q1", "segments": [
	      {"title": "compute", "value": 40},
	      {"title": "storage", "value": 25}
	    ]},
	    {"label": "Q2", "segments": [{"title": "compute", "value": 12}]}
	  ]
	}`

	data, err := ReadJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if data.Kind != barchart.Kind {
		t.Errorf("kind = %q, want %q", data.Kind, barchart.Kind)
	}
	if len(data.Bars) != 2 {
		t.Fatalf("got %d bars, want 2", len(data.Bars))
	}
	if data.Bars[0].Segments[1].Value != 25 {
		t.Errorf("segment value = %v, want 25", data.Bars[0].Segments[1].Value)
	}
	if data.Tracks != nil {
		t.Errorf("bar data carries %d tracks", len(data.Tracks))
	}
}

func TestReadJSONTracks(t *testing.T) {
	doc := `{
	  "tracks": [
	    {"label": "Mon", "intervals": [
	      {"title": "deep work", "start": 540, "length": 90}
	    ]}
	  ]
	}`

	data, err := ReadJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if data.Kind != timeline.Kind {
		t.Errorf("kind = %q, want %q", data.Kind, timeline.Kind)
	}
	if len(data.Tracks) != 1 || len(data.Tracks[0].Intervals) != 1 {
		t.Fatalf("got %+v, want one track with one interval", data.Tracks)
	}
	if got := data.Tracks[0].Intervals[0].Start; got != 540 {
		t.Errorf("start = %v, want 540", got)
	}
}

func TestReadJSONRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{
			name:     "bars not a list",
			input:    `{"bars": {"label": "Q1"}}`,
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "negative value",
			input:    `{"bars": [{"label": "Q1", "segments": [{"title": "a", "value": -1}]}]}`,
			wantCode: errors.ErrCodeDataInvalid,
		},
		{
			name:     "negative interval length",
			input:    `{"tracks": [{"label": "Mon", "intervals": [{"title": "a", "start": 0, "length": -5}]}]}`,
			wantCode: errors.ErrCodeDataInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.input)); !errors.Is(err, tt.wantCode) {
				t.Errorf("ReadJSON() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON() error = %v, want code FILE_NOT_FOUND", err)
	}
}
