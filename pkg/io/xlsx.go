package io

import (
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pillarchart/pillar/pkg/barchart"
	"github.com/pillarchart/pillar/pkg/errors"
	"github.com/pillarchart/pillar/pkg/timeline"
)

// ImportXLSX reads chart data from the first sheet of a workbook. The
// first cell of the header row names the layout: "label" starts a bar
// sheet, "track" a timeline sheet.
func ImportXLSX(path string) (*Data, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "data file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "opening %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "reading sheet %s", sheets[0])
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "sheet %s is empty", sheets[0])
	}

	header := rows[0]
	switch {
	case len(header) > 0 && strings.EqualFold(header[0], "label"):
		return barsFromRows(header, rows[1:])
	case len(header) > 0 && strings.EqualFold(header[0], "track"):
		return tracksFromRows(rows[1:])
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat,
		"sheet %s: header must start with label (bars) or track (timeline)", sheets[0])
}

// barsFromRows builds one bar per row. Header columns after the first
// are the segment titles; an empty cell skips that segment.
func barsFromRows(header []string, rows [][]string) (*Data, error) {
	if len(header) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "bar sheet needs at least one segment column")
	}

	data := &Data{Kind: barchart.Kind}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		bar := barchart.Bar{Label: row[0]}
		for col := 1; col < len(header) && col < len(row); col++ {
			cell := strings.TrimSpace(row[col])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeDataInvalid, err, "row %d column %s", i+2, header[col])
			}
			bar.Segments = append(bar.Segments, barchart.Segment{Title: header[col], Value: v})
		}
		data.Bars = append(data.Bars, bar)
	}
	if err := barchart.Validate(data.Bars); err != nil {
		return nil, err
	}
	return data, nil
}

// tracksFromRows builds one interval per row, grouped by the track
// cell. A track keeps the position of its first appearance.
func tracksFromRows(rows [][]string) (*Data, error) {
	data := &Data{Kind: timeline.Kind}
	index := map[string]int{}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if len(row) < 4 {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"row %d: timeline rows carry track, title, start, length", i+2)
		}
		start, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDataInvalid, err, "row %d start", i+2)
		}
		length, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDataInvalid, err, "row %d length", i+2)
		}

		at, ok := index[row[0]]
		if !ok {
			at = len(data.Tracks)
			index[row[0]] = at
			data.Tracks = append(data.Tracks, timeline.Track{Label: row[0]})
		}
		data.Tracks[at].Intervals = append(data.Tracks[at].Intervals, timeline.Interval{
			Title:  row[1],
			Start:  start,
			Length: length,
		})
	}
	if err := timeline.Validate(data.Tracks); err != nil {
		return nil, err
	}
	return data, nil
}
