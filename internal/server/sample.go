package server

import (
	"github.com/pillarchart/pillar/pkg/barchart"
	"github.com/pillarchart/pillar/pkg/timeline"
)

// sampleBars is the fallback dataset behind /chart/bar.
func sampleBars() []barchart.Bar {
	return []barchart.Bar{
		{Label: "Q1", Segments: []barchart.Segment{
			{Title: "compute", Value: 42},
			{Title: "storage", Value: 18},
			{Title: "network", Value: 7},
		}},
		{Label: "Q2", Segments: []barchart.Segment{
			{Title: "compute", Value: 55},
			{Title: "storage", Value: 21},
			{Title: "network", Value: 9},
		}},
		{Label: "Q3", Segments: []barchart.Segment{
			{Title: "compute", Value: 47},
			{Title: "storage", Value: 30},
			{Title: "network", Value: 12},
		}},
		{Label: "Q4", Segments: []barchart.Segment{
			{Title: "compute", Value: 63},
			{Title: "storage", Value: 26},
			{Title: "network", Value: 10},
		}},
	}
}

// sampleTracks is the fallback dataset behind /chart/timeline.
func sampleTracks() []timeline.Track {
	return []timeline.Track{
		{Label: "Mon", Intervals: []timeline.Interval{
			{Title: "deep work", Start: 540, Length: 120},
			{Title: "standup", Start: 665, Length: 15},
			{Title: "review", Start: 840, Length: 60},
		}},
		{Label: "Tue", Intervals: []timeline.Interval{
			{Title: "standup", Start: 665, Length: 15},
			{Title: "deep work", Start: 690, Length: 150},
			{Title: "1:1", Start: 900, Length: 30},
		}},
		{Label: "Wed", Intervals: []timeline.Interval{
			{Title: "deep work", Start: 555, Length: 105},
			{Title: "review", Start: 780, Length: 45},
			{Title: "planning", Start: 960, Length: 60},
		}},
	}
}
