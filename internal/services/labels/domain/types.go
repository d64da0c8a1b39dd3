// Package domain defines the types and interfaces for the labels service
package domain

import "time"

// Window defines a time range with a start (Since) and end (Until)
type Window struct {
	Since time.Time
	Until time.Time
}

// AfterKey is used for pagination in listing samples
type AfterKey struct {
	CreatedAt time.Time
	PostID    string // uuid
}

// Filters for querying labels and samples
type Filters struct {
	Author        string
	Language      string
	Mixed         *bool
	Version       *int
	MinConfidence float64
}

// LabelWrite represents one detection outcome to be persisted
type LabelWrite struct {
	PostID          string
	CreatedAt       time.Time
	Author          string
	Language        string // headline label; "mixed" when IsMixed
	Primary         string
	Secondary       string // empty unless IsMixed
	IsMixed         bool
	Confidence      float64
	Scripts         map[string]float64 // script breakdown, sums to 1 (or empty)
	DetectorVersion int
}

// Sample is a labeled post with enough context to eyeball the call
type Sample struct {
	PostID          string
	CreatedAt       time.Time
	Author          string
	TextNorm        string
	Language        string
	Primary         string
	Secondary       *string
	IsMixed         bool
	Confidence      float64
	DetectorVersion int
}

// AggByLanguageRow is one row of the per-language aggregate
type AggByLanguageRow struct {
	Language        string
	Posts           int64
	AvgConfidence   float64
	DetectorVersion int
}

// SeriesRow is one (day, language) bucket of the observation series
type SeriesRow struct {
	Day      time.Time
	Language string
	Posts    int64
}
