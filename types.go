package main

import "time"

// SegmentMode selects how a record's date range is cut into weekly rows.
type SegmentMode string

const (
	// ModeClipped keeps the true start/end of the assignment inside the
	// first and last week it touches.
	ModeClipped SegmentMode = "clipped"
	// ModeFullWeek snaps every row to full Monday..Sunday weeks.
	ModeFullWeek SegmentMode = "fullweek"
)

// AssignmentRecord is one cleaned input row: a consultant working on a
// project over a date range at some effort percentage.
//
// Before skill expansion Skill holds the combined raw skill list from the
// source row; after expansion it holds a single trimmed skill token. It
// stays empty when skill-aware mode is off.
type AssignmentRecord struct {
	Consultant string
	Project    string
	Skill      string
	Start      time.Time
	End        time.Time
	Effort     float64
}

// WeekSegment is the part of one assignment that falls inside one
// calendar week (Monday start).
type WeekSegment struct {
	Consultant  string
	Project     string
	Skill       string
	WeekStart   time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	Effort      float64
}

// AggregatedSegment is one bar of the final chart: every segment sharing
// the same consultant/week/period (and skill, when enabled) summed up.
type AggregatedSegment struct {
	Consultant    string
	Skill         string
	WeekStart     time.Time
	PeriodStart   time.Time
	PeriodEnd     time.Time
	EffortTotal   float64
	ProjectsLabel string
}

// FilterSpec narrows the aggregated segments before rendering.
//
// A nil Consultants or Skills slice means "no selection made, keep
// everything". A non-nil empty slice means the user deselected everything,
// which matches nothing; the caller is expected to warn about that state
// instead of rendering a blank chart.
type FilterSpec struct {
	From        time.Time
	To          time.Time
	Consultants []string
	Skills      []string
}

// GenerateOptions carries the mode switches for one whole-batch run.
type GenerateOptions struct {
	Mode       SegmentMode
	SkillAware bool
}
