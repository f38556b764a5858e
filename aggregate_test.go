package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregateSumsSameWeek(t *testing.T) {
	records := []AssignmentRecord{
		{Consultant: "Bob", Project: "A", Effort: 30, Start: d(t, "2024-01-08"), End: d(t, "2024-01-14")},
		{Consultant: "Bob", Project: "B", Effort: 40, Start: d(t, "2024-01-08"), End: d(t, "2024-01-14")},
	}

	out := Aggregate(SegmentRecords(records, ModeClipped))
	require.Len(t, out, 1)
	require.Equal(t, "Bob", out[0].Consultant)
	require.Equal(t, 70.0, out[0].EffortTotal)
	require.Equal(t, "A, B", out[0].ProjectsLabel)
}

func TestAggregateLabelIsSortedAndDeduped(t *testing.T) {
	base := WeekSegment{
		Consultant:  "Bob",
		WeekStart:   d(t, "2024-01-08"),
		PeriodStart: d(t, "2024-01-08"),
		PeriodEnd:   d(t, "2024-01-14"),
		Effort:      10,
	}

	zulu, alpha, mike := base, base, base
	zulu.Project = "Zulu"
	alpha.Project = "Alpha"
	mike.Project = "Mike"

	// input order must not matter, and repeated projects show up once
	out := Aggregate([]WeekSegment{zulu, alpha, mike, alpha})
	require.Len(t, out, 1)
	require.Equal(t, "Alpha, Mike, Zulu", out[0].ProjectsLabel)
	require.Equal(t, 40.0, out[0].EffortTotal)

	reversed := Aggregate([]WeekSegment{alpha, mike, zulu, alpha})
	require.Equal(t, out, reversed)
}

func TestAggregateKeepsDifferentPeriodsApart(t *testing.T) {
	segs := []WeekSegment{
		{Consultant: "Bob", Project: "A", WeekStart: d(t, "2024-01-08"), PeriodStart: d(t, "2024-01-08"), PeriodEnd: d(t, "2024-01-14"), Effort: 30},
		{Consultant: "Bob", Project: "B", WeekStart: d(t, "2024-01-08"), PeriodStart: d(t, "2024-01-10"), PeriodEnd: d(t, "2024-01-14"), Effort: 40},
	}

	out := Aggregate(segs)
	require.Len(t, out, 2, "different periods inside a week stay separate bars")
}

func TestAggregateKeysOnSkill(t *testing.T) {
	base := WeekSegment{
		Consultant:  "Bob",
		Project:     "A",
		WeekStart:   d(t, "2024-01-08"),
		PeriodStart: d(t, "2024-01-08"),
		PeriodEnd:   d(t, "2024-01-14"),
		Effort:      25,
	}
	golang, sql := base, base
	golang.Skill = "Go"
	sql.Skill = "SQL"

	out := Aggregate([]WeekSegment{golang, sql})
	require.Len(t, out, 2)
	require.Equal(t, "Go", out[0].Skill)
	require.Equal(t, "SQL", out[1].Skill)
}

// Effort additivity across whole overlapping records: the aggregated
// total for a consultant-week equals the sum of every record touching it.
func TestAggregateEffortAdditivity(t *testing.T) {
	records := []AssignmentRecord{
		{Consultant: "Cara", Project: "X", Effort: 20, Start: d(t, "2024-01-01"), End: d(t, "2024-01-21")},
		{Consultant: "Cara", Project: "Y", Effort: 30, Start: d(t, "2024-01-08"), End: d(t, "2024-01-14")},
		{Consultant: "Cara", Project: "Z", Effort: 50, Start: d(t, "2024-01-08"), End: d(t, "2024-01-14")},
	}

	out := Aggregate(SegmentRecords(records, ModeClipped))

	totals := map[string]float64{}
	for _, seg := range out {
		totals[seg.WeekStart.Format(dateFormat)] += seg.EffortTotal
	}
	require.Equal(t, 20.0, totals["2024-01-01"])
	require.Equal(t, 100.0, totals["2024-01-08"])
	require.Equal(t, 20.0, totals["2024-01-15"])
}

func TestAggregateOutputOrderIsStable(t *testing.T) {
	segs := []WeekSegment{
		{Consultant: "Zoe", Project: "A", WeekStart: d(t, "2024-01-08"), PeriodStart: d(t, "2024-01-08"), PeriodEnd: d(t, "2024-01-14")},
		{Consultant: "Ann", Project: "A", WeekStart: d(t, "2024-01-15"), PeriodStart: d(t, "2024-01-15"), PeriodEnd: d(t, "2024-01-21")},
		{Consultant: "Ann", Project: "A", WeekStart: d(t, "2024-01-08"), PeriodStart: d(t, "2024-01-08"), PeriodEnd: d(t, "2024-01-14")},
	}

	out := Aggregate(segs)
	require.Len(t, out, 3)
	require.Equal(t, "Ann", out[0].Consultant)
	require.Equal(t, d(t, "2024-01-08"), out[0].WeekStart)
	require.Equal(t, "Ann", out[1].Consultant)
	require.Equal(t, d(t, "2024-01-15"), out[1].WeekStart)
	require.Equal(t, "Zoe", out[2].Consultant)
}
