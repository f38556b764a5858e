package main

import (
	"sort"
	"strings"
	"time"
)

type segmentKey struct {
	consultant  string
	skill       string
	weekStart   time.Time
	periodStart time.Time
	periodEnd   time.Time
}

// Aggregate merges weekly segments that share the same consultant, week,
// period and skill: efforts add up and the contributing project names are
// collected into one sorted, deduplicated label. Two projects active in
// the same consultant-week therefore sum, they never overwrite each other.
//
// Output order is fixed (consultant, week, period, skill) so identical
// input always produces identical output.
func Aggregate(segments []WeekSegment) []AggregatedSegment {
	efforts := make(map[segmentKey]float64)
	projects := make(map[segmentKey]map[string]bool)

	for _, seg := range segments {
		key := segmentKey{
			consultant:  seg.Consultant,
			skill:       seg.Skill,
			weekStart:   seg.WeekStart,
			periodStart: seg.PeriodStart,
			periodEnd:   seg.PeriodEnd,
		}
		efforts[key] += seg.Effort
		if projects[key] == nil {
			projects[key] = make(map[string]bool)
		}
		projects[key][seg.Project] = true
	}

	out := make([]AggregatedSegment, 0, len(efforts))
	for key, total := range efforts {
		names := make([]string, 0, len(projects[key]))
		for name := range projects[key] {
			names = append(names, name)
		}
		sort.Strings(names)

		out = append(out, AggregatedSegment{
			Consultant:    key.consultant,
			Skill:         key.skill,
			WeekStart:     key.weekStart,
			PeriodStart:   key.periodStart,
			PeriodEnd:     key.periodEnd,
			EffortTotal:   total,
			ProjectsLabel: strings.Join(names, ", "),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Consultant != b.Consultant {
			return a.Consultant < b.Consultant
		}
		if !a.WeekStart.Equal(b.WeekStart) {
			return a.WeekStart.Before(b.WeekStart)
		}
		if !a.PeriodStart.Equal(b.PeriodStart) {
			return a.PeriodStart.Before(b.PeriodStart)
		}
		if !a.PeriodEnd.Equal(b.PeriodEnd) {
			return a.PeriodEnd.Before(b.PeriodEnd)
		}
		return a.Skill < b.Skill
	})

	return out
}
