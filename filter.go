package main

// ApplyFilter returns the segments passing every active condition: period
// inside the date window (when set) and consultant/skill in the selected
// sets.
//
// Set semantics follow FilterSpec: nil means no selection was made and
// everything passes, an empty non-nil set means everything was deselected
// and nothing passes. The second case is still a valid (empty) result, not
// an error; warning the user about it is the caller's job.
func ApplyFilter(segments []AggregatedSegment, spec FilterSpec) []AggregatedSegment {
	consultants := toSet(spec.Consultants)
	skills := toSet(spec.Skills)

	out := []AggregatedSegment{}
	for _, seg := range segments {
		if !spec.From.IsZero() && seg.PeriodStart.Before(spec.From) {
			continue
		}
		if !spec.To.IsZero() && seg.PeriodEnd.After(spec.To) {
			continue
		}
		if spec.Consultants != nil && !consultants[seg.Consultant] {
			continue
		}
		if spec.Skills != nil && !skills[seg.Skill] {
			continue
		}
		out = append(out, seg)
	}
	return out
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// Consultants lists the distinct consultant names in the aggregated set,
// sorted, for building selection menus.
func Consultants(segments []AggregatedSegment) []string {
	return distinct(segments, func(s AggregatedSegment) string { return s.Consultant })
}

// Skills lists the distinct non-empty skills in the aggregated set, sorted.
func Skills(segments []AggregatedSegment) []string {
	return distinct(segments, func(s AggregatedSegment) string { return s.Skill })
}
