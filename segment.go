package main

import "time"

// mondayOf returns the Monday of the week containing d.
func mondayOf(d time.Time) time.Time {
	offset := int(d.Weekday()) - 1
	if d.Weekday() == time.Sunday {
		offset = 6
	}
	return d.AddDate(0, 0, -offset)
}

// SegmentRecord cuts one assignment into weekly segments, ordered by week.
//
// In clipped mode the first and last segment keep the assignment's real
// start and end dates; middle weeks run Monday..Sunday. In full-week mode
// every segment covers the whole Monday..Sunday week the assignment
// touches. Either way each segment carries the record's full effort value:
// effort is a rate, not a total to spread across weeks.
//
// A record with Start after End yields no segments.
func SegmentRecord(rec AssignmentRecord, mode SegmentMode) []WeekSegment {
	var segments []WeekSegment

	cursor := rec.Start
	for !cursor.After(rec.End) {
		weekStart := mondayOf(cursor)
		weekEnd := weekStart.AddDate(0, 0, 6)

		periodStart := maxDate(cursor, weekStart)
		periodEnd := minDate(rec.End, weekEnd)
		if mode == ModeFullWeek {
			periodStart = weekStart
			periodEnd = weekEnd
		}

		segments = append(segments, WeekSegment{
			Consultant:  rec.Consultant,
			Project:     rec.Project,
			Skill:       rec.Skill,
			WeekStart:   weekStart,
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
			Effort:      rec.Effort,
		})

		cursor = weekEnd.AddDate(0, 0, 1)
	}

	return segments
}

// SegmentRecords segments a whole batch, preserving record order.
func SegmentRecords(records []AssignmentRecord, mode SegmentMode) []WeekSegment {
	var segments []WeekSegment
	for _, rec := range records {
		segments = append(segments, SegmentRecord(rec, mode)...)
	}
	return segments
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
