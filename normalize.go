package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Canonical source column names. Anything else in the header is ignored.
const (
	colConsultant  = "ConsultantName"
	colProject     = "ProjectName"
	colEffort      = "Efforts_Percentage"
	colStart       = "StartDate"
	colEnd         = "EndDate"
	colCoreSkill   = "CoreSkill"
	colOtherSkills = "OtherSkills"
)

type columnIndex struct {
	consultant int
	project    int
	effort     int
	start      int
	end        int
	coreSkill  int // -1 when the column is absent
	otherSkill int // -1 when the column is absent
}

// mapColumns locates the canonical columns in the header row.
func mapColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}

	idx := columnIndex{coreSkill: -1, otherSkill: -1}
	var missing []string

	require := func(name string, dst *int) {
		i, ok := pos[name]
		if !ok {
			missing = append(missing, name)
			return
		}
		*dst = i
	}
	require(colConsultant, &idx.consultant)
	require(colProject, &idx.project)
	require(colEffort, &idx.effort)
	require(colStart, &idx.start)
	require(colEnd, &idx.end)

	if i, ok := pos[colCoreSkill]; ok {
		idx.coreSkill = i
	}
	if i, ok := pos[colOtherSkills]; ok {
		idx.otherSkill = i
	}

	if len(missing) > 0 {
		return columnIndex{}, &SchemaError{Missing: missing}
	}
	return idx, nil
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"02-Jan-06",
	"Jan 2, 2006",
}

// parseDate accepts the date formats spreadsheets commonly hand us,
// including raw Excel serial numbers, and truncates to midnight UTC.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return midnight(t), true
		}
	}
	// Excel stores dates as days since 1899-12-30.
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		base := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
		return base.AddDate(0, 0, int(serial)), true
	}
	return time.Time{}, false
}

func parseEffort(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// NormalizeRows turns raw spreadsheet rows into assignment records.
//
// Exact-duplicate rows are removed first. Rows whose start date, end date
// or effort cannot be parsed are dropped and counted; dropping every row
// is an error. Start after end is NOT rejected here: such a record simply
// produces no weekly segments later, same as the source data tool.
//
// With skillAware set, each record's Skill carries the combined
// CoreSkill/OtherSkills cell contents for ExpandSkills to split.
func NormalizeRows(header []string, rows [][]string, skillAware bool) ([]AssignmentRecord, int, error) {
	idx, err := mapColumns(header)
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[string]bool, len(rows))
	dropped := 0
	var records []AssignmentRecord

	for _, row := range rows {
		key := strings.Join(row, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true

		start, okStart := parseDate(cell(row, idx.start))
		end, okEnd := parseDate(cell(row, idx.end))
		effort, okEffort := parseEffort(cell(row, idx.effort))
		if !okStart || !okEnd || !okEffort {
			dropped++
			continue
		}

		rec := AssignmentRecord{
			Consultant: strings.TrimSpace(cell(row, idx.consultant)),
			Project:    strings.TrimSpace(cell(row, idx.project)),
			Start:      start,
			End:        end,
			Effort:     effort,
		}
		if skillAware {
			rec.Skill = combineSkillCells(cell(row, idx.coreSkill), cell(row, idx.otherSkill))
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, dropped, fmt.Errorf("all %d input row(s) were dropped: %w", dropped, ErrEmptyResult)
	}
	return records, dropped, nil
}

func combineSkillCells(core, other string) string {
	parts := []string{}
	if strings.TrimSpace(core) != "" {
		parts = append(parts, core)
	}
	if strings.TrimSpace(other) != "" {
		parts = append(parts, other)
	}
	return strings.Join(parts, ",")
}

// ExpandSkills explodes every record into one record per distinct trimmed
// skill token from its combined skill list. Records with no skills at all
// yield nothing, so they disappear from skill-aware output.
func ExpandSkills(records []AssignmentRecord) []AssignmentRecord {
	var out []AssignmentRecord
	for _, rec := range records {
		seen := map[string]bool{}
		for _, token := range strings.Split(rec.Skill, ",") {
			skill := strings.TrimSpace(token)
			if skill == "" || seen[skill] {
				continue
			}
			seen[skill] = true

			expanded := rec
			expanded.Skill = skill
			out = append(out, expanded)
		}
	}
	return out
}
