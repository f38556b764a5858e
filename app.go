package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nexidian/gocliselect"
)

type App struct {
	out    io.Writer
	errOut io.Writer
}

func NewApp() *App {
	return &App{out: os.Stdout, errOut: os.Stderr}
}

// GenerateParams are the raw CLI inputs for one whole-batch run.
type GenerateParams struct {
	Mode        string
	SkillAware  bool
	From        string
	To          string
	Consultants []string
	SkillFilter []string
	Interactive bool
	OutPath     string
	PushURL     string
	Table       bool
}

// Generate runs the whole pipeline on one input file: load, normalize,
// (expand), segment, aggregate, filter, then hand the result to whichever
// outputs were requested.
func (a *App) Generate(path string, p GenerateParams) error {
	mode := SegmentMode(p.Mode)
	if mode != ModeClipped && mode != ModeFullWeek {
		return fmt.Errorf("invalid segment mode: %s (use %s or %s)", p.Mode, ModeClipped, ModeFullWeek)
	}

	header, rows, err := LoadRows(path)
	if err != nil {
		return err
	}

	records, dropped, err := NormalizeRows(header, rows, p.SkillAware)
	if err != nil {
		return err
	}
	if dropped > 0 {
		fmt.Fprintf(a.errOut, "Dropped %d row(s) with unparsable dates or effort\n", dropped)
	}

	if p.SkillAware {
		records = ExpandSkills(records)
		if len(records) == 0 {
			return fmt.Errorf("no input row carries any skills: %w", ErrEmptyResult)
		}
	}

	segments := Aggregate(SegmentRecords(records, mode))

	spec, err := a.buildFilterSpec(segments, p)
	if err != nil {
		return err
	}
	if spec.Consultants != nil && len(spec.Consultants) == 0 {
		fmt.Fprintln(a.errOut, "Warning: no consultants selected, the chart will be empty")
	}
	if spec.Skills != nil && len(spec.Skills) == 0 {
		fmt.Fprintln(a.errOut, "Warning: no skills selected, the chart will be empty")
	}

	filtered := ApplyFilter(segments, spec)
	if len(filtered) == 0 {
		fmt.Fprintln(a.errOut, "Warning: no segments match the current filters")
		return nil
	}

	data := BuildChartData(filtered, time.Now())

	if p.Table {
		a.printSegments(filtered, p.SkillAware)
	}
	if p.OutPath != "" {
		if err := writeChartFile(p.OutPath, data); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Wrote %d segment(s) to %s\n", len(data.Rows), p.OutPath)
	} else if !p.Table {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return err
		}
	}
	if p.PushURL != "" {
		msg, err := NewRenderClient(p.PushURL).PublishChart(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, msg)
	}

	return nil
}

// buildFilterSpec turns the CLI flags (or the interactive menus) into a
// FilterSpec over the aggregated segments.
func (a *App) buildFilterSpec(segments []AggregatedSegment, p GenerateParams) (FilterSpec, error) {
	var spec FilterSpec

	if p.From != "" {
		from, ok := parseDate(p.From)
		if !ok {
			return FilterSpec{}, fmt.Errorf("invalid start date: %s", p.From)
		}
		spec.From = from
	}
	if p.To != "" {
		to, ok := parseDate(p.To)
		if !ok {
			return FilterSpec{}, fmt.Errorf("invalid end date: %s", p.To)
		}
		spec.To = to
	}

	spec.Consultants = p.Consultants
	spec.Skills = p.SkillFilter

	if p.Interactive {
		spec.Consultants = pickMany("Select consultant(s)", Consultants(segments))
		if p.SkillAware {
			spec.Skills = pickMany("Select skill(s)", Skills(segments))
		}
	}

	return spec, nil
}

const (
	optAll  = "__all__"
	optDone = "__done__"
)

// pickMany runs a small menu loop so the user can select any subset of
// the options, one at a time.
func pickMany(title string, options []string) []string {
	selected := []string{}
	remaining := append([]string{}, options...)

	for len(remaining) > 0 {
		menu := gocliselect.NewMenu(fmt.Sprintf("%s (%d selected)", title, len(selected)))
		menu.AddItem("[ all remaining ]", optAll)
		menu.AddItem("[ done ]", optDone)
		for _, option := range remaining {
			menu.AddItem(option, option)
		}

		choice := menu.Display()
		switch choice {
		case optAll:
			return append(selected, remaining...)
		case optDone, "":
			return selected
		default:
			selected = append(selected, choice)
			remaining = removeString(remaining, choice)
		}
	}
	return selected
}

func removeString(values []string, v string) []string {
	out := values[:0]
	for _, x := range values {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func (a *App) printSegments(segments []AggregatedSegment, skillAware bool) {
	headers := []string{"Consultant", "Week", "Start", "End", "Effort%", "Projects"}
	if skillAware {
		headers = append(headers, "Skill")
	}

	var rows [][]string
	for _, seg := range segments {
		row := []string{
			seg.Consultant,
			seg.WeekStart.Format(dateFormat),
			seg.PeriodStart.Format(dateFormat),
			seg.PeriodEnd.Format(dateFormat),
			fmt.Sprintf("%.2f", seg.EffortTotal),
			seg.ProjectsLabel,
		}
		if skillAware {
			row = append(row, seg.Skill)
		}
		rows = append(rows, row)
	}

	footers := make([]string, len(headers))
	footers[0] = fmt.Sprintf("%d segment(s)", len(segments))
	PrintTable(a.out, headers, rows, footers)
}

// PrintColumns lists the columns the input sheet must (or may) carry.
func (a *App) PrintColumns() {
	headers := []string{"Column", "Required", "Content"}
	rows := [][]string{
		{colConsultant, "yes", "consultant name"},
		{colProject, "yes", "project name"},
		{colEffort, "yes", "effort percentage, numeric"},
		{colStart, "yes", "assignment start date"},
		{colEnd, "yes", "assignment end date"},
		{colCoreSkill, "no", "comma-separated core skills"},
		{colOtherSkills, "no", "comma-separated other skills"},
	}
	PrintTable(a.out, headers, rows, make([]string, len(headers)))
}

func writeChartFile(path string, data ChartData) error {
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(body, '\n'), 0644)
}
