package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"
)

type (
	// ChartRow is one bar of the timeline, as the renderer expects it.
	ChartRow struct {
		Consultant    string  `json:"consultant"`
		Skill         string  `json:"skill,omitempty"`
		WeekStart     string  `json:"week_start"`
		PeriodStart   string  `json:"period_start"`
		PeriodEnd     string  `json:"period_end"`
		EffortTotal   float64 `json:"effort_total"`
		ProjectsLabel string  `json:"projects_label"`
	}

	// ChartData is the full renderer payload: the bars plus the static
	// decoration the chart draws around them (weekly gridlines, today
	// marker).
	ChartData struct {
		Rows       []ChartRow `json:"rows"`
		WeekStarts []string   `json:"week_starts"`
		Today      string     `json:"today"`
	}

	Response struct {
		Success bool   `json:"success"`
		Code    string `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
		Data    any    `json:"data,omitempty"`
	}

	PublishResponse struct {
		ChartURL string `json:"chart_url"`
	}
)

// BuildChartData converts aggregated segments into the renderer payload.
// Gridlines are the distinct week starts present in the data, already
// sorted; the rows keep the aggregation order.
func BuildChartData(segments []AggregatedSegment, today time.Time) ChartData {
	rows := make([]ChartRow, 0, len(segments))
	weekSeen := map[string]bool{}
	var weeks []string

	for _, seg := range segments {
		rows = append(rows, ChartRow{
			Consultant:    seg.Consultant,
			Skill:         seg.Skill,
			WeekStart:     seg.WeekStart.Format(dateFormat),
			PeriodStart:   seg.PeriodStart.Format(dateFormat),
			PeriodEnd:     seg.PeriodEnd.Format(dateFormat),
			EffortTotal:   seg.EffortTotal,
			ProjectsLabel: seg.ProjectsLabel,
		})
		week := seg.WeekStart.Format(dateFormat)
		if !weekSeen[week] {
			weekSeen[week] = true
			weeks = append(weeks, week)
		}
	}
	sort.Strings(weeks)

	return ChartData{
		Rows:       rows,
		WeekStarts: weeks,
		Today:      midnight(today).Format(dateFormat),
	}
}

type RenderClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRenderClient(baseURL string) *RenderClient {
	return &RenderClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// sends the chart payload to the rendering service
func (c *RenderClient) PublishChart(data ChartData) (string, error) {
	url := fmt.Sprintf("%s/api/charts", c.baseURL)

	reqBody, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errRes Response
		if err := json.NewDecoder(resp.Body).Decode(&errRes); err != nil {
			return "", fmt.Errorf("error decoding error response: %w", err)
		}
		return "", fmt.Errorf("%s", errRes.Message)
	}

	var apiRes Response
	if err := json.NewDecoder(resp.Body).Decode(&apiRes); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}

	if !apiRes.Success {
		return "", fmt.Errorf("%s", apiRes.Message)
	}

	dataJSON, err := json.Marshal(apiRes.Data)
	if err != nil {
		return "", fmt.Errorf("error re-encoding data: %w", err)
	}

	var res PublishResponse
	if err := json.Unmarshal(dataJSON, &res); err != nil {
		return "", fmt.Errorf("error decoding publish response data: %w", err)
	}
	return fmt.Sprintf("Chart published at %s", res.ChartURL), nil
}
