// internal/service/dashboard/dashboard.go

package dashboard

import (
	"fmt"

	"misinfotracker/internal/domain/record"
	"misinfotracker/internal/service/charts"
	"misinfotracker/internal/service/filter"
)

// Title is the page heading
const Title = "🧠 AI-Driven Social Media Misinformation Tracker"

// InsightsHeading introduces the static insight lines
const InsightsHeading = "🔍 Insights:"

// Insights are fixed copy and are not derived from the filtered view
var Insights = []string{
	"- Twitter shows the highest average misinformation score.",
	"- Negative sentiment is more prevalent on Reddit.",
	"- US and Europe regions show the highest misinformation activity.",
}

// Output is everything one render pass produces for a selection
type Output struct {
	Selection    record.Selection         `json:"selection"`
	Records      []record.Record          `json:"records"`
	Count        int                      `json:"count"`
	Total        int                      `json:"total"`
	TimeSeries   charts.TimeSeriesChart   `json:"timeseries"`
	Distribution charts.DistributionChart `json:"distribution"`
	Heatmap      charts.HeatmapChart      `json:"heatmap"`
}

// Dashboard projects a selection over a fixed record set
type Dashboard struct {
	records []record.Record
}

// NewDashboard creates a dashboard over records generated once at startup.
// The slice is copied so later changes by the caller are not observed.
func NewDashboard(records []record.Record) *Dashboard {
	return &Dashboard{
		records: append([]record.Record(nil), records...),
	}
}

// Total returns the size of the underlying record set
func (d *Dashboard) Total() int {
	return len(d.records)
}

// Render filters the records by sel and builds all three charts.
// Only a selection naming values outside the domains is an error; empty
// selections render empty charts.
func (d *Dashboard) Render(sel record.Selection) (Output, error) {
	if err := sel.Validate(); err != nil {
		return Output{}, fmt.Errorf("invalid selection: %w", err)
	}

	view := filter.Apply(d.records, sel)

	return Output{
		Selection:    sel,
		Records:      view,
		Count:        len(view),
		Total:        len(d.records),
		TimeSeries:   charts.TimeSeries(view),
		Distribution: charts.Distribution(view),
		Heatmap:      charts.Heatmap(view),
	}, nil
}
