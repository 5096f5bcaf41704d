// internal/service/charts/model.go

package charts

import (
	"fmt"
	"time"

	"misinfotracker/internal/domain/record"
)

// Chart titles and sizes
const (
	TimeSeriesTitle   = "📊 Average Misinformation Score Over Time"
	DistributionTitle = "🧾 Sentiment Distribution by Platform"
	HeatmapTitle      = "🌎 Heatmap of Misinformation Posts by Region & Platform"
)

// Size is the nominal pixel size of a chart, or of one facet
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TimePoint is the mean score of one (day, platform) group
type TimePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Mean      float64   `json:"mean_misinfo_score"`
	Count     int       `json:"count"`
}

// Line is one platform's series across time
type Line struct {
	Platform record.Platform `json:"platform"`
	Points   []TimePoint     `json:"points"`
}

// TimeSeriesChart plots mean(misinfo_score) per day, one line per platform
type TimeSeriesChart struct {
	Title string `json:"title"`
	Size  Size   `json:"size"`
	Lines []Line `json:"lines"`
}

// Empty reports whether there is nothing to plot
func (c TimeSeriesChart) Empty() bool {
	return len(c.Lines) == 0
}

// Span returns the earliest and latest plotted timestamps
func (c TimeSeriesChart) Span() (time.Time, time.Time) {
	var first, last time.Time
	for _, l := range c.Lines {
		for _, p := range l.Points {
			if first.IsZero() || p.Timestamp.Before(first) {
				first = p.Timestamp
			}
			if last.IsZero() || p.Timestamp.After(last) {
				last = p.Timestamp
			}
		}
	}
	return first, last
}

// Tooltip describes a point the way the chart surfaces it
func (p TimePoint) Tooltip(platform record.Platform) string {
	return fmt.Sprintf("timestamp: %s, platform: %s, mean(misinfo_score): %.2f",
		p.Timestamp.Format("2006-01-02"), platform, p.Mean)
}

// Bar is the record count of one sentiment inside a facet
type Bar struct {
	Sentiment record.Sentiment `json:"sentiment"`
	Count     int              `json:"count"`
}

// Tooltip describes a bar the way the chart surfaces it
func (b Bar) Tooltip() string {
	return fmt.Sprintf("sentiment: %s, count(): %d", b.Sentiment, b.Count)
}

// Facet is one platform column of the distribution chart
type Facet struct {
	Platform record.Platform `json:"platform"`
	Bars     []Bar           `json:"bars"`
}

// DistributionChart counts records per (sentiment, platform), faceted by platform
type DistributionChart struct {
	Title    string  `json:"title"`
	Size     Size    `json:"facet_size"`
	Facets   []Facet `json:"facets"`
	MaxCount int     `json:"max_count"`
}

// Empty reports whether there is nothing to plot
func (c DistributionChart) Empty() bool {
	return len(c.Facets) == 0
}

// Facet returns the facet for a platform
func (c DistributionChart) Facet(p record.Platform) (Facet, bool) {
	for _, f := range c.Facets {
		if f.Platform == p {
			return f, true
		}
	}
	return Facet{}, false
}

// Cell is the record count of one (platform, region) combination
type Cell struct {
	Platform record.Platform `json:"platform"`
	Region   record.Region   `json:"region"`
	Count    int             `json:"count"`
}

// Tooltip describes a cell the way the chart surfaces it
func (c Cell) Tooltip() string {
	return fmt.Sprintf("platform: %s, region: %s, count(): %d", c.Platform, c.Region, c.Count)
}

// HeatmapChart encodes record counts per (platform, region) as color intensity
type HeatmapChart struct {
	Title     string            `json:"title"`
	Size      Size              `json:"size"`
	Platforms []record.Platform `json:"platforms"`
	Regions   []record.Region   `json:"regions"`
	Cells     []Cell            `json:"cells"`
	Max       int               `json:"max"`
}

// Empty reports whether there is nothing to plot
func (c HeatmapChart) Empty() bool {
	return len(c.Cells) == 0
}

// Total sums every cell
func (c HeatmapChart) Total() int {
	total := 0
	for _, cell := range c.Cells {
		total += cell.Count
	}
	return total
}

// Cell returns the cell at (platform, region)
func (c HeatmapChart) Cell(p record.Platform, r record.Region) (Cell, bool) {
	for _, cell := range c.Cells {
		if cell.Platform == p && cell.Region == r {
			return cell, true
		}
	}
	return Cell{}, false
}
