// internal/adapter/svg/renderer.go

package svg

import (
	"fmt"
	"io"
	"strconv"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"misinfotracker/internal/domain/record"
	"misinfotracker/internal/service/charts"
)

// NoDataMessage is drawn in place of a chart with nothing to plot
const NoDataMessage = "No data for the current selection"

// ContentType is the media type of every rendering
const ContentType = "image/svg+xml"

// Facet canvases are wider than the nominal facet size so each bar fits its
// sentiment label on one line, and keep a bottom row for those labels.
const (
	facetAxisAllowance = 200
	facetBarWidth      = 80
	facetLabelRow      = 60
)

// TimeSeries renders one line per platform over time
func TimeSeries(w io.Writer, c charts.TimeSeriesChart) error {
	if c.Empty() {
		return Placeholder(w, c.Size, NoDataMessage)
	}

	first, last := c.Span()
	if !last.After(first) {
		// A single day has no width; pad it so the axis range is valid
		first = first.Add(-12 * time.Hour)
		last = last.Add(12 * time.Hour)
	}

	series := make([]chart.Series, 0, len(c.Lines))
	for _, line := range c.Lines {
		xs := make([]time.Time, len(line.Points))
		ys := make([]float64, len(line.Points))
		for i, p := range line.Points {
			xs[i] = p.Timestamp
			ys[i] = p.Mean
		}
		color := platformColor(line.Platform)
		series = append(series, chart.TimeSeries{
			Name: string(line.Platform),
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    2,
			},
			XValues: xs,
			YValues: ys,
		})
	}

	graph := chart.Chart{
		Width:  c.Size.Width,
		Height: c.Size.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "timestamp",
			ValueFormatter: dateFormatter,
			Range: &chart.ContinuousRange{
				Min: chart.TimeToFloat64(first),
				Max: chart.TimeToFloat64(last),
			},
		},
		YAxis: chart.YAxis{
			Name:  "mean(misinfo_score)",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render time series: %w", err)
	}
	return nil
}

// DistributionFacet renders the sentiment bars of one platform facet. Every
// facet shares the chart-wide y range so columns are comparable.
func DistributionFacet(w io.Writer, c charts.DistributionChart, p record.Platform) error {
	size := charts.Size{Width: c.Size.Width + facetAxisAllowance, Height: c.Size.Height}

	facet, ok := c.Facet(p)
	if !ok || len(facet.Bars) == 0 {
		return Placeholder(w, size, NoDataMessage)
	}

	bars := make([]chart.Value, 0, len(facet.Bars))
	for _, b := range facet.Bars {
		color := sentimentColor(b.Sentiment)
		bars = append(bars, chart.Value{
			Label: string(b.Sentiment),
			Value: float64(b.Count),
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		})
	}

	bc := chart.BarChart{
		Title:  string(p),
		Width:  size.Width,
		Height: size.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: facetLabelRow},
		},
		BarWidth:   facetBarWidth,
		BarSpacing: 12,
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(max(c.MaxCount, 1))},
			ValueFormatter: countFormatter,
		},
		Bars: bars,
	}

	if err := bc.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render distribution facet %s: %w", p, err)
	}
	return nil
}

// dateFormatter labels time axis ticks as calendar days
func dateFormatter(v interface{}) string {
	switch typed := v.(type) {
	case time.Time:
		return typed.UTC().Format("2006-01-02")
	case float64:
		return chart.TimeFromFloat64(typed).UTC().Format("2006-01-02")
	default:
		return ""
	}
}

// countFormatter labels count axis ticks without decimals
func countFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return ""
}
