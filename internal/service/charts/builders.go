// internal/service/charts/builders.go

package charts

import (
	"slices"
	"time"

	"misinfotracker/internal/domain/record"
)

// scoreAgg accumulates the running sum of one group
type scoreAgg struct {
	count int
	sum   float64
}

func (a *scoreAgg) add(v float64) {
	a.count++
	a.sum += v
}

func (a scoreAgg) mean() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

type dayKey struct {
	day      time.Time
	platform record.Platform
}

// TimeSeries groups the view by (day, platform) and averages misinfo_score.
// Only platforms present in the view get a line; days without records for a
// platform contribute no point.
func TimeSeries(view []record.Record) TimeSeriesChart {
	chart := TimeSeriesChart{
		Title: TimeSeriesTitle,
		Size:  Size{Width: 600, Height: 300},
		Lines: []Line{},
	}

	groups := make(map[dayKey]*scoreAgg)
	days := make(map[record.Platform][]time.Time)
	for _, r := range view {
		key := dayKey{day: r.Timestamp, platform: r.Platform}
		agg, ok := groups[key]
		if !ok {
			agg = &scoreAgg{}
			groups[key] = agg
			days[r.Platform] = append(days[r.Platform], r.Timestamp)
		}
		agg.add(r.MisinfoScore)
	}

	for _, p := range record.Platforms() {
		platformDays, ok := days[p]
		if !ok {
			continue
		}
		slices.SortFunc(platformDays, func(a, b time.Time) int { return a.Compare(b) })

		line := Line{Platform: p, Points: make([]TimePoint, 0, len(platformDays))}
		for _, day := range platformDays {
			agg := groups[dayKey{day: day, platform: p}]
			line.Points = append(line.Points, TimePoint{
				Timestamp: day,
				Mean:      agg.mean(),
				Count:     agg.count,
			})
		}
		chart.Lines = append(chart.Lines, line)
	}

	return chart
}

// Distribution counts the view per (sentiment, platform). Each platform present
// becomes a facet; every facet carries every sentiment present in the view so
// sparse combinations show up as zero-height bars.
func Distribution(view []record.Record) DistributionChart {
	chart := DistributionChart{
		Title:  DistributionTitle,
		Size:   Size{Width: 150, Height: 300},
		Facets: []Facet{},
	}

	counts := make(map[record.Platform]map[record.Sentiment]int)
	sentimentsSeen := make(map[record.Sentiment]bool)
	for _, r := range view {
		if counts[r.Platform] == nil {
			counts[r.Platform] = make(map[record.Sentiment]int)
		}
		counts[r.Platform][r.Sentiment]++
		sentimentsSeen[r.Sentiment] = true
	}

	for _, p := range record.Platforms() {
		perSentiment, ok := counts[p]
		if !ok {
			continue
		}
		facet := Facet{Platform: p, Bars: []Bar{}}
		for _, s := range record.Sentiments() {
			if !sentimentsSeen[s] {
				continue
			}
			n := perSentiment[s]
			facet.Bars = append(facet.Bars, Bar{Sentiment: s, Count: n})
			chart.MaxCount = max(chart.MaxCount, n)
		}
		chart.Facets = append(chart.Facets, facet)
	}

	return chart
}

type cellKey struct {
	platform record.Platform
	region   record.Region
}

// Heatmap counts the view per (platform, region). The axes hold the platforms
// and regions present in the view; every combination gets a cell.
func Heatmap(view []record.Record) HeatmapChart {
	chart := HeatmapChart{
		Title:     HeatmapTitle,
		Size:      Size{Width: 300, Height: 300},
		Platforms: []record.Platform{},
		Regions:   []record.Region{},
		Cells:     []Cell{},
	}

	counts := make(map[cellKey]int)
	platformsSeen := make(map[record.Platform]bool)
	regionsSeen := make(map[record.Region]bool)
	for _, r := range view {
		counts[cellKey{platform: r.Platform, region: r.Region}]++
		platformsSeen[r.Platform] = true
		regionsSeen[r.Region] = true
	}

	for _, p := range record.Platforms() {
		if platformsSeen[p] {
			chart.Platforms = append(chart.Platforms, p)
		}
	}
	for _, r := range record.Regions() {
		if regionsSeen[r] {
			chart.Regions = append(chart.Regions, r)
		}
	}

	for _, r := range chart.Regions {
		for _, p := range chart.Platforms {
			n := counts[cellKey{platform: p, region: r}]
			chart.Cells = append(chart.Cells, Cell{Platform: p, Region: r, Count: n})
			chart.Max = max(chart.Max, n)
		}
	}

	return chart
}
