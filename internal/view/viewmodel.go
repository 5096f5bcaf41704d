// internal/view/viewmodel.go

package view

import (
	"net/url"

	"github.com/google/safehtml"

	"misinfotracker/internal/domain/record"
	"misinfotracker/internal/service/dashboard"
)

// Chart image routes
const (
	TimeSeriesPath   = "/charts/timeseries.svg"
	DistributionPath = "/charts/distribution.svg"
	HeatmapPath      = "/charts/heatmap.svg"
	FacetParam       = "facet"
)

// Option is one entry of a multi-select control
type Option struct {
	Value    string
	Selected bool
}

// Control is a sidebar multi-select
type Control struct {
	Name    safehtml.Identifier
	Label   string
	Options []Option
}

// Image is one rendered chart image
type Image struct {
	Caption string
	URL     safehtml.URL
}

// Panel is a titled chart with its images and tooltip rows
type Panel struct {
	Title    string
	Images   []Image
	Tooltips []string
}

// DashboardViewModel is everything the page template needs
type DashboardViewModel struct {
	Title           string
	Controls        []Control
	Count           int
	Total           int
	TimeSeries      Panel
	Distribution    Panel
	Heatmap         Panel
	InsightsHeading string
	Insights        []string
}

// ChartURLs are the image locations for one selection, as sent to live clients
type ChartURLs struct {
	TimeSeries   string     `json:"timeseries"`
	Distribution []FacetURL `json:"distribution"`
	Heatmap      string     `json:"heatmap"`
}

// Tooltips holds the tooltip rows of each chart
type Tooltips struct {
	TimeSeries   []string `json:"timeseries"`
	Distribution []string `json:"distribution"`
	Heatmap      []string `json:"heatmap"`
}

// FacetURL locates one distribution facet image
type FacetURL struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// BuildDashboardViewModel lays out one render pass: title, controls, the
// three charts, then the static insights.
func BuildDashboardViewModel(out dashboard.Output) DashboardViewModel {
	urls := BuildChartURLs(out)
	tips := BuildTooltips(out)

	vm := DashboardViewModel{
		Title: dashboard.Title,
		Controls: []Control{
			buildControl(safehtml.IdentifierFromConstant(record.ParamPlatform), "Select Platform:", record.Platforms(), out.Selection.SelectedPlatform),
			buildControl(safehtml.IdentifierFromConstant(record.ParamRegion), "Select Region:", record.Regions(), out.Selection.SelectedRegion),
			buildControl(safehtml.IdentifierFromConstant(record.ParamSentiment), "Select Sentiment:", record.Sentiments(), out.Selection.SelectedSentiment),
		},
		Count:           out.Count,
		Total:           out.Total,
		InsightsHeading: dashboard.InsightsHeading,
		Insights:        dashboard.Insights,
	}

	vm.TimeSeries = Panel{
		Title: out.TimeSeries.Title,
		Images: []Image{{
			Caption: out.TimeSeries.Title,
			URL:     safehtml.URLSanitized(urls.TimeSeries),
		}},
		Tooltips: tips.TimeSeries,
	}

	vm.Distribution = Panel{
		Title:    out.Distribution.Title,
		Tooltips: tips.Distribution,
	}
	for _, f := range urls.Distribution {
		vm.Distribution.Images = append(vm.Distribution.Images, Image{
			Caption: f.Platform,
			URL:     safehtml.URLSanitized(f.URL),
		})
	}

	vm.Heatmap = Panel{
		Title: out.Heatmap.Title,
		Images: []Image{{
			Caption: out.Heatmap.Title,
			URL:     safehtml.URLSanitized(urls.Heatmap),
		}},
		Tooltips: tips.Heatmap,
	}

	return vm
}

// BuildTooltips lists the tooltip text of every plotted element
func BuildTooltips(out dashboard.Output) Tooltips {
	tips := Tooltips{
		TimeSeries:   []string{},
		Distribution: []string{},
		Heatmap:      []string{},
	}
	for _, line := range out.TimeSeries.Lines {
		for _, p := range line.Points {
			tips.TimeSeries = append(tips.TimeSeries, p.Tooltip(line.Platform))
		}
	}
	for _, f := range out.Distribution.Facets {
		for _, b := range f.Bars {
			tips.Distribution = append(tips.Distribution, string(f.Platform)+": "+b.Tooltip())
		}
	}
	for _, c := range out.Heatmap.Cells {
		tips.Heatmap = append(tips.Heatmap, c.Tooltip())
	}
	return tips
}

// BuildChartURLs returns the image URLs for the selection of out. With no
// facets a single facet-less URL is returned, which renders the placeholder.
func BuildChartURLs(out dashboard.Output) ChartURLs {
	query := out.Selection.Values()

	urls := ChartURLs{
		TimeSeries:   withQuery(TimeSeriesPath, query),
		Heatmap:      withQuery(HeatmapPath, query),
		Distribution: []FacetURL{},
	}

	for _, f := range out.Distribution.Facets {
		q := cloneValues(query)
		q.Set(FacetParam, string(f.Platform))
		urls.Distribution = append(urls.Distribution, FacetURL{
			Platform: string(f.Platform),
			URL:      withQuery(DistributionPath, q),
		})
	}
	if len(urls.Distribution) == 0 {
		urls.Distribution = append(urls.Distribution, FacetURL{URL: withQuery(DistributionPath, query)})
	}

	return urls
}

func buildControl[T ~string](name safehtml.Identifier, label string, domain []T, selected func(T) bool) Control {
	c := Control{Name: name, Label: label}
	for _, v := range domain {
		c.Options = append(c.Options, Option{Value: string(v), Selected: selected(v)})
	}
	return c
}

func withQuery(path string, q url.Values) string {
	return path + "?" + q.Encode()
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+1)
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
