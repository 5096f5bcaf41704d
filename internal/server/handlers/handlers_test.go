package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"misinfotracker/internal/adapter/svg"
	"misinfotracker/internal/domain/record"
	"misinfotracker/internal/service/dashboard"
	"misinfotracker/internal/service/sample"
	"misinfotracker/internal/view"
)

func newDashboard() *dashboard.Dashboard {
	return dashboard.NewDashboard(sample.Generate(sample.DefaultSeed))
}

func newDashboardHandler(t *testing.T) *DashboardHandler {
	t.Helper()
	page, err := view.NewPageRenderer()
	require.NoError(t, err)
	return NewDashboardHandler(newDashboard(), page, zap.NewNop())
}

func serve(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPage(t *testing.T) {
	h := newDashboardHandler(t)

	rec := serve(h.Page, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), dashboard.Title)
	assert.Contains(t, rec.Body.String(), `<span id="count">100</span>`)
}

func TestPageRejectsUnknownValue(t *testing.T) {
	h := newDashboardHandler(t)

	rec := serve(h.Page, "/?platform=Myspace")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid selection")
}

func TestChartImages(t *testing.T) {
	h := newDashboardHandler(t)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		target  string
		noData  bool
	}{
		{"timeseries", h.TimeSeriesChart, "/charts/timeseries.svg", false},
		{"timeseries empty", h.TimeSeriesChart, "/charts/timeseries.svg?sentiment=", true},
		{"facet", h.DistributionChart, "/charts/distribution.svg?facet=Reddit", false},
		{"facet not in view", h.DistributionChart, "/charts/distribution.svg?facet=Reddit&platform=&platform=Twitter", true},
		{"no facet", h.DistributionChart, "/charts/distribution.svg", true},
		{"heatmap", h.HeatmapChart, "/charts/heatmap.svg", false},
		{"heatmap empty", h.HeatmapChart, "/charts/heatmap.svg?region=", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.handler, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, svg.ContentType, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "<svg")
			assert.Equal(t, tt.noData, strings.Contains(rec.Body.String(), svg.NoDataMessage))
		})
	}
}

func TestDistributionRejectsUnknownFacet(t *testing.T) {
	h := newDashboardHandler(t)

	rec := serve(h.DistributionChart, "/charts/distribution.svg?facet=Myspace")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIRecords(t *testing.T) {
	h := NewAPIHandler(newDashboard(), zap.NewNop())

	rec := serve(h.GetRecords, "/api/v1/records?platform=&platform=Twitter")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RecordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, sample.RecordCount, resp.Total)
	assert.Equal(t, len(resp.Records), resp.Count)
	assert.Equal(t, []record.Platform{record.Twitter}, resp.Selection.Platforms)
	for _, r := range resp.Records {
		assert.Equal(t, record.Twitter, r.Platform)
	}
}

func TestAPIRecordsEmptySelection(t *testing.T) {
	h := NewAPIHandler(newDashboard(), zap.NewNop())

	rec := serve(h.GetRecords, "/api/v1/records?sentiment=")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RecordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
	assert.NotNil(t, resp.Records)
}

func TestAPICharts(t *testing.T) {
	h := NewAPIHandler(newDashboard(), zap.NewNop())

	rec := serve(h.GetCharts, "/api/v1/charts")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChartsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, sample.RecordCount, resp.Count)
	assert.Equal(t, sample.RecordCount, resp.Heatmap.Total())
	assert.Len(t, resp.URLs.Distribution, len(resp.Distribution.Facets))
	assert.Len(t, resp.Tooltips.Heatmap, len(resp.Heatmap.Cells))
}

func TestAPIDomainsAndHealth(t *testing.T) {
	h := NewAPIHandler(newDashboard(), zap.NewNop())

	rec := serve(h.GetDomains, "/api/v1/domains")
	require.Equal(t, http.StatusOK, rec.Code)
	var domains record.Domains
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &domains))
	assert.Equal(t, record.AllDomains(), domains)

	rec = serve(h.Health, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestSelectionMessage(t *testing.T) {
	sel, err := SelectionMessage{}.selection()
	require.NoError(t, err)
	assert.Equal(t, record.FullSelection(), sel)

	sel, err = SelectionMessage{Platforms: []string{}, Sentiments: []string{"Negative", "Positive"}}.selection()
	require.NoError(t, err)
	assert.Empty(t, sel.Platforms)
	assert.Equal(t, []record.Sentiment{record.Positive, record.Negative}, sel.Sentiments)
	assert.Equal(t, record.Regions(), sel.Regions)

	_, err = SelectionMessage{Regions: []string{"Mars"}}.selection()
	assert.ErrorIs(t, err, record.ErrUnknownValue)
}
