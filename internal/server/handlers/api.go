// internal/server/handlers/api.go

package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"misinfotracker/internal/domain/record"
	"misinfotracker/internal/service/charts"
	"misinfotracker/internal/view"
)

// APIHandler exposes the dashboard data as JSON
type APIHandler struct {
	dash   Dashboard
	logger *zap.Logger
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(dash Dashboard, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		dash:   dash,
		logger: logger,
	}
}

// RecordsResponse is the filtered view of one selection
type RecordsResponse struct {
	Selection record.Selection `json:"selection"`
	Count     int              `json:"count"`
	Total     int              `json:"total"`
	Records   []record.Record  `json:"records"`
}

// ChartsResponse carries the chart specs of one selection with their image
// locations and tooltip rows
type ChartsResponse struct {
	Selection    record.Selection         `json:"selection"`
	Count        int                      `json:"count"`
	TimeSeries   charts.TimeSeriesChart   `json:"timeseries"`
	Distribution charts.DistributionChart `json:"distribution"`
	Heatmap      charts.HeatmapChart      `json:"heatmap"`
	URLs         view.ChartURLs           `json:"urls"`
	Tooltips     view.Tooltips            `json:"tooltips"`
}

// Health reports liveness
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"records": h.dash.Total(),
	})
}

// GetDomains returns the selectable values of each filter
func (h *APIHandler) GetDomains(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, record.AllDomains())
}

// GetRecords returns the records matching the query selection
func (h *APIHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	out, ok := renderSelection(w, r, h.dash, h.logger)
	if !ok {
		return
	}

	respondWithJSON(w, http.StatusOK, RecordsResponse{
		Selection: out.Selection,
		Count:     out.Count,
		Total:     out.Total,
		Records:   out.Records,
	})
}

// GetCharts returns the chart specs for the query selection
func (h *APIHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	out, ok := renderSelection(w, r, h.dash, h.logger)
	if !ok {
		return
	}

	respondWithJSON(w, http.StatusOK, ChartsResponse{
		Selection:    out.Selection,
		Count:        out.Count,
		TimeSeries:   out.TimeSeries,
		Distribution: out.Distribution,
		Heatmap:      out.Heatmap,
		URLs:         view.BuildChartURLs(out),
		Tooltips:     view.BuildTooltips(out),
	})
}
