// internal/server/handlers/dashboard.go

package handlers

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"misinfotracker/internal/adapter/svg"
	"misinfotracker/internal/domain/record"
	"misinfotracker/internal/view"
)

// DashboardHandler serves the dashboard page and its chart images
type DashboardHandler struct {
	dash   Dashboard
	page   *view.PageRenderer
	logger *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dash Dashboard, page *view.PageRenderer, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dash:   dash,
		page:   page,
		logger: logger,
	}
}

// Page renders the full dashboard for the query selection
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	out, ok := renderSelection(w, r, h.dash, h.logger)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.page.Render(&buf, view.BuildDashboardViewModel(out)); err != nil {
		respondWithError(w, h.logger, http.StatusInternalServerError, "Failed to render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// TimeSeriesChart renders the score line chart
func (h *DashboardHandler) TimeSeriesChart(w http.ResponseWriter, r *http.Request) {
	out, ok := renderSelection(w, r, h.dash, h.logger)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := svg.TimeSeries(&buf, out.TimeSeries); err != nil {
		respondWithError(w, h.logger, http.StatusInternalServerError, "Failed to render chart", err)
		return
	}
	h.writeSVG(w, buf.Bytes())
}

// DistributionChart renders the facet named by the facet parameter. A missing
// or absent facet renders the no-data placeholder.
func (h *DashboardHandler) DistributionChart(w http.ResponseWriter, r *http.Request) {
	var facet record.Platform
	if raw := r.URL.Query().Get(view.FacetParam); raw != "" {
		platforms, err := record.ParsePlatforms([]string{raw})
		if err != nil {
			respondWithError(w, h.logger, http.StatusBadRequest, "Invalid facet", err)
			return
		}
		facet = platforms[0]
	}

	out, ok := renderSelection(w, r, h.dash, h.logger)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := svg.DistributionFacet(&buf, out.Distribution, facet); err != nil {
		respondWithError(w, h.logger, http.StatusInternalServerError, "Failed to render chart", err)
		return
	}
	h.writeSVG(w, buf.Bytes())
}

// HeatmapChart renders the region by platform grid
func (h *DashboardHandler) HeatmapChart(w http.ResponseWriter, r *http.Request) {
	out, ok := renderSelection(w, r, h.dash, h.logger)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := svg.Heatmap(&buf, out.Heatmap); err != nil {
		respondWithError(w, h.logger, http.StatusInternalServerError, "Failed to render chart", err)
		return
	}
	h.writeSVG(w, buf.Bytes())
}

func (h *DashboardHandler) writeSVG(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", svg.ContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
