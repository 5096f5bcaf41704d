// internal/server/handlers/response.go

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"misinfotracker/internal/domain/record"
	"misinfotracker/internal/service/dashboard"
)

// Dashboard renders a selection over the loaded record set
type Dashboard interface {
	Render(sel record.Selection) (dashboard.Output, error)
	Total() int
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, logger *zap.Logger, code int, message string, err error) {
	response := map[string]string{"error": message}

	if err != nil {
		if code >= 500 {
			logger.Error("HTTP error", zap.Int("code", code), zap.String("message", message), zap.Error(err))
		} else {
			response["detail"] = err.Error()
		}
	}

	jsonResponse, _ := json.Marshal(response)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonResponse)
}

// renderSelection parses the query selection of r and renders it. On failure
// the error response has already been written.
func renderSelection(w http.ResponseWriter, r *http.Request, dash Dashboard, logger *zap.Logger) (dashboard.Output, bool) {
	sel, err := record.SelectionFromValues(r.URL.Query())
	if err != nil {
		respondWithError(w, logger, http.StatusBadRequest, "Invalid selection", err)
		return dashboard.Output{}, false
	}

	out, err := dash.Render(sel)
	if err != nil {
		if errors.Is(err, record.ErrUnknownValue) {
			respondWithError(w, logger, http.StatusBadRequest, "Invalid selection", err)
		} else {
			respondWithError(w, logger, http.StatusInternalServerError, "Failed to render dashboard", err)
		}
		return dashboard.Output{}, false
	}

	return out, true
}
