// handlers/api_handler.go
package handlers

import (
	"net/http"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/dataset"
	"github.com/MUKILAN0608/Solar-Activity-Dashboard/models"
	"github.com/MUKILAN0608/Solar-Activity-Dashboard/services"
)

// HealthHandler reports liveness plus loaded row counts.
// GET /api/health
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	meta := dataset.Meta()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "ok",
		"flare_records":   meta.FlareRecords,
		"sunspot_records": meta.SunspotRecords,
	})
}

// MetaHandler returns data bounds and category lists so the UI can
// populate its controls.
// GET /api/meta
func MetaHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, dataset.Meta())
}

// SummaryHandler computes the metric cards for the current filter params.
// GET /api/summary?start=...&end=...&classes=...
func SummaryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	params := ParseFilterParams(r)
	allFlares := dataset.Flares()
	flares := services.FilterFlares(allFlares, params)
	sunspots := services.FilterSunspots(dataset.Sunspots(), params)

	summary := services.Summarize(flares, sunspots, params, len(allFlares), allFlares)
	respondWithJSON(w, http.StatusOK, summary)
}

// FlaresHandler returns filtered flare observations as JSON. With
// active_only=1, rows where none of the enabled classes flared are
// dropped (the row-filter variant of the class toggles).
// GET /api/flares
func FlaresHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	params := ParseFilterParams(r)
	flares := services.FilterFlares(dataset.Flares(), params)
	if r.URL.Query().Get("active_only") == "1" {
		flares = services.FilterByClassActivity(flares, params.EnabledClasses())
	}
	if flares == nil { // Always return an array for JSON, even if empty
		flares = []models.FlareRecord{}
	}
	respondWithJSON(w, http.StatusOK, flares)
}

// SunspotsHandler returns filtered monthly sunspot records as JSON.
// GET /api/sunspots
func SunspotsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	params := ParseFilterParams(r)
	sunspots := services.FilterSunspots(dataset.Sunspots(), params)
	if sunspots == nil {
		sunspots = []models.SunspotRecord{}
	}
	respondWithJSON(w, http.StatusOK, sunspots)
}

// CorrelationHandler returns the Pearson correlation matrix over the
// numeric flare columns of the filtered rows.
// GET /api/correlation
func CorrelationHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	params := ParseFilterParams(r)
	flares := services.FilterFlares(dataset.Flares(), params)
	respondWithJSON(w, http.StatusOK, services.Correlate(flares))
}
