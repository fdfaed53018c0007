// handlers/admin_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/services"
)

// RefreshDataHandler handles requests to re-download and reload a dataset.
// Expects POST requests to /api/admin/refresh-data/{dataset}
// where {dataset} is "flares" or "sunspots". With ?check=1 the upstream
// info page is consulted first and an unchanged dataset is not refreshed.
func RefreshDataHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// Expected path: api/admin/refresh-data/{dataset}
	if len(pathParts) < 4 {
		respondWithError(w, http.StatusBadRequest, "Invalid path. Expected /api/admin/refresh-data/{dataset}")
		return
	}
	datasetName := strings.ToLower(pathParts[3])

	switch datasetName {
	case services.SourceFlares, services.SourceSunspots:
	default:
		respondWithError(w, http.StatusBadRequest,
			fmt.Sprintf("Unknown dataset %q. Use %q or %q.", datasetName, services.SourceFlares, services.SourceSunspots))
		return
	}

	var err error
	var resp interface{}
	if r.URL.Query().Get("check") == "1" {
		resp, err = services.RefreshDatasetIfNeeded(datasetName)
	} else {
		resp, err = services.ForceRefreshDataset(datasetName)
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to refresh %s dataset: %v", datasetName, err))
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}
