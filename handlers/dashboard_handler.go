// handlers/dashboard_handler.go
package handlers

import (
	"net/http"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/web"
)

// DashboardHandler serves the interactive dashboard page.
// GET /
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(web.DashboardHTML))
}
