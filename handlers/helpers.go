// handlers/helpers.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/models"
)

// Helper to respond with JSON
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling JSON response: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper to respond with an error
func respondWithError(w http.ResponseWriter, code int, message string) {
	log.Printf("API Error %d: %s", code, message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

// ParseFilterParams reads the shared filter query parameters used by every
// filterable endpoint: start, end (YYYY-MM-DD), classes, phases,
// complexity (comma lists), sunspot_min, sunspot_max, flare_occurred.
// Malformed values are logged and left unset so the filter layer falls
// back to the data's own bounds; they are never a request error.
func ParseFilterParams(r *http.Request) models.FilterParams {
	q := r.URL.Query()
	var params models.FilterParams

	if v := q.Get("start"); v != "" {
		if t, err := time.Parse(models.CSVDateLayout, v); err == nil {
			params.StartDate = &t
		} else {
			log.Printf("Handler: Ignoring malformed 'start' value %q: %v", v, err)
		}
	}
	if v := q.Get("end"); v != "" {
		if t, err := time.Parse(models.CSVDateLayout, v); err == nil {
			params.EndDate = &t
		} else {
			log.Printf("Handler: Ignoring malformed 'end' value %q: %v", v, err)
		}
	}

	// "classes" present but empty is a real state: every class deselected.
	if values, ok := q["classes"]; ok {
		params.FlareClasses = parseClassList(values)
	}
	if values, ok := q["phases"]; ok {
		params.CyclePhases = splitList(values)
	}
	if values, ok := q["complexity"]; ok {
		params.MagneticTypes = splitList(values)
	}

	if v := q.Get("sunspot_min"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.SunspotMin = &n
		} else {
			log.Printf("Handler: Ignoring malformed 'sunspot_min' value %q", v)
		}
	}
	if v := q.Get("sunspot_max"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.SunspotMax = &n
		} else {
			log.Printf("Handler: Ignoring malformed 'sunspot_max' value %q", v)
		}
	}

	switch strings.ToLower(q.Get("flare_occurred")) {
	case "yes", "1":
		params.FlareOccurred = models.FlareOccurredYes
	case "no", "0":
		params.FlareOccurred = models.FlareOccurredNo
	default:
		params.FlareOccurred = models.FlareOccurredAny
	}

	return params
}

// parseClassList normalizes class names to upper case and drops anything
// that is not X, M or C. Always returns a non-nil slice: the parameter
// was present, so an empty result means "none selected".
func parseClassList(values []string) []string {
	out := []string{}
	for _, item := range splitList(values) {
		class := strings.ToUpper(item)
		for _, known := range models.AllFlareClasses {
			if class == known {
				out = append(out, class)
				break
			}
		}
	}
	return out
}

// splitList flattens repeated query parameters and comma-separated values
// into one list, dropping empty entries.
func splitList(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
