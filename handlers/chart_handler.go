// handlers/chart_handler.go
package handlers

import (
	"log"
	"net/http"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/charts"
	"github.com/MUKILAN0608/Solar-Activity-Dashboard/dataset"
	"github.com/MUKILAN0608/Solar-Activity-Dashboard/services"
)

// Sunspot smoothing window for the timeline overlay, in months.
const smoothingWindowMonths = 12

// ChartHandler renders a named chart as PNG for the current filter params.
// Expects GET /charts/{name}.png where {name} is one of:
// sunspot-timeline, flare-activity, flare-distribution, cycle-phase,
// magnetic-complexity.
func ChartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	// Expected path: charts/{name}.png
	name := strings.TrimPrefix(strings.Trim(r.URL.Path, "/"), "charts/")
	name = strings.TrimSuffix(name, ".png")

	params := ParseFilterParams(r)

	var renderable charts.Renderable
	switch name {
	case "sunspot-timeline":
		sunspots := services.FilterSunspots(dataset.Sunspots(), params)
		values := make([]float64, len(sunspots))
		for i, rec := range sunspots {
			values[i] = rec.TotalSunspots
		}
		renderable = charts.SunspotTimeline(sunspots, services.MovingAverage(values, smoothingWindowMonths))
	case "flare-activity":
		flares := services.FilterFlares(dataset.Flares(), params)
		renderable = charts.FlareActivity(flares, params)
	case "flare-distribution":
		flares := services.FilterFlares(dataset.Flares(), params)
		renderable = charts.FlareDistribution(services.FlareClassDistribution(flares, params))
	case "cycle-phase":
		flares := services.FilterFlares(dataset.Flares(), params)
		renderable = charts.CyclePhase(services.CyclePhaseCounts(flares))
	case "magnetic-complexity":
		flares := services.FilterFlares(dataset.Flares(), params)
		renderable = charts.MagneticComplexity(services.MagneticComplexityCounts(flares))
	default:
		respondWithError(w, http.StatusNotFound, "Unknown chart: "+name)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store") // charts change with every filter tweak
	if err := renderable.Render(chart.PNG, w); err != nil {
		// Headers are already gone; all we can do is log.
		log.Printf("ERROR ChartHandler: Failed to render chart %s: %v", name, err)
	}
}
