// services/stats_service.go
package services

import (
	"math"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/models"
)

// Summarize computes the dashboard metric cards over already-filtered
// tables. Zero-row input yields zeroed metrics, never an error.
func Summarize(flares []models.FlareRecord, sunspots []models.SunspotRecord, params models.FilterParams, totalFlareRecords int, allFlares []models.FlareRecord) models.SummaryMetrics {
	m := models.SummaryMetrics{
		MatchedFlares:   len(flares),
		MatchedSunspots: len(sunspots),
		FilterSummary:   FilterSummary(len(flares), totalFlareRecords, params, allFlares),
	}

	regions := make(map[string]bool)
	var windSum float64
	for _, r := range flares {
		m.XClassFlares += r.XClassFlares
		m.MClassFlares += r.MClassFlares
		m.CClassFlares += r.CClassFlares
		if r.FlareIndex > m.MaxFlareIndex {
			m.MaxFlareIndex = r.FlareIndex
		}
		if r.RegionID != "" {
			regions[r.RegionID] = true
		}
		windSum += r.AvgSolarWindSpeed
	}
	m.TotalFlares = m.XClassFlares + m.MClassFlares + m.CClassFlares
	m.ActiveRegions = len(regions)
	if len(flares) > 0 {
		m.AvgSolarWind = windSum / float64(len(flares))
	}

	if len(sunspots) > 0 {
		var spotSum, fluxSum float64
		for _, r := range sunspots {
			spotSum += r.TotalSunspots
			fluxSum += r.SolarFlux
		}
		m.AvgSunspots = spotSum / float64(len(sunspots))
		m.AvgSolarFlux = fluxSum / float64(len(sunspots))
	}
	return m
}

// FlareClassDistribution sums flares per enabled class over the filtered
// rows. Classes with a zero total are omitted, matching the original
// donut's behavior of hiding empty slices.
func FlareClassDistribution(flares []models.FlareRecord, params models.FilterParams) []models.CategoryCount {
	var out []models.CategoryCount
	for _, class := range params.EnabledClasses() {
		total := 0
		for _, r := range flares {
			total += r.FlareCount(class)
		}
		if total > 0 {
			out = append(out, models.CategoryCount{Label: class + "-Class", Count: float64(total)})
		}
	}
	return out
}

// CyclePhaseCounts counts filtered flare observations per solar cycle phase,
// in canonical phase order.
func CyclePhaseCounts(flares []models.FlareRecord) []models.CategoryCount {
	return countByLabel(flares, models.AllCyclePhases, func(r models.FlareRecord) string {
		return r.SolarCyclePhase
	})
}

// MagneticComplexityCounts counts filtered flare observations per magnetic
// complexity class, in canonical order.
func MagneticComplexityCounts(flares []models.FlareRecord) []models.CategoryCount {
	return countByLabel(flares, models.AllMagneticTypes, func(r models.FlareRecord) string {
		return r.MagneticComplexity
	})
}

func countByLabel(flares []models.FlareRecord, order []string, label func(models.FlareRecord) string) []models.CategoryCount {
	counts := make(map[string]int)
	for _, r := range flares {
		counts[label(r)]++
	}
	var out []models.CategoryCount
	for _, l := range order {
		if counts[l] > 0 {
			out = append(out, models.CategoryCount{Label: l, Count: float64(counts[l])})
		}
	}
	return out
}

// MovingAverage computes a trailing moving average over values with the
// given window. The first window-1 positions average what has been seen
// so far, so the smoothed series has the same length as the input.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		return append([]float64(nil), values...)
	}
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}

// Numeric flare-table columns included in the correlation matrix, in
// display order.
var correlationColumns = []string{
	"sunspot_count",
	"x_class_flares",
	"m_class_flares",
	"c_class_flares",
	"flare_index",
	"avg_solar_wind_speed",
	"solar_flux",
}

func correlationValue(r models.FlareRecord, column string) float64 {
	switch column {
	case "sunspot_count":
		return float64(r.SunspotCount)
	case "x_class_flares":
		return float64(r.XClassFlares)
	case "m_class_flares":
		return float64(r.MClassFlares)
	case "c_class_flares":
		return float64(r.CClassFlares)
	case "flare_index":
		return r.FlareIndex
	case "avg_solar_wind_speed":
		return r.AvgSolarWindSpeed
	case "solar_flux":
		return r.SolarFlux
	}
	return 0
}

// Correlate builds the Pearson correlation matrix over the numeric flare
// columns. Columns with zero variance correlate as 0 against everything
// except themselves.
func Correlate(flares []models.FlareRecord) models.CorrelationMatrix {
	n := len(correlationColumns)
	matrix := models.CorrelationMatrix{
		Columns: correlationColumns,
		Values:  make([][]float64, n),
	}

	series := make([][]float64, n)
	for i, col := range correlationColumns {
		series[i] = make([]float64, len(flares))
		for j, r := range flares {
			series[i][j] = correlationValue(r, col)
		}
	}

	for i := 0; i < n; i++ {
		matrix.Values[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				matrix.Values[i][j] = 1
				continue
			}
			matrix.Values[i][j] = pearson(series[i], series[j])
		}
	}
	return matrix
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series. Empty input or zero variance yields 0.
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
