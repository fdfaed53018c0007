// models/api_models.go
package models

import "time"

// DatasetMeta is the response body for /api/meta. The UI uses it to
// populate control bounds and category checklists.
type DatasetMeta struct {
	MinDate        string   `json:"min_date"` // "YYYY-MM-DD"
	MaxDate        string   `json:"max_date"`
	SunspotMin     int      `json:"sunspot_min"`
	SunspotMax     int      `json:"sunspot_max"`
	FlareClasses   []string `json:"flare_classes"`
	CyclePhases    []string `json:"cycle_phases"`
	MagneticTypes  []string `json:"magnetic_types"`
	FlareRecords   int      `json:"flare_records"`
	SunspotRecords int      `json:"sunspot_records"`
}

// SummaryMetrics is the response body for /api/summary: the dashboard's
// metric cards computed over the filtered tables.
type SummaryMetrics struct {
	TotalFlares     int     `json:"total_flares"`
	XClassFlares    int     `json:"x_class_flares"`
	MClassFlares    int     `json:"m_class_flares"`
	CClassFlares    int     `json:"c_class_flares"`
	AvgSunspots     float64 `json:"avg_sunspots"`
	MaxFlareIndex   float64 `json:"max_flare_index"`
	ActiveRegions   int     `json:"active_regions"`
	AvgSolarWind    float64 `json:"avg_solar_wind_speed"`
	AvgSolarFlux    float64 `json:"avg_solar_flux"`
	MatchedFlares   int     `json:"matched_flare_records"`
	MatchedSunspots int     `json:"matched_sunspot_records"`
	FilterSummary   string  `json:"filter_summary"`
}

// CorrelationMatrix is the response body for /api/correlation.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"` // row-major, Values[i][j] = corr(Columns[i], Columns[j])
}

// CategoryCount is one slice of a categorical breakdown (cycle phase,
// magnetic complexity, flare class distribution).
type CategoryCount struct {
	Label string  `json:"label"`
	Count float64 `json:"count"`
}

// RefreshResponse is returned by the admin refresh endpoint.
type RefreshResponse struct {
	Dataset     string    `json:"dataset"`
	Records     int       `json:"records"`
	RefreshedAt time.Time `json:"refreshed_at"`
	Message     string    `json:"message"`
}
