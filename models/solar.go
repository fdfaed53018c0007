// models/solar.go
package models

import "time"

// CSVDateLayout is the date format used by both cleaned CSV datasets.
const CSVDateLayout = "2006-01-02"

// FlareRecord represents one daily observation row from solar_flare_data_cleaned.csv.
// CSV tags EXACTLY match the headers of the cleaned dataset.
type FlareRecord struct {
	// ObservationDate is parsed from RawObservationDate by the loader;
	// rows whose date fails to parse are skipped.
	ObservationDate    time.Time `csv:"-" json:"observation_date"`
	RawObservationDate string    `csv:"observation_date" json:"-"`

	XClassFlares       int     `csv:"x_class_flares" json:"x_class_flares"`
	MClassFlares       int     `csv:"m_class_flares" json:"m_class_flares"`
	CClassFlares       int     `csv:"c_class_flares" json:"c_class_flares"`
	SunspotCount       int     `csv:"sunspot_count" json:"sunspot_count"`
	FlareOccurred      int     `csv:"flare_occurred" json:"flare_occurred"` // 0 or 1
	FlareIndex         float64 `csv:"flare_index" json:"flare_index"`
	RegionID           string  `csv:"region_id" json:"region_id"`
	SolarCyclePhase    string  `csv:"solar_cycle_phase" json:"solar_cycle_phase"`     // Rising, Peak, Declining, Minimum
	MagneticComplexity string  `csv:"magnetic_complexity" json:"magnetic_complexity"` // Alpha, Beta, Gamma, Delta
	AvgSolarWindSpeed  float64 `csv:"avg_solar_wind_speed" json:"avg_solar_wind_speed"`
	SolarFlux          float64 `csv:"solar_flux" json:"solar_flux"`
}

// TotalFlares returns the summed flare count across all three classes.
func (r FlareRecord) TotalFlares() int {
	return r.XClassFlares + r.MClassFlares + r.CClassFlares
}

// FlareCount returns the count for a single class ("X", "M" or "C").
// Unknown class names return 0.
func (r FlareRecord) FlareCount(class string) int {
	switch class {
	case FlareClassX:
		return r.XClassFlares
	case FlareClassM:
		return r.MClassFlares
	case FlareClassC:
		return r.CClassFlares
	}
	return 0
}

// SunspotRecord represents one monthly row from sunspot_activity_cleaned.csv.
type SunspotRecord struct {
	// Date is derived at load time as the first day of (Year, Month), UTC.
	Date time.Time `csv:"-" json:"date"`

	Year            int     `csv:"year" json:"year"`
	Month           int     `csv:"month" json:"month"`
	TotalSunspots   float64 `csv:"total_sunspots" json:"total_sunspots"`
	SolarCycle      int     `csv:"solar_cycle" json:"solar_cycle"`
	SolarCyclePhase string  `csv:"solar_cycle_phase" json:"solar_cycle_phase"`
	SolarFlux       float64 `csv:"solar_flux" json:"solar_flux"`
}

// Flare class identifiers as used in filter toggles and chart series.
const (
	FlareClassX = "X"
	FlareClassM = "M"
	FlareClassC = "C"
)

// AllFlareClasses lists the classes in descending intensity order.
var AllFlareClasses = []string{FlareClassX, FlareClassM, FlareClassC}

// AllCyclePhases lists the solar cycle phase labels present in the datasets.
var AllCyclePhases = []string{"Rising", "Peak", "Declining", "Minimum"}

// AllMagneticTypes lists the magnetic complexity labels present in the flare dataset.
var AllMagneticTypes = []string{"Alpha", "Beta", "Gamma", "Delta"}
