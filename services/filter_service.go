// services/filter_service.go
package services

import (
	"fmt"
	"time"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/models"
)

// The filter layer is pure: every function here maps (table, params) to a
// new slice and never mutates the input. Unset or malformed control values
// arrive as nil pointers / empty slices and are substituted with the
// data's own bounds, so out-of-range input is never an error. A start
// date after the end date simply selects nothing.

// FilterFlares returns the subset of the flare table matching the filter
// params: date within [start, end], sunspot count within [min, max],
// cycle phase and magnetic complexity within the selected sets, and the
// flare-occurred toggle. Flare class toggles are NOT applied here; they
// only select which series appear in chart output.
func FilterFlares(records []models.FlareRecord, params models.FilterParams) []models.FlareRecord {
	start, end := resolveFlareDateBounds(records, params)
	lo, hi := resolveSunspotBounds(records, params)
	phases := toSet(params.CyclePhases)
	magnetic := toSet(params.MagneticTypes)

	var out []models.FlareRecord
	for _, r := range records {
		if r.ObservationDate.Before(start) || r.ObservationDate.After(end) {
			continue
		}
		if r.SunspotCount < lo || r.SunspotCount > hi {
			continue
		}
		if len(phases) > 0 && !phases[r.SolarCyclePhase] {
			continue
		}
		if len(magnetic) > 0 && !magnetic[r.MagneticComplexity] {
			continue
		}
		switch params.FlareOccurred {
		case models.FlareOccurredYes:
			if r.FlareOccurred == 0 {
				continue
			}
		case models.FlareOccurredNo:
			if r.FlareOccurred != 0 {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// FilterSunspots returns the subset of the monthly sunspot table within
// the date range and selected cycle phases. The sunspot min/max controls
// bound the flare table's daily counts, not the monthly totals, so they
// are not applied here.
func FilterSunspots(records []models.SunspotRecord, params models.FilterParams) []models.SunspotRecord {
	start, end := resolveSunspotDateBounds(records, params)
	phases := toSet(params.CyclePhases)

	var out []models.SunspotRecord
	for _, r := range records {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		if len(phases) > 0 && !phases[r.SolarCyclePhase] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterByClassActivity keeps only rows where at least one of the given
// flare classes recorded a flare. This is a row filter, distinct from the
// display-only class toggles, and is opt-in per view.
func FilterByClassActivity(records []models.FlareRecord, classes []string) []models.FlareRecord {
	if len(classes) == 0 {
		classes = models.AllFlareClasses
	}
	var out []models.FlareRecord
	for _, r := range records {
		for _, class := range classes {
			if r.FlareCount(class) > 0 {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// FilterSummary renders the one-line description shown in the dashboard
// summary bar, e.g. "142 of 5480 observations, 2012-01-01 to 2014-06-30".
func FilterSummary(matched, total int, params models.FilterParams, records []models.FlareRecord) string {
	start, end := resolveFlareDateBounds(records, params)
	if total == 0 {
		return "no observations loaded"
	}
	return fmt.Sprintf("%d of %d observations, %s to %s",
		matched, total,
		start.Format(models.CSVDateLayout), end.Format(models.CSVDateLayout))
}

func resolveFlareDateBounds(records []models.FlareRecord, params models.FilterParams) (time.Time, time.Time) {
	var min, max time.Time
	for i, r := range records {
		if i == 0 || r.ObservationDate.Before(min) {
			min = r.ObservationDate
		}
		if i == 0 || r.ObservationDate.After(max) {
			max = r.ObservationDate
		}
	}
	return pickDate(params.StartDate, min), pickDate(params.EndDate, max)
}

func resolveSunspotDateBounds(records []models.SunspotRecord, params models.FilterParams) (time.Time, time.Time) {
	var min, max time.Time
	for i, r := range records {
		if i == 0 || r.Date.Before(min) {
			min = r.Date
		}
		if i == 0 || r.Date.After(max) {
			max = r.Date
		}
	}
	return pickDate(params.StartDate, min), pickDate(params.EndDate, max)
}

func resolveSunspotBounds(records []models.FlareRecord, params models.FilterParams) (int, int) {
	var min, max int
	for i, r := range records {
		if i == 0 || r.SunspotCount < min {
			min = r.SunspotCount
		}
		if i == 0 || r.SunspotCount > max {
			max = r.SunspotCount
		}
	}
	if params.SunspotMin != nil {
		min = *params.SunspotMin
	}
	if params.SunspotMax != nil {
		max = *params.SunspotMax
	}
	return min, max
}

func pickDate(param *time.Time, fallback time.Time) time.Time {
	if param != nil {
		return *param
	}
	return fallback
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
