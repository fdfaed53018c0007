// models/filters.go
package models

import "time"

// FlareOccurred filter states. Both selected (or neither) means no filtering.
const (
	FlareOccurredAny = "any"
	FlareOccurredYes = "yes"
	FlareOccurredNo  = "no"
)

// FilterParams holds the current values of every dashboard control.
// Zero values mean "not set"; the filter service substitutes data bounds
// for unset or out-of-range values rather than rejecting them.
type FilterParams struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	// FlareClasses selects which series appear in chart output. It does
	// NOT drop observation rows. A nil slice means "unset" (all classes);
	// a non-nil empty slice means every class was explicitly deselected.
	FlareClasses []string `json:"flare_classes,omitempty"`

	// CyclePhases / MagneticTypes drop rows whose label is not selected.
	// Empty means all.
	CyclePhases   []string `json:"cycle_phases,omitempty"`
	MagneticTypes []string `json:"magnetic_types,omitempty"`

	SunspotMin *int `json:"sunspot_min,omitempty"`
	SunspotMax *int `json:"sunspot_max,omitempty"`

	// FlareOccurred is one of "any", "yes", "no".
	FlareOccurred string `json:"flare_occurred,omitempty"`
}

// EnabledClasses returns the selected flare classes, defaulting to all
// three when the selection is unset, preserving X > M > C order. An
// explicit empty selection returns nil: every series disabled.
func (p FilterParams) EnabledClasses() []string {
	if p.FlareClasses == nil {
		return AllFlareClasses
	}
	var out []string
	for _, class := range AllFlareClasses {
		for _, sel := range p.FlareClasses {
			if sel == class {
				out = append(out, class)
				break
			}
		}
	}
	return out
}

// ClassEnabled reports whether the given flare class is selected.
func (p FilterParams) ClassEnabled(class string) bool {
	for _, c := range p.EnabledClasses() {
		if c == class {
			return true
		}
	}
	return false
}
