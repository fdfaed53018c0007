package services

import (
	"testing"
	"time"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func intPtr(n int) *int { return &n }

func sampleFlares() []models.FlareRecord {
	return []models.FlareRecord{
		{ObservationDate: date(2011, 6, 15), XClassFlares: 0, MClassFlares: 1, CClassFlares: 3, SunspotCount: 40, FlareOccurred: 1, SolarCyclePhase: "Rising", MagneticComplexity: "Beta"},
		{ObservationDate: date(2012, 3, 10), XClassFlares: 2, MClassFlares: 0, CClassFlares: 1, SunspotCount: 120, FlareOccurred: 1, SolarCyclePhase: "Peak", MagneticComplexity: "Delta"},
		{ObservationDate: date(2013, 9, 1), XClassFlares: 0, MClassFlares: 0, CClassFlares: 0, SunspotCount: 80, FlareOccurred: 0, SolarCyclePhase: "Peak", MagneticComplexity: "Alpha"},
		{ObservationDate: date(2015, 1, 20), XClassFlares: 0, MClassFlares: 2, CClassFlares: 5, SunspotCount: 60, FlareOccurred: 1, SolarCyclePhase: "Declining", MagneticComplexity: "Gamma"},
		{ObservationDate: date(2018, 11, 5), XClassFlares: 0, MClassFlares: 0, CClassFlares: 0, SunspotCount: 5, FlareOccurred: 0, SolarCyclePhase: "Minimum", MagneticComplexity: "Alpha"},
	}
}

func TestFilterFlaresDateRange(t *testing.T) {
	records := sampleFlares()

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  int
	}{
		{"full range unset", nil, nil, 5},
		{"single year", datePtr(2012, 1, 1), datePtr(2012, 12, 31), 1},
		{"start after end", datePtr(2014, 1, 1), datePtr(2012, 1, 1), 0},
		{"entirely before data", datePtr(2001, 1, 1), datePtr(2002, 1, 1), 0},
		{"entirely after data", datePtr(2030, 1, 1), datePtr(2031, 1, 1), 0},
		{"open start", nil, datePtr(2013, 12, 31), 3},
		{"open end", datePtr(2015, 1, 1), nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFlares(records, models.FilterParams{StartDate: tt.start, EndDate: tt.end})
			if len(got) != tt.want {
				t.Errorf("FilterFlares returned %d rows, want %d", len(got), tt.want)
			}
			for _, r := range got {
				if tt.start != nil && r.ObservationDate.Before(*tt.start) {
					t.Errorf("row %s before start %s", r.ObservationDate, *tt.start)
				}
				if tt.end != nil && r.ObservationDate.After(*tt.end) {
					t.Errorf("row %s after end %s", r.ObservationDate, *tt.end)
				}
			}
		})
	}
}

func TestFilterFlaresMarch2012Example(t *testing.T) {
	records := sampleFlares()
	got := FilterFlares(records, models.FilterParams{
		StartDate: datePtr(2012, 1, 1),
		EndDate:   datePtr(2012, 12, 31),
	})
	if len(got) != 1 {
		t.Fatalf("expected exactly one row for 2012, got %d", len(got))
	}
	if got[0].XClassFlares != 2 {
		t.Errorf("expected the March 2012 row with x_class_flares=2, got %+v", got[0])
	}
}

func TestFilterFlaresSunspotRange(t *testing.T) {
	records := sampleFlares()

	tests := []struct {
		name string
		min  *int
		max  *int
		want int
	}{
		{"unset bounds keep everything", nil, nil, 5},
		{"mid band", intPtr(50), intPtr(100), 2},
		{"min only", intPtr(70), nil, 2},
		{"max only", nil, intPtr(10), 1},
		{"inverted band selects nothing", intPtr(100), intPtr(50), 0},
		{"looser than data clamps harmlessly", intPtr(-100), intPtr(100000), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFlares(records, models.FilterParams{SunspotMin: tt.min, SunspotMax: tt.max})
			if len(got) != tt.want {
				t.Errorf("FilterFlares returned %d rows, want %d", len(got), tt.want)
			}
			for _, r := range got {
				if tt.min != nil && r.SunspotCount < *tt.min {
					t.Errorf("row sunspot_count %d below min %d", r.SunspotCount, *tt.min)
				}
				if tt.max != nil && r.SunspotCount > *tt.max {
					t.Errorf("row sunspot_count %d above max %d", r.SunspotCount, *tt.max)
				}
			}
		})
	}
}

func TestFilterFlaresCategorical(t *testing.T) {
	records := sampleFlares()

	tests := []struct {
		name   string
		params models.FilterParams
		want   int
	}{
		{"single phase", models.FilterParams{CyclePhases: []string{"Peak"}}, 2},
		{"two phases", models.FilterParams{CyclePhases: []string{"Rising", "Minimum"}}, 2},
		{"unknown phase", models.FilterParams{CyclePhases: []string{"Sideways"}}, 0},
		{"magnetic alpha", models.FilterParams{MagneticTypes: []string{"Alpha"}}, 2},
		{"flare days only", models.FilterParams{FlareOccurred: models.FlareOccurredYes}, 3},
		{"quiet days only", models.FilterParams{FlareOccurred: models.FlareOccurredNo}, 2},
		{"any day", models.FilterParams{FlareOccurred: models.FlareOccurredAny}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFlares(records, tt.params)
			if len(got) != tt.want {
				t.Errorf("FilterFlares returned %d rows, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFilterFlaresClassTogglesDoNotDropRows(t *testing.T) {
	records := sampleFlares()
	// Class toggles are display-only: even deselecting everything keeps
	// every row.
	got := FilterFlares(records, models.FilterParams{FlareClasses: []string{}})
	if len(got) != len(records) {
		t.Errorf("class toggles dropped rows: got %d, want %d", len(got), len(records))
	}
}

func TestFilterFlaresIdempotent(t *testing.T) {
	records := sampleFlares()
	params := models.FilterParams{
		StartDate:  datePtr(2012, 1, 1),
		EndDate:    datePtr(2016, 1, 1),
		SunspotMin: intPtr(10),
		SunspotMax: intPtr(150),
	}

	once := FilterFlares(records, params)
	twice := FilterFlares(once, params)
	if len(once) != len(twice) {
		t.Fatalf("filtering is not idempotent: %d then %d rows", len(once), len(twice))
	}
	for i := range once {
		if !once[i].ObservationDate.Equal(twice[i].ObservationDate) {
			t.Errorf("row %d differs after refiltering", i)
		}
	}
}

func TestFilterFlaresDoesNotMutateInput(t *testing.T) {
	records := sampleFlares()
	FilterFlares(records, models.FilterParams{StartDate: datePtr(2013, 1, 1)})
	if len(records) != 5 {
		t.Fatalf("input slice length changed to %d", len(records))
	}
	if !records[0].ObservationDate.Equal(date(2011, 6, 15)) {
		t.Errorf("input slice was reordered or mutated")
	}
}

func sampleSunspots() []models.SunspotRecord {
	return []models.SunspotRecord{
		{Date: date(2011, 1, 1), Year: 2011, Month: 1, TotalSunspots: 30, SolarCycle: 24, SolarCyclePhase: "Rising"},
		{Date: date(2012, 6, 1), Year: 2012, Month: 6, TotalSunspots: 110, SolarCycle: 24, SolarCyclePhase: "Peak"},
		{Date: date(2016, 3, 1), Year: 2016, Month: 3, TotalSunspots: 45, SolarCycle: 24, SolarCyclePhase: "Declining"},
		{Date: date(2019, 12, 1), Year: 2019, Month: 12, TotalSunspots: 2, SolarCycle: 24, SolarCyclePhase: "Minimum"},
	}
}

func TestFilterSunspots(t *testing.T) {
	records := sampleSunspots()

	tests := []struct {
		name   string
		params models.FilterParams
		want   int
	}{
		{"no filters", models.FilterParams{}, 4},
		{"date range", models.FilterParams{StartDate: datePtr(2012, 1, 1), EndDate: datePtr(2017, 1, 1)}, 2},
		{"phase filter", models.FilterParams{CyclePhases: []string{"Peak", "Minimum"}}, 2},
		{"sunspot bounds are flare-table controls", models.FilterParams{SunspotMin: intPtr(1000)}, 4},
		{"start after end", models.FilterParams{StartDate: datePtr(2018, 1, 1), EndDate: datePtr(2012, 1, 1)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSunspots(records, tt.params)
			if len(got) != tt.want {
				t.Errorf("FilterSunspots returned %d rows, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFilterByClassActivity(t *testing.T) {
	records := sampleFlares()

	tests := []struct {
		name    string
		classes []string
		want    int
	}{
		{"any class", nil, 3},
		{"x only", []string{"X"}, 1},
		{"m only", []string{"M"}, 2},
		{"c only", []string{"C"}, 3},
		{"x or m", []string{"X", "M"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByClassActivity(records, tt.classes)
			if len(got) != tt.want {
				t.Errorf("FilterByClassActivity returned %d rows, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFilterSummary(t *testing.T) {
	records := sampleFlares()
	params := models.FilterParams{StartDate: datePtr(2012, 1, 1), EndDate: datePtr(2013, 12, 31)}
	got := FilterSummary(2, 5, params, records)
	want := "2 of 5 observations, 2012-01-01 to 2013-12-31"
	if got != want {
		t.Errorf("FilterSummary = %q, want %q", got, want)
	}

	// Unset dates fall back to the data's own bounds.
	got = FilterSummary(5, 5, models.FilterParams{}, records)
	want = "5 of 5 observations, 2011-06-15 to 2018-11-05"
	if got != want {
		t.Errorf("FilterSummary = %q, want %q", got, want)
	}

	if got := FilterSummary(0, 0, models.FilterParams{}, nil); got != "no observations loaded" {
		t.Errorf("FilterSummary on empty table = %q", got)
	}
}
