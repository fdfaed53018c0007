// charts/charts_test.go
package charts

import (
	"bytes"
	"testing"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/models"
)

func day(s string) time.Time {
	t, err := time.Parse(models.CSVDateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleFlares() []models.FlareRecord {
	return []models.FlareRecord{
		{ObservationDate: day("2012-03-10"), XClassFlares: 1, MClassFlares: 2, CClassFlares: 4, SunspotCount: 120},
		{ObservationDate: day("2012-03-11"), CClassFlares: 1, SunspotCount: 110},
		{ObservationDate: day("2012-03-12"), MClassFlares: 1, SunspotCount: 95},
	}
}

func sampleSunspots() []models.SunspotRecord {
	return []models.SunspotRecord{
		{Date: day("2012-01-01"), TotalSunspots: 80, SolarFlux: 120.5},
		{Date: day("2012-02-01"), TotalSunspots: 95, SolarFlux: 131.2},
		{Date: day("2012-03-01"), TotalSunspots: 110, SolarFlux: 140.0},
	}
}

// renderPNG renders a built chart to memory and fails the test on error
// or empty output.
func renderPNG(t *testing.T, r Renderable) {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Render(chart.PNG, &buf); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("Render produced no output")
	}
}

// isPlaceholder reports whether the builder fell back to the annotated
// empty chart.
func isPlaceholder(r Renderable) bool {
	ch, ok := r.(*chart.Chart)
	if !ok {
		return false
	}
	for _, s := range ch.Series {
		if _, ok := s.(chart.AnnotationSeries); ok {
			return true
		}
	}
	return false
}

func TestSunspotTimeline(t *testing.T) {
	tests := []struct {
		name            string
		records         []models.SunspotRecord
		smoothed        []float64
		wantPlaceholder bool
	}{
		{name: "no records", records: nil, wantPlaceholder: true},
		{name: "with records", records: sampleSunspots()},
		{name: "with overlay", records: sampleSunspots(), smoothed: []float64{80, 87.5, 95}},
		{name: "single record", records: sampleSunspots()[:1]},
		{
			name:    "mismatched overlay skipped",
			records: sampleSunspots(), smoothed: []float64{80},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := SunspotTimeline(tc.records, tc.smoothed)
			if got := isPlaceholder(r); got != tc.wantPlaceholder {
				t.Fatalf("isPlaceholder = %v, want %v", got, tc.wantPlaceholder)
			}
			renderPNG(t, r)
		})
	}
}

func TestFlareActivity(t *testing.T) {
	none := []string{}
	tests := []struct {
		name            string
		records         []models.FlareRecord
		params          models.FilterParams
		wantPlaceholder bool
		wantSeries      int
	}{
		{name: "no records", records: nil, wantPlaceholder: true},
		{name: "all classes", records: sampleFlares(), wantSeries: 3},
		{
			name:    "single class",
			records: sampleFlares(),
			params:     models.FilterParams{FlareClasses: []string{models.FlareClassX}},
			wantSeries: 1,
		},
		{
			name:            "all classes disabled",
			records:         sampleFlares(),
			params:          models.FilterParams{FlareClasses: none},
			wantPlaceholder: true,
		},
		{name: "single record", records: sampleFlares()[:1], wantSeries: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := FlareActivity(tc.records, tc.params)
			if got := isPlaceholder(r); got != tc.wantPlaceholder {
				t.Fatalf("isPlaceholder = %v, want %v", got, tc.wantPlaceholder)
			}
			if !tc.wantPlaceholder {
				ch := r.(*chart.Chart)
				if len(ch.Series) != tc.wantSeries {
					t.Fatalf("got %d series, want %d", len(ch.Series), tc.wantSeries)
				}
			}
			renderPNG(t, r)
		})
	}
}

// A filter can match only zero-flare days; the chart must still render
// with a flat line rather than fail on a degenerate axis range.
func TestFlareActivityAllZeroCounts(t *testing.T) {
	records := []models.FlareRecord{
		{ObservationDate: day("2013-09-01"), SunspotCount: 40},
		{ObservationDate: day("2013-09-02"), SunspotCount: 42},
	}
	r := FlareActivity(records, models.FilterParams{})
	if isPlaceholder(r) {
		t.Fatal("zero-flare days should render a chart, not the placeholder")
	}
	renderPNG(t, r)
}

func TestFlareDistribution(t *testing.T) {
	tests := []struct {
		name            string
		counts          []models.CategoryCount
		wantPlaceholder bool
	}{
		{name: "empty", counts: nil, wantPlaceholder: true},
		{
			name: "all classes",
			counts: []models.CategoryCount{
				{Label: "X-Class", Count: 2},
				{Label: "M-Class", Count: 5},
				{Label: "C-Class", Count: 11},
			},
		},
		{
			name:   "single class",
			counts: []models.CategoryCount{{Label: "C-Class", Count: 4}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := FlareDistribution(tc.counts)
			if got := isPlaceholder(r); got != tc.wantPlaceholder {
				t.Fatalf("isPlaceholder = %v, want %v", got, tc.wantPlaceholder)
			}
			renderPNG(t, r)
		})
	}
}

func TestCyclePhase(t *testing.T) {
	counts := []models.CategoryCount{
		{Label: "Rising", Count: 3},
		{Label: "Peak", Count: 7},
		{Label: "Declining", Count: 2},
	}
	r := CyclePhase(counts)
	if isPlaceholder(r) {
		t.Fatal("expected pie chart, got placeholder")
	}
	renderPNG(t, r)

	if !isPlaceholder(CyclePhase(nil)) {
		t.Fatal("expected placeholder for empty counts")
	}
}

func TestMagneticComplexity(t *testing.T) {
	counts := []models.CategoryCount{
		{Label: "Alpha", Count: 10},
		{Label: "Beta", Count: 6},
		{Label: "Delta", Count: 1},
	}
	r := MagneticComplexity(counts)
	if isPlaceholder(r) {
		t.Fatal("expected donut chart, got placeholder")
	}
	renderPNG(t, r)

	if !isPlaceholder(MagneticComplexity(nil)) {
		t.Fatal("expected placeholder for empty counts")
	}
}

func TestPlaceholderRenders(t *testing.T) {
	renderPNG(t, Placeholder("Test Chart"))
}

func TestPadSeries(t *testing.T) {
	times := []time.Time{day("2012-03-10")}
	values := []float64{5}

	pt, pv := padSeries(times, values)
	if len(pt) != 2 || len(pv) != 2 {
		t.Fatalf("got %d/%d points, want 2/2", len(pt), len(pv))
	}
	if !pt[1].After(pt[0]) {
		t.Fatal("padded x-value must come after the original")
	}
	if pv[0] != pv[1] {
		t.Fatalf("padded y-value changed: %v vs %v", pv[0], pv[1])
	}

	// Two or more points pass through untouched.
	times = append(times, day("2012-03-11"))
	values = append(values, 7)
	pt, pv = padSeries(times, values)
	if len(pt) != 2 || pv[1] != 7 {
		t.Fatal("multi-point series must not be modified")
	}
}
