// charts/categorical.go
package charts

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/models"
)

// Categorical chart size; these render square.
const donutSize = 420

var phaseColors = map[string]drawing.Color{
	"Rising":    {R: 0xFF, G: 0x6B, B: 0x35, A: 0xFF},
	"Peak":      {R: 0xF7, G: 0x93, B: 0x1E, A: 0xFF},
	"Declining": {R: 0xFF, G: 0x8C, B: 0x42, A: 0xFF},
	"Minimum":   {R: 0xF5, G: 0xDE, B: 0xB3, A: 0xFF},
}

var magneticColors = map[string]drawing.Color{
	"Alpha": {R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF},
	"Beta":  {R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF},
	"Gamma": {R: 0xFF, G: 0x8C, B: 0x00, A: 0xFF},
	"Delta": {R: 0xFF, G: 0x45, B: 0x00, A: 0xFF},
}

func distributionColor(label string) drawing.Color {
	switch label {
	case "X-Class":
		return colorXClass
	case "M-Class":
		return colorMClass
	case "C-Class":
		return colorCClass
	}
	return chart.ColorAlternateGray
}

func chartValues(counts []models.CategoryCount, colors map[string]drawing.Color) []chart.Value {
	values := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		col, ok := colors[c.Label]
		if !ok {
			col = distributionColor(c.Label)
		}
		values = append(values, chart.Value{
			Label: c.Label,
			Value: c.Count,
			Style: chart.Style{FillColor: col},
		})
	}
	return values
}

// FlareDistribution builds the flare-class donut from the per-class
// totals. Classes with zero flares are already omitted upstream; an
// empty distribution (all classes disabled, or no matching rows) renders
// the placeholder.
func FlareDistribution(counts []models.CategoryCount) Renderable {
	if len(counts) == 0 {
		return Placeholder("Flare Class Distribution")
	}
	return &chart.DonutChart{
		Title:  "Flare Class Distribution",
		Width:  donutSize,
		Height: donutSize,
		Values: chartValues(counts, nil),
	}
}

// CyclePhase builds the solar cycle phase pie over filtered observations.
func CyclePhase(counts []models.CategoryCount) Renderable {
	if len(counts) == 0 {
		return Placeholder("Solar Cycle Phases")
	}
	return &chart.PieChart{
		Title:  "Solar Cycle Phases",
		Width:  donutSize,
		Height: donutSize,
		Values: chartValues(counts, phaseColors),
	}
}

// MagneticComplexity builds the magnetic complexity donut over filtered
// observations.
func MagneticComplexity(counts []models.CategoryCount) Renderable {
	if len(counts) == 0 {
		return Placeholder("Magnetic Complexity")
	}
	return &chart.DonutChart{
		Title:  "Magnetic Complexity",
		Width:  donutSize,
		Height: donutSize,
		Values: chartValues(counts, magneticColors),
	}
}
