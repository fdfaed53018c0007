// charts/charts.go
package charts

import (
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/models"
)

// Renderable is the common surface of go-chart's chart types, so handlers
// can render whichever chart a builder returns.
type Renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Chart dimensions. The dashboard lays charts out two per row.
const (
	chartWidth  = 960
	chartHeight = 420
)

// Palette lifted from the dashboard theme.
var (
	colorXClass  = drawing.Color{R: 0xFF, G: 0x45, B: 0x00, A: 0xFF} // orange red
	colorMClass  = drawing.Color{R: 0xFF, G: 0x8C, B: 0x00, A: 0xFF} // dark orange
	colorCClass  = drawing.Color{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF} // orange
	colorSunspot = drawing.Color{R: 0xFF, G: 0x8C, B: 0x00, A: 0xFF}
	colorFlux    = drawing.Color{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF} // gold
	colorSmooth  = drawing.Color{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF} // slate
)

func classColor(class string) drawing.Color {
	switch class {
	case models.FlareClassX:
		return colorXClass
	case models.FlareClassM:
		return colorMClass
	case models.FlareClassC:
		return colorCClass
	}
	return chart.ColorAlternateGray
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2.0,
	}
}

// padSeries guarantees at least two x-values per series; go-chart refuses
// to render a single-point series.
func padSeries(times []time.Time, values []float64) ([]time.Time, []float64) {
	if len(times) != 1 {
		return times, values
	}
	return []time.Time{times[0], times[0].Add(24 * time.Hour)},
		[]float64{values[0], values[0]}
}

// yAxisRange pins the axis to [0, max]. go-chart cannot auto-range an
// axis whose values are all equal (a filter can legitimately select only
// zero-flare days), so the range is always set explicitly.
func yAxisRange(maxValue float64) *chart.ContinuousRange {
	if maxValue <= 0 {
		maxValue = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: maxValue * 1.05}
}

func maxOf(values []float64) float64 {
	var max float64
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}

// SunspotTimeline builds the monthly sunspot chart: total sunspots with an
// area fill, the solar flux series on the secondary axis, and a moving
// average overlay. smoothed must be the same length as records (use
// services.MovingAverage); pass nil to skip the overlay.
func SunspotTimeline(records []models.SunspotRecord, smoothed []float64) Renderable {
	if len(records) == 0 {
		return Placeholder("Sunspot Activity Timeline")
	}

	times := make([]time.Time, len(records))
	spots := make([]float64, len(records))
	flux := make([]float64, len(records))
	for i, r := range records {
		times[i] = r.Date
		spots[i] = r.TotalSunspots
		flux[i] = r.SolarFlux
	}

	spotTimes, spotValues := padSeries(times, spots)
	fluxTimes, fluxValues := padSeries(times, flux)

	fillColor := colorSunspot
	fillColor.A = 0x66
	series := []chart.Series{
		chart.TimeSeries{
			Name:    "Total Sunspots",
			XValues: spotTimes,
			YValues: spotValues,
			Style: chart.Style{
				StrokeColor: colorSunspot,
				StrokeWidth: 2.5,
				FillColor:   fillColor,
			},
		},
		chart.TimeSeries{
			Name:    "Solar Flux (SFU)",
			XValues: fluxTimes,
			YValues: fluxValues,
			YAxis:   chart.YAxisSecondary,
			Style: chart.Style{
				StrokeColor:     colorFlux,
				StrokeWidth:     2.0,
				StrokeDashArray: []float64{6.0, 3.0},
			},
		},
	}

	maxSpots := maxOf(spots)
	if len(smoothed) == len(records) && len(records) > 1 {
		series = append(series, chart.TimeSeries{
			Name:    "12-Month Average",
			XValues: times,
			YValues: smoothed,
			Style:   lineStyle(colorSmooth),
		})
		if m := maxOf(smoothed); m > maxSpots {
			maxSpots = m
		}
	}

	ch := chart.Chart{
		Title:  "Sunspot Activity Timeline",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 36, Left: 16, Right: 16, Bottom: 24},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{
			Name:  "Total Sunspots",
			Range: yAxisRange(maxSpots),
		},
		YAxisSecondary: chart.YAxis{
			Name:  "Solar Flux (SFU)",
			Range: yAxisRange(maxOf(flux)),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return &ch
}

// FlareActivity builds the daily flare count time series, one series per
// enabled class. Disabling every class yields the placeholder, not an
// error.
func FlareActivity(records []models.FlareRecord, params models.FilterParams) Renderable {
	classes := params.EnabledClasses()
	if len(records) == 0 || len(classes) == 0 {
		return Placeholder("Flare Activity")
	}

	times := make([]time.Time, len(records))
	for i, r := range records {
		times[i] = r.ObservationDate
	}

	var series []chart.Series
	var maxCount float64
	for _, class := range classes {
		values := make([]float64, len(records))
		for i, r := range records {
			values[i] = float64(r.FlareCount(class))
		}
		if m := maxOf(values); m > maxCount {
			maxCount = m
		}
		st, sv := padSeries(times, values)
		series = append(series, chart.TimeSeries{
			Name:    class + "-Class",
			XValues: st,
			YValues: sv,
			Style:   lineStyle(classColor(class)),
		})
	}

	ch := chart.Chart{
		Title:  "Flare Activity",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 36, Left: 16, Right: 16, Bottom: 24},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		YAxis: chart.YAxis{
			Name:  "Flares per Day",
			Range: yAxisRange(maxCount),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return &ch
}

// Placeholder renders an empty chart with a "no data" annotation instead
// of failing; an empty filter result is a valid state.
func Placeholder(title string) Renderable {
	ch := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 36, Left: 16, Right: 16, Bottom: 24},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
				Style: chart.Style{
					StrokeColor: drawing.ColorTransparent,
				},
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{
					{XValue: 0.5, YValue: 0.5, Label: "No data available for selected filters"},
				},
			},
		},
	}
	return &ch
}
