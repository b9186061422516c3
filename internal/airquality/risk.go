package airquality

import (
	"fmt"
	"strconv"
)

// ChartTitle and ChartUnit label the concentration chart.
const (
	ChartTitle = "Air Pollutant Levels in Real-Time"
	ChartUnit  = "µg/m³"
)

// ComparisonRow compares one pollutant's measured value with its ideal value.
type ComparisonRow struct {
	Pollutant Pollutant `json:"pollutant"`
	Name      string    `json:"name"`
	Ideal     float64   `json:"ideal"`
	Measured  float64   `json:"measured"`
	Exceeds   bool      `json:"exceeds"`
	Impact    string    `json:"impact"`
}

// IdealDisplay returns the ideal value with its unit.
func (r ComparisonRow) IdealDisplay() string {
	return FormatConcentration(r.Ideal)
}

// MeasuredDisplay returns the measured value with its unit.
func (r ComparisonRow) MeasuredDisplay() string {
	return FormatConcentration(r.Measured)
}

// ChartPoint is one bar of the concentration chart.
type ChartPoint struct {
	Pollutant Pollutant `json:"pollutant"`
	Label     string    `json:"label"`
	Value     float64   `json:"value"`
}

// BuildComparison returns one row per pollutant in declared order. A
// pollutant missing from measured counts as 0. The impact is the
// pollutant's health effect only when the measured value is strictly above
// the ideal value.
func BuildComparison(measured map[Pollutant]float64) []ComparisonRow {
	rows := make([]ComparisonRow, 0, len(declaredOrder))
	for _, ref := range References() {
		value := measured[ref.Pollutant]
		row := ComparisonRow{
			Pollutant: ref.Pollutant,
			Name:      ref.Name,
			Ideal:     ref.Ideal,
			Measured:  value,
			Impact:    SafeImpact,
		}
		if value > ref.Ideal {
			row.Exceeds = true
			row.Impact = ref.HealthEffect
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildChartSeries returns the chart data in the same order as BuildComparison.
func BuildChartSeries(measured map[Pollutant]float64) []ChartPoint {
	series := make([]ChartPoint, 0, len(declaredOrder))
	for _, ref := range References() {
		series = append(series, ChartPoint{
			Pollutant: ref.Pollutant,
			Label:     ref.Name,
			Value:     measured[ref.Pollutant],
		})
	}
	return series
}

// FormatConcentration renders a value as "<value> µg/m³" using the shortest
// exact decimal form.
func FormatConcentration(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + ChartUnit
}

// rgb is a color stop on the chart scale.
type rgb struct{ r, g, b float64 }

// Reversed red-yellow-green: low values green, high values red.
var (
	scaleLow  = rgb{26, 152, 80}
	scaleMid  = rgb{255, 255, 191}
	scaleHigh = rgb{215, 48, 39}
)

// BarColor returns a hex color for value relative to the largest value in
// the series.
func BarColor(value, maxValue float64) string {
	ratio := 0.0
	if maxValue > 0 {
		ratio = value / maxValue
	}
	switch {
	case ratio < 0:
		ratio = 0
	case ratio > 1:
		ratio = 1
	}

	var c rgb
	if ratio <= 0.5 {
		c = lerp(scaleLow, scaleMid, ratio*2)
	} else {
		c = lerp(scaleMid, scaleHigh, (ratio-0.5)*2)
	}
	return fmt.Sprintf("#%02x%02x%02x", int(c.r+0.5), int(c.g+0.5), int(c.b+0.5))
}

// MaxValue returns the largest value in series, or 0 for an empty series.
func MaxValue(series []ChartPoint) float64 {
	maxValue := 0.0
	for _, p := range series {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}
	return maxValue
}

func lerp(a, b rgb, t float64) rgb {
	return rgb{
		r: a.r + (b.r-a.r)*t,
		g: a.g + (b.g-a.g)*t,
		b: a.b + (b.b-a.b)*t,
	}
}
