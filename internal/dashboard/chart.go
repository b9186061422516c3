package dashboard

import (
	"strconv"

	"github.com/breatheroute/airreport/internal/airquality"
)

// Chart geometry in SVG user units.
const (
	chartWidth      = 760
	chartHeight     = 400
	chartMarginTop  = 48
	chartMarginLeft = 72
	chartMarginEnd  = 24
	chartMarginBase = 120
	chartTicks      = 4
	barGapRatio     = 0.3
)

// Chart is a laid-out bar chart of pollutant concentrations.
type Chart struct {
	Title  string
	Unit   string
	Width  float64
	Height float64

	PlotLeft   float64
	PlotTop    float64
	PlotRight  float64
	PlotBottom float64

	Bars  []Bar
	Ticks []Tick
}

// Bar is one pollutant's bar.
type Bar struct {
	Label     string
	ValueText string
	Color     string

	X, Y, Width, Height float64

	// Anchor for the rotated axis label.
	LabelX, LabelY float64
}

// Tick is a y-axis gridline.
type Tick struct {
	Y     float64
	Label string
}

// NewChart lays out series as vertical bars scaled to the largest value.
// Bar colors run from green at zero to red at the maximum.
func NewChart(series []airquality.ChartPoint) *Chart {
	c := &Chart{
		Title:      airquality.ChartTitle,
		Unit:       airquality.ChartUnit,
		Width:      chartWidth,
		Height:     chartHeight,
		PlotLeft:   chartMarginLeft,
		PlotTop:    chartMarginTop,
		PlotRight:  chartWidth - chartMarginEnd,
		PlotBottom: chartHeight - chartMarginBase,
	}

	plotWidth := c.PlotRight - c.PlotLeft
	plotHeight := c.PlotBottom - c.PlotTop
	maxValue := airquality.MaxValue(series)

	for i := 0; i <= chartTicks; i++ {
		frac := float64(i) / chartTicks
		c.Ticks = append(c.Ticks, Tick{
			Y:     c.PlotBottom - frac*plotHeight,
			Label: formatTick(frac * maxValue),
		})
	}

	if len(series) == 0 {
		return c
	}

	slot := plotWidth / float64(len(series))
	barWidth := slot * (1 - barGapRatio)
	for i, p := range series {
		height := 0.0
		if maxValue > 0 {
			height = p.Value / maxValue * plotHeight
		}
		x := c.PlotLeft + float64(i)*slot + (slot-barWidth)/2
		c.Bars = append(c.Bars, Bar{
			Label:     p.Label,
			ValueText: airquality.FormatConcentration(p.Value),
			Color:     airquality.BarColor(p.Value, maxValue),
			X:         x,
			Y:         c.PlotBottom - height,
			Width:     barWidth,
			Height:    height,
			LabelX:    x + barWidth/2,
			LabelY:    c.PlotBottom + 14,
		})
	}
	return c
}

func formatTick(v float64) string {
	if v >= 100 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
