// Package report runs a place-name query through geocoding, weather and air
// quality lookups and assembles the result as plain data for presentation.
package report

import (
	"time"

	"github.com/breatheroute/airreport/internal/airquality"
	"github.com/breatheroute/airreport/internal/geocoding"
	"github.com/breatheroute/airreport/internal/weather"
)

// Errors that stop a report before any panel can be shown.
var (
	ErrEmptyInput          = geocoding.ErrEmptyInput
	ErrLocationNotFound    = geocoding.ErrLocationNotFound
	ErrGeocoderUnavailable = geocoding.ErrProviderUnavailable
)

// Panel names a section of the report.
type Panel string

const (
	PanelLocation   Panel = "location"
	PanelWeather    Panel = "weather"
	PanelAirQuality Panel = "airQuality"
)

// Report is the outcome of one query. Weather and AirQuality are nil when
// their upstream had no usable data.
type Report struct {
	Location    string             `json:"location"`
	Point       geocoding.GeoPoint `json:"point"`
	Weather     *WeatherPanel      `json:"weather,omitempty"`
	AirQuality  *AirQualityPanel   `json:"airQuality,omitempty"`
	Notices     []Notice           `json:"notices,omitempty"`
	GeneratedAt time.Time          `json:"generatedAt"`
}

// WeatherPanel holds the current weather readings.
type WeatherPanel struct {
	Temperature float64           `json:"temperature"` // °C
	Humidity    float64           `json:"humidity"`    // %
	WindSpeed   float64           `json:"windSpeed"`   // m/s
	Condition   string            `json:"condition"`
	Category    weather.Condition `json:"category"`
	Icon        string            `json:"icon"`
	ObservedAt  *time.Time        `json:"observedAt,omitempty"`
}

// AirQualityPanel holds the AQI summary, the per-pollutant comparison and
// the chart series. All three come from the same reading.
type AirQualityPanel struct {
	Level      int                        `json:"level"`
	Label      string                     `json:"label"`
	Category   *airquality.Category       `json:"category,omitempty"`
	Comparison []airquality.ComparisonRow `json:"comparison"`
	Chart      []airquality.ChartPoint    `json:"chart"`
	MeasuredAt *time.Time                 `json:"measuredAt,omitempty"`
}

// Notice explains why a panel was left out.
type Notice struct {
	Panel  Panel  `json:"panel"`
	Reason string `json:"reason"`
}

func newWeatherPanel(obs *weather.Observation) *WeatherPanel {
	panel := &WeatherPanel{
		Temperature: obs.Temperature,
		Humidity:    obs.Humidity,
		WindSpeed:   obs.WindSpeed,
		Condition:   obs.DisplayCondition(),
		Category:    obs.Condition,
		Icon:        obs.Condition.Icon(),
	}
	if !obs.ObservedAt.IsZero() {
		observedAt := obs.ObservedAt
		panel.ObservedAt = &observedAt
	}
	return panel
}

func newAirQualityPanel(snapshot *airquality.Snapshot) *AirQualityPanel {
	measured := snapshot.Measurements()
	panel := &AirQualityPanel{
		Level:      snapshot.AQI,
		Label:      airquality.LevelLabel(snapshot.AQI),
		Comparison: airquality.BuildComparison(measured),
		Chart:      airquality.BuildChartSeries(measured),
	}
	if category, ok := airquality.CategoryInfo(snapshot.AQI); ok {
		panel.Category = &category
	}
	if !snapshot.MeasuredAt.IsZero() {
		measuredAt := snapshot.MeasuredAt
		panel.MeasuredAt = &measuredAt
	}
	return panel
}
