// Package airquality provides air pollution readings and the health-risk
// reference data used to interpret them.
package airquality

import (
	"context"
	"errors"
	"time"
)

// Provider errors.
var (
	ErrNoMeasurements      = errors.New("no measurements available")
	ErrProviderUnavailable = errors.New("air quality provider unavailable")
	ErrInvalidReference    = errors.New("invalid pollutant reference data")
)

// Pollutant identifies a pollutant by its provider short-code.
type Pollutant string

const (
	PollutantPM25 Pollutant = "pm2_5"
	PollutantPM10 Pollutant = "pm10"
	PollutantNO2  Pollutant = "no2"
	PollutantCO   Pollutant = "co"
	PollutantO3   Pollutant = "o3"
	PollutantSO2  Pollutant = "so2"
	PollutantNH3  Pollutant = "nh3"
)

// declaredOrder is the order used by every table and chart.
var declaredOrder = []Pollutant{
	PollutantPM25,
	PollutantPM10,
	PollutantNO2,
	PollutantCO,
	PollutantO3,
	PollutantSO2,
	PollutantNH3,
}

// Pollutants returns all tracked pollutants in their declared order.
func Pollutants() []Pollutant {
	out := make([]Pollutant, len(declaredOrder))
	copy(out, declaredOrder)
	return out
}

// Provider defines the interface for air quality data providers.
type Provider interface {
	// Current fetches the most recent reading for a point.
	Current(ctx context.Context, point Point) (*Snapshot, error)

	// Name returns the provider name for logging.
	Name() string
}

// Point is the coordinate an air quality snapshot was requested for.
type Point struct {
	Lat float64
	Lon float64
}

// Snapshot represents the most recent air pollution reading for a point.
type Snapshot struct {
	// AQI is the provider's overall index, 1 (good) to 5 (very poor).
	// Values outside that range are kept as received.
	AQI int

	// Concentrations in µg/m³ keyed by pollutant.
	Concentrations map[Pollutant]float64

	// MeasuredAt is the provider's reading time, zero when not reported.
	MeasuredAt time.Time
}

// Concentration returns the measured value for p, or 0 when the provider
// did not report it.
func (s *Snapshot) Concentration(p Pollutant) float64 {
	if s == nil || s.Concentrations == nil {
		return 0
	}
	return s.Concentrations[p]
}

// Measurements returns the concentrations of all tracked pollutants,
// filling absent ones with 0.
func (s *Snapshot) Measurements() map[Pollutant]float64 {
	out := make(map[Pollutant]float64, len(declaredOrder))
	for _, p := range declaredOrder {
		out[p] = s.Concentration(p)
	}
	return out
}
