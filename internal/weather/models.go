// Package weather provides current weather observations for a place.
package weather

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Weather errors.
var (
	ErrProviderUnavailable = errors.New("weather provider unavailable")
	ErrNoDataForLocation   = errors.New("no weather data for location")
)

// Provider defines the interface for weather data providers.
type Provider interface {
	// CurrentByPlace fetches current weather for a free-text place name.
	CurrentByPlace(ctx context.Context, place string) (*Observation, error)

	// Name returns the provider name for logging.
	Name() string
}

// Observation represents current weather at a place.
type Observation struct {
	// Temperature in Celsius
	Temperature float64

	// Humidity percentage (0-100)
	Humidity float64

	// Wind speed in m/s
	WindSpeed float64

	// Weather condition
	Condition   Condition
	Description string

	// ObservedAt is the provider's measurement time, zero when not reported.
	ObservedAt time.Time
}

// DisplayCondition returns the description with its first letter upper-cased
// and the rest lower-cased, e.g. "clear sky" becomes "Clear sky".
func (o *Observation) DisplayCondition() string {
	return Capitalize(o.Description)
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// Condition represents the general weather condition.
type Condition string

const (
	ConditionClear        Condition = "CLEAR"
	ConditionClouds       Condition = "CLOUDS"
	ConditionRain         Condition = "RAIN"
	ConditionDrizzle      Condition = "DRIZZLE"
	ConditionThunderstorm Condition = "THUNDERSTORM"
	ConditionSnow         Condition = "SNOW"
	ConditionMist         Condition = "MIST"
	ConditionFog          Condition = "FOG"
	ConditionHaze         Condition = "HAZE"
	ConditionUnknown      Condition = "UNKNOWN"
)

// Icon returns the emoji shown next to the condition on the dashboard.
func (c Condition) Icon() string {
	switch c {
	case ConditionClear:
		return "☀️"
	case ConditionClouds:
		return "☁️"
	case ConditionRain, ConditionDrizzle:
		return "🌧️"
	case ConditionThunderstorm:
		return "⛈️"
	case ConditionSnow:
		return "❄️"
	case ConditionMist, ConditionFog, ConditionHaze:
		return "🌫️"
	default:
		return "🌡️"
	}
}
