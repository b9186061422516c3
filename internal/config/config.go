// Package config loads the dashboard's settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Config is the complete runtime configuration.
type Config struct {
	Env      string `envconfig:"APP_ENV" default:"development" validate:"required,oneof=local development staging production test"`
	Port     string `envconfig:"APP_PORT" default:"8080" validate:"required,numeric"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"required,oneof=trace debug info warn error"`

	// RequireTLS rejects requests forwarded over plain HTTP.
	RequireTLS bool `envconfig:"REQUIRE_TLS" default:"false"`

	Provider  ProviderConfig
	RateLimit RateLimitConfig
	Telemetry TelemetryConfig
}

// ProviderConfig configures the OpenWeatherMap clients.
type ProviderConfig struct {
	APIKey      SecretString  `envconfig:"OPENWEATHERMAP_API_KEY" validate:"required"`
	GeoBaseURL  string        `envconfig:"OPENWEATHERMAP_GEO_URL" default:"https://api.openweathermap.org/geo/1.0" validate:"required,url"`
	DataBaseURL string        `envconfig:"OPENWEATHERMAP_DATA_URL" default:"https://api.openweathermap.org/data/2.5" validate:"required,url"`
	Timeout     time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s" validate:"gt=0"`
	MaxRetries  int           `envconfig:"PROVIDER_MAX_RETRIES" default:"0" validate:"gte=0,lte=5"`
}

// RateLimitConfig bounds report requests per client IP.
type RateLimitConfig struct {
	Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"30" validate:"gt=0"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m" validate:"gt=0"`
}

// TelemetryConfig configures OpenTelemetry export.
type TelemetryConfig struct {
	Enabled      bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
}

// Level parses LogLevel. Validation guarantees it is well formed.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// ErrorType categorizes configuration loading failures.
type ErrorType string

const (
	ErrParsing    ErrorType = "PARSING_FAILED"
	ErrValidation ErrorType = "VALIDATION_FAILED"
)

// Error is returned by Load.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
