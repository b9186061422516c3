package report

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/breatheroute/airreport/internal/airquality"
	"github.com/breatheroute/airreport/internal/geocoding"
	"github.com/breatheroute/airreport/internal/weather"
)

const tracerName = "github.com/breatheroute/airreport/internal/report"

// Outcome labels recorded per provider call.
const (
	outcomeOK          = "ok"
	outcomeNoData      = "no_data"
	outcomeUnavailable = "unavailable"
)

// MetricsRecorder records provider call outcomes.
type MetricsRecorder interface {
	RecordRequest(ctx context.Context, provider, operation, outcome string, duration time.Duration)
}

// ServiceConfig holds configuration for the report service.
type ServiceConfig struct {
	Geocoder   geocoding.Provider
	Weather    weather.Provider
	AirQuality airquality.Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// CallTimeout bounds each provider call (default: 10 seconds).
	CallTimeout time.Duration

	// Metrics is optional.
	Metrics MetricsRecorder
}

// Service generates reports. It keeps no state between calls.
type Service struct {
	resolver    *geocoding.Resolver
	geocoder    geocoding.Provider
	weather     weather.Provider
	airQuality  airquality.Provider
	logger      zerolog.Logger
	callTimeout time.Duration
	metrics     MetricsRecorder
	tracer      trace.Tracer
	now         func() time.Time
}

// NewService creates a new report service.
func NewService(cfg ServiceConfig) *Service {
	callTimeout := cfg.CallTimeout
	if callTimeout == 0 {
		callTimeout = 10 * time.Second
	}

	return &Service{
		resolver:    geocoding.NewResolver(cfg.Geocoder),
		geocoder:    cfg.Geocoder,
		weather:     cfg.Weather,
		airQuality:  cfg.AirQuality,
		logger:      cfg.Logger,
		callTimeout: callTimeout,
		metrics:     cfg.Metrics,
		tracer:      otel.Tracer(tracerName),
		now:         time.Now,
	}
}

// Generate runs one query. The steps run strictly in order: resolve the
// place, fetch weather, fetch air quality, then build the comparison and
// chart. Blank input, an unknown place or an unreachable geocoder end the
// query with an error and no further calls. Missing weather or air quality
// only drops the matching panels.
func (s *Service) Generate(ctx context.Context, place string) (*Report, error) {
	ctx, span := s.tracer.Start(ctx, "report.Generate")
	defer span.End()

	point, err := s.resolve(ctx, place)
	if err != nil {
		if !errors.Is(err, ErrEmptyInput) && !errors.Is(err, ErrLocationNotFound) {
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}

	normalized, _ := geocoding.NormalizePlace(place)
	span.SetAttributes(
		attribute.String("report.location", normalized),
		attribute.Float64("report.lat", point.Lat),
		attribute.Float64("report.lon", point.Lon),
	)

	rpt := &Report{
		Location:    normalized,
		Point:       point,
		GeneratedAt: s.now().UTC(),
	}

	if obs, err := s.fetchWeather(ctx, normalized); err != nil {
		rpt.Notices = append(rpt.Notices, Notice{Panel: PanelWeather, Reason: reason(err)})
	} else {
		rpt.Weather = newWeatherPanel(obs)
	}

	if snapshot, err := s.fetchAirQuality(ctx, point); err != nil {
		rpt.Notices = append(rpt.Notices, Notice{Panel: PanelAirQuality, Reason: reason(err)})
	} else {
		rpt.AirQuality = newAirQualityPanel(snapshot)
	}

	s.logger.Info().
		Str("location", rpt.Location).
		Float64("lat", point.Lat).
		Float64("lon", point.Lon).
		Bool("weather", rpt.Weather != nil).
		Bool("air_quality", rpt.AirQuality != nil).
		Msg("report generated")

	return rpt, nil
}

func (s *Service) resolve(ctx context.Context, place string) (geocoding.GeoPoint, error) {
	if _, err := geocoding.NormalizePlace(place); err != nil {
		return geocoding.GeoPoint{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	start := time.Now()
	point, err := s.resolver.Resolve(callCtx, place)
	s.record(ctx, s.geocoder.Name(), "resolve", err, time.Since(start))

	switch {
	case err == nil:
		return point, nil
	case errors.Is(err, geocoding.ErrLocationNotFound):
		s.logger.Info().Str("location", place).Msg("location not found")
		return geocoding.GeoPoint{}, err
	default:
		s.logger.Error().Err(err).Str("location", place).Msg("geocoding failed")
		if !errors.Is(err, geocoding.ErrProviderUnavailable) {
			err = errors.Join(geocoding.ErrProviderUnavailable, err)
		}
		return geocoding.GeoPoint{}, err
	}
}

func (s *Service) fetchWeather(ctx context.Context, place string) (*weather.Observation, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	start := time.Now()
	obs, err := s.weather.CurrentByPlace(callCtx, place)
	s.record(ctx, s.weather.Name(), "current_weather", err, time.Since(start))

	if err != nil {
		if errors.Is(err, weather.ErrNoDataForLocation) {
			s.logger.Debug().Err(err).Str("location", place).Msg("weather unavailable")
		} else {
			s.logger.Warn().Err(err).Str("location", place).Msg("weather provider failed")
		}
		return nil, err
	}
	return obs, nil
}

func (s *Service) fetchAirQuality(ctx context.Context, point geocoding.GeoPoint) (*airquality.Snapshot, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	start := time.Now()
	snapshot, err := s.airQuality.Current(callCtx, airquality.Point{Lat: point.Lat, Lon: point.Lon})
	s.record(ctx, s.airQuality.Name(), "air_pollution", err, time.Since(start))

	if err != nil {
		if errors.Is(err, airquality.ErrNoMeasurements) {
			s.logger.Debug().Err(err).Msg("air quality unavailable")
		} else {
			s.logger.Warn().Err(err).Msg("air quality provider failed")
		}
		return nil, err
	}
	return snapshot, nil
}

func (s *Service) record(ctx context.Context, provider, operation string, err error, d time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordRequest(ctx, provider, operation, outcome(err), d)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, geocoding.ErrLocationNotFound),
		errors.Is(err, weather.ErrNoDataForLocation),
		errors.Is(err, airquality.ErrNoMeasurements):
		return outcomeNoData
	default:
		return outcomeUnavailable
	}
}

func reason(err error) string {
	if outcome(err) == outcomeNoData {
		return "no data for this location"
	}
	return "provider unavailable"
}
