// Package main provides the entrypoint for the air report dashboard server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/breatheroute/airreport/internal/airquality"
	airowm "github.com/breatheroute/airreport/internal/airquality/openweathermap"
	"github.com/breatheroute/airreport/internal/api"
	"github.com/breatheroute/airreport/internal/api/middleware"
	"github.com/breatheroute/airreport/internal/config"
	"github.com/breatheroute/airreport/internal/dashboard"
	geoowm "github.com/breatheroute/airreport/internal/geocoding/openweathermap"
	"github.com/breatheroute/airreport/internal/provider/resilience"
	"github.com/breatheroute/airreport/internal/report"
	"github.com/breatheroute/airreport/internal/telemetry"
	weatherowm "github.com/breatheroute/airreport/internal/weather/openweathermap"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "airreport-dashboard"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	log = log.Level(cfg.Level())

	log.Info().
		Str("build_time", BuildTime).
		Str("env", cfg.Env).
		Msg("starting air report dashboard")

	// A broken reference table is a build defect; refuse to serve.
	if err := airquality.ValidateReference(); err != nil {
		log.Fatal().Err(err).Msg("invalid pollutant reference data")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Env,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		Enabled:        cfg.Telemetry.Enabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.Telemetry.Enabled {
		log.Info().
			Str("otlp_endpoint", cfg.Telemetry.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}
	providerMetrics, err := telemetry.NewProviderMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize provider metrics")
		os.Exit(1)
	}

	// One resilient client per upstream, all reporting to the same registry.
	registry := resilience.NewRegistry()
	newClient := func(name string) *resilience.Client {
		clientCfg := resilience.DefaultClientConfig(name)
		clientCfg.Timeout = cfg.Provider.Timeout
		clientCfg.MaxRetries = uint64(cfg.Provider.MaxRetries)
		clientCfg.Registry = registry
		return resilience.NewClient(clientCfg)
	}

	apiKey := cfg.Provider.APIKey.Unmask()
	reports := report.NewService(report.ServiceConfig{
		Geocoder: geoowm.NewClient(geoowm.ClientConfig{
			APIKey:     apiKey,
			BaseURL:    cfg.Provider.GeoBaseURL,
			HTTPClient: newClient(geoowm.ProviderName),
			Logger:     log,
		}),
		Weather: weatherowm.NewClient(weatherowm.ClientConfig{
			APIKey:     apiKey,
			BaseURL:    cfg.Provider.DataBaseURL,
			HTTPClient: newClient(weatherowm.ProviderName),
			Logger:     log,
		}),
		AirQuality: airowm.NewClient(airowm.ClientConfig{
			APIKey:     apiKey,
			BaseURL:    cfg.Provider.DataBaseURL,
			HTTPClient: newClient(airowm.ProviderName),
			Logger:     log,
		}),
		Logger:      log,
		CallTimeout: cfg.Provider.Timeout,
		Metrics:     providerMetrics,
	})
	log.Info().Msg("report service initialized")

	renderer, err := dashboard.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse dashboard templates")
	}

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:     Version,
		BuildTime:   BuildTime,
		ServiceName: serviceName,
		Logger:      log,
		Reports:     reports,
		Renderer:    renderer,
		Providers:   registry,
		Metrics:     metrics,
		ReportRateLimit: middleware.RateLimitConfig{
			RequestLimit: cfg.RateLimit.Requests,
			WindowLength: cfg.RateLimit.Window,
		},
		RequireTLS: cfg.RequireTLS,
	})

	// Create HTTP server. WriteTimeout covers three sequential provider calls.
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      3*cfg.Provider.Timeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
