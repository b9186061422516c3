// Package api wires the dashboard's HTTP routes and middleware.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/breatheroute/airreport/internal/api/handler"
	"github.com/breatheroute/airreport/internal/api/middleware"
	"github.com/breatheroute/airreport/internal/api/response"
	"github.com/breatheroute/airreport/internal/dashboard"
	"github.com/breatheroute/airreport/internal/provider/resilience"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	ServiceName string
	Logger      zerolog.Logger

	Reports   handler.ReportGenerator
	Renderer  *dashboard.Renderer
	Providers *resilience.Registry

	// Metrics is optional.
	Metrics *middleware.Metrics

	// ReportRateLimit applies to / and /v1/report. Zero uses the default.
	ReportRateLimit middleware.RateLimitConfig

	RequireTLS bool
}

// NewRouter creates the chi router with every route configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "airreport"
	}
	limit := cfg.ReportRateLimit
	if limit.RequestLimit == 0 || limit.WindowLength == 0 {
		limit = middleware.ReportRateLimit
	}

	// Order matters: ids and spans first so every later layer can log them.
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing(serviceName))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequireTLS(cfg.RequireTLS))

	reportRateLimit := middleware.RateLimitByIP(limit)

	dashboardHandler := handler.NewDashboardHandler(cfg.Reports, cfg.Renderer, cfg.Logger)
	reportHandler := handler.NewReportHandler(cfg.Reports, cfg.Logger)
	referenceHandler := handler.NewReferenceHandler()
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Providers)

	r.With(reportRateLimit, middleware.NoStore).Get("/", dashboardHandler.Page)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)

		r.With(reportRateLimit, middleware.NoStore).Get("/report", reportHandler.GetReport)
		r.Get("/reference", referenceHandler.GetReference)

		r.Route("/ops", func(r chi.Router) {
			r.Use(middleware.NoStore)
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, req, "no route for "+req.URL.Path)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w, req, req.Method+" is not supported for "+req.URL.Path)
	})

	return r
}
