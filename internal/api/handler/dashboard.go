package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/breatheroute/airreport/internal/api/middleware"
	"github.com/breatheroute/airreport/internal/dashboard"
	"github.com/breatheroute/airreport/internal/report"
)

// DashboardHandler serves the HTML page. Without a location parameter the
// page is idle; with one, the report is generated and rendered.
type DashboardHandler struct {
	reports  ReportGenerator
	renderer *dashboard.Renderer
	logger   zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reports ReportGenerator, renderer *dashboard.Renderer, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{reports: reports, renderer: renderer, logger: logger}
}

// Page handles GET /.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has(locationParam) {
		h.render(w, r, http.StatusOK, dashboard.NewIdlePage())
		return
	}

	place := query.Get(locationParam)
	rpt, err := h.reports.Generate(r.Context(), place)
	switch {
	case err == nil:
		h.render(w, r, http.StatusOK, dashboard.NewReportPage(place, rpt))
	case errors.Is(err, report.ErrEmptyInput):
		h.render(w, r, http.StatusBadRequest, dashboard.NewAlertPage(place, dashboard.AlertWarning, dashboard.MessageEmptyInput))
	case errors.Is(err, report.ErrLocationNotFound):
		h.render(w, r, http.StatusNotFound, dashboard.NewAlertPage(place, dashboard.AlertError, dashboard.MessageNotFound))
	default:
		h.render(w, r, http.StatusServiceUnavailable, dashboard.NewAlertPage(place, dashboard.AlertError, dashboard.MessageUnavailable))
	}
}

func (h *DashboardHandler) render(w http.ResponseWriter, r *http.Request, status int, page *dashboard.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Render(w, page); err != nil {
		h.logger.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("failed to render dashboard")
	}
}
