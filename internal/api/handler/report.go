// Package handler provides the HTTP handlers of the dashboard.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/breatheroute/airreport/internal/api/middleware"
	"github.com/breatheroute/airreport/internal/api/models"
	"github.com/breatheroute/airreport/internal/api/response"
	"github.com/breatheroute/airreport/internal/report"
)

// locationParam is the query parameter carrying the place name.
const locationParam = "location"

// ReportGenerator produces a report for a place name.
type ReportGenerator interface {
	Generate(ctx context.Context, place string) (*report.Report, error)
}

// ReportHandler serves reports as JSON.
type ReportHandler struct {
	reports ReportGenerator
	logger  zerolog.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports ReportGenerator, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: logger}
}

// GetReport handles GET /v1/report?location=<place>.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	place := r.URL.Query().Get(locationParam)

	rpt, err := h.reports.Generate(r.Context(), place)
	switch {
	case err == nil:
		response.JSON(w, r, http.StatusOK, rpt)
	case errors.Is(err, report.ErrEmptyInput):
		response.BadRequest(w, r, "location is required", []models.FieldError{
			{Field: locationParam, Message: "must not be blank", Code: "REQUIRED"},
		})
	case errors.Is(err, report.ErrLocationNotFound):
		response.LocationNotFound(w, r, "no place matches "+quote(place))
	case errors.Is(err, report.ErrGeocoderUnavailable):
		response.ServiceUnavailable(w, r, "the geocoding service is unavailable")
	default:
		h.logger.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("report generation failed")
		response.InternalError(w, r, "failed to generate report")
	}
}

func quote(s string) string {
	return `"` + s + `"`
}
