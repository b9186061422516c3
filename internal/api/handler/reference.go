package handler

import (
	"net/http"

	"github.com/breatheroute/airreport/internal/api/models"
	"github.com/breatheroute/airreport/internal/api/response"
)

// ReferenceHandler serves the static pollutant and AQI tables.
type ReferenceHandler struct {
	data models.ReferenceData
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{data: models.NewReferenceData()}
}

// GetReference handles GET /v1/reference.
func (h *ReferenceHandler) GetReference(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, h.data)
}
