package models

import "github.com/breatheroute/airreport/internal/airquality"

// ReferenceData lists the static pollutant thresholds and AQI categories.
type ReferenceData struct {
	ChartUnit  string                 `json:"chartUnit"`
	SafeImpact string                 `json:"safeImpact"`
	Pollutants []airquality.Reference `json:"pollutants"`
	Categories []airquality.Category  `json:"categories"`
}

// NewReferenceData builds the document from the airquality tables.
func NewReferenceData() ReferenceData {
	return ReferenceData{
		ChartUnit:  airquality.ChartUnit,
		SafeImpact: airquality.SafeImpact,
		Pollutants: airquality.References(),
		Categories: airquality.Categories(),
	}
}
