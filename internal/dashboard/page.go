// Package dashboard renders the single-page report view as HTML.
package dashboard

import (
	"github.com/breatheroute/airreport/internal/report"
)

// Title is the heading of the page.
const Title = "Weather and Air Pollution Health Risk Analyzer"

// User-facing messages.
const (
	MessageEmptyInput  = "Please enter a valid location."
	MessageNotFound    = "Location not found. Try again."
	MessageUnavailable = "The location service is unavailable right now. Try again later."

	noticeWeather    = "Current weather is not available for this location."
	noticeAirQuality = "Air quality data is not available for this location."
)

// State is the page state. Every request starts from Idle; submitting the
// form produces a Reporting page.
type State string

const (
	StateIdle      State = "idle"
	StateReporting State = "reporting"
)

// AlertLevel selects how an alert is styled.
type AlertLevel string

const (
	AlertWarning AlertLevel = "warning"
	AlertError   AlertLevel = "error"
)

// Alert is a message shown above the panels.
type Alert struct {
	Level   AlertLevel
	Message string
}

// Page is the view model passed to the template.
type Page struct {
	Title  string
	State  State
	Query  string
	Alert  *Alert
	Report *report.Report
	Chart  *Chart

	WeatherNotice    string
	AirQualityNotice string
}

// NewIdlePage returns the page with only the input form.
func NewIdlePage() *Page {
	return &Page{Title: Title, State: StateIdle}
}

// NewAlertPage returns a Reporting page that shows only an alert.
func NewAlertPage(query string, level AlertLevel, message string) *Page {
	return &Page{
		Title: Title,
		State: StateReporting,
		Query: query,
		Alert: &Alert{Level: level, Message: message},
	}
}

// NewReportPage returns a Reporting page for rpt. Missing panels get a notice.
func NewReportPage(query string, rpt *report.Report) *Page {
	page := &Page{
		Title:  Title,
		State:  StateReporting,
		Query:  query,
		Report: rpt,
	}
	if rpt.Weather == nil {
		page.WeatherNotice = noticeWeather
	}
	if rpt.AirQuality == nil {
		page.AirQualityNotice = noticeAirQuality
	} else {
		page.Chart = NewChart(rpt.AirQuality.Chart)
	}
	return page
}
