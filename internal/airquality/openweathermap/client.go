// Package openweathermap fetches current air pollution from the
// OpenWeatherMap air pollution API.
package openweathermap

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/breatheroute/airreport/internal/airquality"
	"github.com/breatheroute/airreport/internal/provider/resilience"
)

const (
	// ProviderName identifies this air quality provider.
	ProviderName = "openweathermap-air"

	// DefaultBaseURL is the OpenWeatherMap API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
)

// ClientConfig holds configuration for the air pollution client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// BaseURL is the API base URL (optional).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeatherMap air pollution client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new air pollution client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Current returns the most recent reading for a point. Only the first entry
// of the result list is used. A payload without a non-empty list yields
// airquality.ErrNoMeasurements.
func (c *Client) Current(ctx context.Context, point airquality.Point) (*airquality.Snapshot, error) {
	query := url.Values{}
	query.Set("lat", formatCoord(point.Lat))
	query.Set("lon", formatCoord(point.Lon))
	query.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/air_pollution?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: executing request: %v", airquality.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Msg("air pollution request rejected")
		return nil, fmt.Errorf("%w: unexpected status code: %d", airquality.ErrProviderUnavailable, resp.StatusCode)
	}

	var owmResp airPollutionResponse
	if err := json.NewDecoder(resp.Body).Decode(&owmResp); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", airquality.ErrNoMeasurements, err)
	}

	if len(owmResp.List) == 0 {
		c.logger.Debug().Msg("air pollution payload has no readings")
		return nil, airquality.ErrNoMeasurements
	}

	return toSnapshot(&owmResp.List[0]), nil
}

func toSnapshot(entry *pollutionEntry) *airquality.Snapshot {
	snapshot := &airquality.Snapshot{
		AQI:            entry.Main.AQI,
		Concentrations: make(map[airquality.Pollutant]float64, len(entry.Components)),
	}
	if entry.Dt > 0 {
		snapshot.MeasuredAt = time.Unix(entry.Dt, 0).UTC()
	}

	for code, value := range entry.Components {
		snapshot.Concentrations[airquality.Pollutant(code)] = value
	}

	return snapshot
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// OpenWeatherMap API response structures.

type airPollutionResponse struct {
	List []pollutionEntry `json:"list"`
}

type pollutionEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		AQI int `json:"aqi"`
	} `json:"main"`
	Components map[string]float64 `json:"components"`
}
