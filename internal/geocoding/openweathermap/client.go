// Package openweathermap resolves place names with the OpenWeatherMap
// direct geocoding API.
package openweathermap

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/breatheroute/airreport/internal/geocoding"
	"github.com/breatheroute/airreport/internal/provider/resilience"
)

const (
	// ProviderName identifies this geocoding provider.
	ProviderName = "openweathermap-geo"

	// DefaultBaseURL is the OpenWeatherMap geocoding API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/geo/1.0"
)

// ClientConfig holds configuration for the geocoding client.
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

// Client is an OpenWeatherMap geocoding client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new geocoding client.
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

// Lookup returns the first match for place.
func (c *Client) Lookup(ctx context.Context, place string) (geocoding.GeoPoint, error) {
	query := url.Values{}
	query.Set("q", place)
	query.Set("limit", "1")
	query.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/direct?"+query.Encode(), http.NoBody)
	if err != nil {
		return geocoding.GeoPoint{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return geocoding.GeoPoint{}, fmt.Errorf("%w: executing request: %v", geocoding.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Msg("geocoding request rejected")
		return geocoding.GeoPoint{}, fmt.Errorf("%w: unexpected status code: %d", geocoding.ErrProviderUnavailable, resp.StatusCode)
	}

	var matches []directResponse
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return geocoding.GeoPoint{}, fmt.Errorf("%w: decoding response: %v", geocoding.ErrProviderUnavailable, err)
	}

	if len(matches) == 0 {
		return geocoding.GeoPoint{}, geocoding.ErrLocationNotFound
	}

	m := matches[0]
	if m.Lat == nil || m.Lon == nil {
		c.logger.Warn().
			Str("name", m.Name).
			Msg("geocoding match has no coordinates")
		return geocoding.GeoPoint{}, fmt.Errorf("%w: match has no coordinates", geocoding.ErrProviderUnavailable)
	}

	return geocoding.GeoPoint{
		Lat:     *m.Lat,
		Lon:     *m.Lon,
		Name:    m.Name,
		State:   m.State,
		Country: m.Country,
	}, nil
}

type directResponse struct {
	Name    string   `json:"name"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	Country string   `json:"country"`
	State   string   `json:"state"`
}
