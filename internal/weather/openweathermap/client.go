// Package openweathermap fetches current weather from the OpenWeatherMap API.
package openweathermap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/breatheroute/airreport/internal/provider/resilience"
	"github.com/breatheroute/airreport/internal/weather"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "openweathermap-weather"

	// DefaultBaseURL is the OpenWeatherMap API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// successCode is the payload status that marks a usable response.
	successCode = 200

	// maxBodyBytes bounds the decoded payload.
	maxBodyBytes = 1 << 20
)

// ClientConfig holds configuration for the OpenWeatherMap client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to OpenWeatherMap API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeatherMap API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new OpenWeatherMap client.
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

// CurrentByPlace fetches current weather in metric units. The provider
// resolves the place name itself. A payload whose status code is not 200
// yields weather.ErrNoDataForLocation.
func (c *Client) CurrentByPlace(ctx context.Context, place string) (*weather.Observation, error) {
	query := url.Values{}
	query.Set("q", place)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: executing request: %v", weather.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: unexpected status code: %d", weather.ErrProviderUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", weather.ErrProviderUnavailable, err)
	}

	// Error payloads (e.g. unknown city) carry their own cod and message
	// and are not a provider outage.
	var owmResp currentWeatherResponse
	if err := json.Unmarshal(body, &owmResp); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", weather.ErrNoDataForLocation, err)
	}

	if owmResp.Cod != successCode {
		c.logger.Debug().
			Int("cod", int(owmResp.Cod)).
			Str("message", owmResp.Message).
			Msg("weather payload not usable")
		return nil, fmt.Errorf("%w: status %d", weather.ErrNoDataForLocation, owmResp.Cod)
	}

	obs, err := toObservation(&owmResp)
	if err != nil {
		c.logger.Debug().Err(err).Msg("weather payload not usable")
		return nil, err
	}
	return obs, nil
}

// toObservation converts OpenWeatherMap response to domain model. A payload
// without temperature, humidity or wind speed is not usable.
func toObservation(resp *currentWeatherResponse) (*weather.Observation, error) {
	if resp.Main.Temp == nil || resp.Main.Humidity == nil || resp.Wind.Speed == nil {
		return nil, fmt.Errorf("%w: payload lacks temperature, humidity or wind speed", weather.ErrNoDataForLocation)
	}

	obs := &weather.Observation{
		Temperature: *resp.Main.Temp,
		Humidity:    *resp.Main.Humidity,
		WindSpeed:   *resp.Wind.Speed,
		Condition:   weather.ConditionUnknown,
	}
	if resp.Dt > 0 {
		obs.ObservedAt = time.Unix(resp.Dt, 0).UTC()
	}

	if len(resp.Weather) > 0 {
		obs.Condition = mapCondition(resp.Weather[0].Main)
		obs.Description = resp.Weather[0].Description
	}

	return obs, nil
}

// mapCondition maps OpenWeatherMap condition to domain condition.
func mapCondition(owmCondition string) weather.Condition {
	switch owmCondition {
	case "Clear":
		return weather.ConditionClear
	case "Clouds":
		return weather.ConditionClouds
	case "Rain":
		return weather.ConditionRain
	case "Drizzle":
		return weather.ConditionDrizzle
	case "Thunderstorm":
		return weather.ConditionThunderstorm
	case "Snow":
		return weather.ConditionSnow
	case "Mist":
		return weather.ConditionMist
	case "Fog":
		return weather.ConditionFog
	case "Haze", "Dust", "Sand", "Ash", "Squall", "Tornado", "Smoke":
		return weather.ConditionHaze
	default:
		return weather.ConditionUnknown
	}
}

// statusCode accepts the payload "cod" as either a number or a numeric
// string; the provider sends 200 on success and "404" on lookup errors.
type statusCode int

// UnmarshalJSON implements json.Unmarshaler.
func (s *statusCode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = 0
		return nil
	}
	raw := data
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		// Unparseable codes are treated as not successful.
		*s = 0
		return nil //nolint:nilerr // absent or malformed cod means unusable payload
	}
	*s = statusCode(n)
	return nil
}

// OpenWeatherMap API response structures.

type currentWeatherResponse struct {
	Cod     statusCode `json:"cod"`
	Message string     `json:"message"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Dt int64 `json:"dt"`
}
