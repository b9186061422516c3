package openweathermap_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breatheroute/airreport/internal/provider/resilience"
	"github.com/breatheroute/airreport/internal/weather"
	"github.com/breatheroute/airreport/internal/weather/openweathermap"
)

func newTestClient(serverURL string) *openweathermap.Client {
	return openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "****",
		BaseURL:    serverURL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})
}

func TestClient_CurrentByPlace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Delhi, India", r.URL.Query().Get("q"))
		assert.Equal(t, "****", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		response := map[string]interface{}{
			"cod":     200,
			"coord":   map[string]float64{"lat": 28.6, "lon": 77.2},
			"weather": []map[string]interface{}{{"id": 800, "main": "Clear", "description": "clear sky"}},
			"main":    map[string]float64{"temp": 30.5, "humidity": 40},
			"wind":    map[string]float64{"speed": 3.1},
			"dt":      time.Now().Unix(),
			"name":    "Delhi",
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	obs, err := newTestClient(server.URL).CurrentByPlace(context.Background(), "Delhi, India")
	require.NoError(t, err)
	require.NotNil(t, obs)

	assert.Equal(t, 30.5, obs.Temperature)
	assert.Equal(t, 40.0, obs.Humidity)
	assert.Equal(t, 3.1, obs.WindSpeed)
	assert.Equal(t, weather.ConditionClear, obs.Condition)
	assert.Equal(t, "clear sky", obs.Description)
	assert.Equal(t, "Clear sky", obs.DisplayCondition())
	assert.False(t, obs.ObservedAt.IsZero())
}

func TestClient_CurrentByPlace_MinimalPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"cod": 200, "main": {"temp": 30.5, "humidity": 40}, "wind": {"speed": 3.1}, "weather": [{"description": "clear sky"}]}`))
	}))
	defer server.Close()

	obs, err := newTestClient(server.URL).CurrentByPlace(context.Background(), "Delhi")
	require.NoError(t, err)

	assert.Equal(t, 30.5, obs.Temperature)
	assert.Equal(t, 40.0, obs.Humidity)
	assert.Equal(t, 3.1, obs.WindSpeed)
	assert.Equal(t, "Clear sky", obs.DisplayCondition())
	assert.Equal(t, weather.ConditionUnknown, obs.Condition)
}

func TestClient_CurrentByPlace_Unavailable(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "city not found string cod", status: http.StatusNotFound, body: `{"cod":"404","message":"city not found"}`},
		{name: "success http with error cod", status: http.StatusOK, body: `{"cod":401}`},
		{name: "missing cod", status: http.StatusOK, body: `{"main":{"temp":20}}`},
		{name: "empty object", status: http.StatusOK, body: `{}`},
		{name: "success cod without readings", status: http.StatusOK, body: `{"cod":200}`},
		{name: "missing wind speed", status: http.StatusOK, body: `{"cod":200,"main":{"temp":12,"humidity":80},"weather":[{"description":"mist"}]}`},
		{name: "missing humidity", status: http.StatusOK, body: `{"cod":200,"main":{"temp":12},"wind":{"speed":2}}`},
		{name: "not json", status: http.StatusOK, body: `<html></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			obs, err := newTestClient(server.URL).CurrentByPlace(context.Background(), "Nowhere")
			assert.Nil(t, obs)
			assert.ErrorIs(t, err, weather.ErrNoDataForLocation)
		})
	}
}

func TestClient_CurrentByPlace_ZeroReadingsAreValid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"cod":200,"main":{"temp":0,"humidity":0},"wind":{"speed":0}}`))
	}))
	defer server.Close()

	obs, err := newTestClient(server.URL).CurrentByPlace(context.Background(), "Longyearbyen")
	require.NoError(t, err)
	assert.Zero(t, obs.Temperature)
	assert.Zero(t, obs.Humidity)
	assert.Zero(t, obs.WindSpeed)
	assert.True(t, obs.ObservedAt.IsZero())
}

func TestClient_CurrentByPlace_StringSuccessCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"cod":"200","main":{"temp":1.5,"humidity":90},"wind":{"speed":7},"weather":[{"main":"Snow","description":"light snow"}]}`))
	}))
	defer server.Close()

	obs, err := newTestClient(server.URL).CurrentByPlace(context.Background(), "Oslo")
	require.NoError(t, err)
	assert.Equal(t, weather.ConditionSnow, obs.Condition)
	assert.Equal(t, "Light snow", obs.DisplayCondition())
}

func TestClient_CurrentByPlace_ProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CurrentByPlace(context.Background(), "Delhi")
	assert.ErrorIs(t, err, weather.ErrProviderUnavailable)

	server.Close()
	_, err = newTestClient(server.URL).CurrentByPlace(context.Background(), "Delhi")
	assert.ErrorIs(t, err, weather.ErrProviderUnavailable)
}

func TestClient_CurrentByPlace_AllConditions(t *testing.T) {
	conditions := []struct {
		owmMain  string
		expected weather.Condition
	}{
		{"Clear", weather.ConditionClear},
		{"Clouds", weather.ConditionClouds},
		{"Rain", weather.ConditionRain},
		{"Drizzle", weather.ConditionDrizzle},
		{"Thunderstorm", weather.ConditionThunderstorm},
		{"Snow", weather.ConditionSnow},
		{"Mist", weather.ConditionMist},
		{"Fog", weather.ConditionFog},
		{"Haze", weather.ConditionHaze},
		{"Smoke", weather.ConditionHaze},
		{"Unknown", weather.ConditionUnknown},
	}

	for _, tc := range conditions {
		t.Run(tc.owmMain, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				response := map[string]interface{}{
					"cod":     200,
					"weather": []map[string]interface{}{{"main": tc.owmMain, "description": "test"}},
					"main":    map[string]float64{"temp": 20.0, "humidity": 50.0},
					"wind":    map[string]float64{"speed": 5.0},
				}
				_ = json.NewEncoder(w).Encode(response)
			}))
			defer server.Close()

			obs, err := newTestClient(server.URL).CurrentByPlace(context.Background(), "Amsterdam")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, obs.Condition)
		})
	}
}
