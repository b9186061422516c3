package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breatheroute/airreport/internal/api/handler"
	"github.com/breatheroute/airreport/internal/provider/resilience"
)

func TestHealthCheck(t *testing.T) {
	h := handler.NewOpsHandler("1.2.3", "2026-01-01T00:00:00Z", nil)

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	details := body["details"].(map[string]any)
	assert.Equal(t, "1.2.3", details["version"])
}

func TestSystemStatus_NoProviders(t *testing.T) {
	h := handler.NewOpsHandler("test", "", nil)

	rec := httptest.NewRecorder()
	h.SystemStatus(rec, httptest.NewRequest(http.MethodGet, "/v1/ops/status", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(mustField(t, rec.Body.Bytes(), "providers")))
}

func TestSystemStatus_ReportsProviders(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	registry := resilience.NewRegistry()
	okClient := resilience.NewClient(resilience.ClientConfig{Name: "openweathermap-geo", Registry: registry})
	badClient := resilience.NewClient(resilience.ClientConfig{Name: "openweathermap-air", Registry: registry})

	do := func(c *resilience.Client, path string) {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, upstream.URL+path, http.NoBody)
		require.NoError(t, err)
		resp, err := c.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
	}
	do(okClient, "/ok")
	for i := 0; i < 5; i++ {
		do(badClient, "/fail")
	}

	h := handler.NewOpsHandler("test", "", registry)
	rec := httptest.NewRecorder()
	h.SystemStatus(rec, httptest.NewRequest(http.MethodGet, "/v1/ops/status", http.NoBody))

	var body struct {
		Status    string `json:"status"`
		Providers []struct {
			Provider      string  `json:"provider"`
			Status        string  `json:"status"`
			CircuitState  string  `json:"circuitState"`
			LastSuccessAt *string `json:"lastSuccessAt"`
			LastFailureAt *string `json:"lastFailureAt"`
		} `json:"providers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "FAIL", body.Status)
	require.Len(t, body.Providers, 2)

	air := body.Providers[0]
	assert.Equal(t, "openweathermap-air", air.Provider)
	assert.Equal(t, "FAIL", air.Status)
	assert.Equal(t, "open", air.CircuitState)
	assert.NotNil(t, air.LastFailureAt)

	geo := body.Providers[1]
	assert.Equal(t, "openweathermap-geo", geo.Provider)
	assert.Equal(t, "OK", geo.Status)
	assert.Equal(t, "closed", geo.CircuitState)
	assert.NotNil(t, geo.LastSuccessAt)
	assert.Nil(t, geo.LastFailureAt)
}

func mustField(t *testing.T, data []byte, field string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	raw, ok := m[field]
	require.True(t, ok, "missing %q", field)
	return raw
}
