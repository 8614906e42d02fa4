package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperpolymath/ambientops/internal/services"
)

func newTestRouter(t *testing.T) (*services.MetricsStore, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := services.NewMetricsStore(time.Hour)
	weather := services.NewWeatherService(store)
	forecasts := services.NewForecastService(store)
	themes := services.NewThemeRegistry()
	payloads := services.NewPayloadService(weather, themes)
	ingest := services.NewIngestService(store, nil)

	r := gin.New()
	r.GET("/weather", NewWeatherController(weather).GetWeather)

	fc := NewForecastController(forecasts)
	r.GET("/weather/forecasts", fc.GetForecasts)
	r.GET("/forecasts/:name/trend", fc.GetTrend)
	r.GET("/forecasts/:name/exhaustion", fc.GetExhaustion)
	r.GET("/forecasts/:name/breach", fc.GetBreach)

	ac := NewAmbientController(payloads, "")
	r.GET("/ambient", ac.GetAmbient)
	r.POST("/ambient/preview", ac.PostPreview)

	tc := NewThemeController(themes)
	r.GET("/themes", tc.ListThemes)
	r.GET("/themes/:id", tc.GetTheme)

	mc := NewMetricsController(store)
	r.GET("/metrics/fresh", mc.GetFresh)
	r.GET("/metrics/series/:name", mc.GetSeries)

	ic := NewIngestController(ingest)
	r.POST("/ingest/bundle", ic.PostBundle)
	r.POST("/ingest/envelope", ic.PostEnvelope)

	return store, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	decoded := map[string]interface{}{}
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestGetWeatherEndpoint(t *testing.T) {
	store, r := newTestRouter(t)
	store.Record("disk_percent", 95, nil, "test")
	store.Record("memory_percent", 20, nil, "test")
	store.Record("cpu_percent", 15, nil, "test")

	w, body := doJSON(t, r, http.MethodGet, "/weather", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "act", body["state"])
	assert.Contains(t, body["summary"], "disk usage at 95.0%")
}

func TestGetWeatherEndpointEmptyStore(t *testing.T) {
	_, r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/weather", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "calm", body["state"])
}

func TestForecastEndpoints(t *testing.T) {
	store, r := newTestRouter(t)
	base := time.Now().Add(-3 * time.Hour)
	for i, v := range []float64{50, 60, 70} {
		store.RecordAt("disk_percent", v, base.Add(time.Duration(i)*time.Hour))
	}

	w, body := doJSON(t, r, http.MethodGet, "/forecasts/disk_percent/trend", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "increasing", body["direction"])

	w, body = doJSON(t, r, http.MethodGet, "/forecasts/disk_percent/exhaustion?target=100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "exhaustion", body["forecast_type"])

	w, _ = doJSON(t, r, http.MethodGet, "/forecasts/disk_percent/exhaustion?target=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A question with no forecastable answer is 422, not 400.
	w, _ = doJSON(t, r, http.MethodGet, "/forecasts/unknown_metric/trend", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/forecasts/disk_percent/breach?threshold=60", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, body = doJSON(t, r, http.MethodGet, "/weather/forecasts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["forecasts"])
}

func TestAmbientPreviewEndpoint(t *testing.T) {
	_, r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/ambient/preview", map[string]interface{}{
		"readings": map[string]float64{"disk_percent": 95, "memory_percent": 92, "cpu_percent": 10},
		"theme":    "tech",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tech", body["theme_id"])

	badge, ok := body["badge"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 2.0, badge["count"])

	w, _ = doJSON(t, r, http.MethodPost, "/ambient/preview", map[string]interface{}{"theme": "tech"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "readings are required")
}

func TestThemeEndpoints(t *testing.T) {
	_, r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/themes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["themes"], 3)

	w, body = doJSON(t, r, http.MethodGet, "/themes/no-such-theme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "default", body["id"])
}

func TestMetricsEndpoints(t *testing.T) {
	store, r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/metrics/fresh", nil)
	require.Equal(t, http.StatusOK, w.Code)
	samples, ok := body["samples"].([]interface{})
	require.True(t, ok, "empty store still serialises as a list")
	assert.Empty(t, samples)
	assert.Equal(t, 3600.0, body["ttl_seconds"])

	store.Record("cpu_percent", 42, nil, "test")
	w, body = doJSON(t, r, http.MethodGet, "/metrics/series/cpu_percent", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cpu_percent", body["name"])
	assert.Len(t, body["samples"], 1)
}

func TestIngestEndpoints(t *testing.T) {
	store, r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/ingest/bundle", map[string]interface{}{
		"id":       "run-9",
		"snapshot": map[string]interface{}{"disk_percent": 81.5},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "run-9", body["bundle_id"])
	assert.Equal(t, 1.0, body["metrics_recorded"])

	sample, ok := store.Latest("disk_percent")
	require.True(t, ok)
	assert.Equal(t, 81.5, sample.Value)

	w, body = doJSON(t, r, http.MethodPost, "/ingest/envelope", map[string]interface{}{
		"version":     "1.0",
		"envelope_id": "env-9",
		"metrics":     map[string]float64{"memory_percent": 61},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "env-9", body["envelope_id"])

	w, _ = doJSON(t, r, http.MethodPost, "/ingest/envelope", map[string]interface{}{
		"version": "1.0",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
