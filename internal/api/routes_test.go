package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundtable/internal/api"
	"github.com/katalvlaran/roundtable/internal/applog"
	"github.com/katalvlaran/roundtable/internal/metrics"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return api.SetupRouter(applog.New(applog.Config{}), metrics.New(), "*", 60)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRootEndpoint(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "roundtable-server", body["service"])
}

func TestScheduleEndpoint_InvalidInputIs400(t *testing.T) {
	router := newTestRouter()
	payload := []byte(`{"participants":0,"tables":1,"rounds":1}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleEndpoint_ValidRequestIs200(t *testing.T) {
	router := newTestRouter()
	payload := []byte(`{"participants":2,"tables":1,"rounds":1,"time_limit_seconds":3}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
