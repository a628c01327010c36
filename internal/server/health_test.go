package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clustereye/mcp-kubernetes/internal/tools/tooltest"
)

func newHealthContext(t *testing.T) *ServerContext {
	t.Helper()
	sc, err := NewServerContext(context.Background(),
		WithK8sClient(&tooltest.FakeClient{}),
		WithLogger(testLogger()),
		WithVersion("1.2.3"),
	)
	require.NoError(t, err)
	return sc
}

func doProbe(t *testing.T, handler http.Handler, path string) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	var response HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return recorder, response
}

func TestLivenessHandler(t *testing.T) {
	checker := NewHealthChecker(newHealthContext(t))

	recorder, response := doProbe(t, checker.LivenessHandler(), "/healthz")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok", response.Status)
}

func TestReadinessHandler(t *testing.T) {
	sc := newHealthContext(t)
	checker := NewHealthChecker(sc)

	recorder, response := doProbe(t, checker.ReadinessHandler(), "/readyz")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "1.2.3", response.Version)
	assert.NotEmpty(t, response.Uptime)
}

func TestReadinessHandlerNotReady(t *testing.T) {
	checker := NewHealthChecker(newHealthContext(t))
	checker.SetReady(false)

	recorder, response := doProbe(t, checker.ReadinessHandler(), "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Equal(t, "unavailable", response.Status)
}

func TestReadinessHandlerAfterShutdown(t *testing.T) {
	sc := newHealthContext(t)
	checker := NewHealthChecker(sc)
	require.NoError(t, sc.Shutdown())

	recorder, _ := doProbe(t, checker.ReadinessHandler(), "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestRegisterHealthEndpoints(t *testing.T) {
	checker := NewHealthChecker(newHealthContext(t))
	mux := http.NewServeMux()
	checker.RegisterHealthEndpoints(mux)

	for _, path := range []string{"/healthz", "/readyz"} {
		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, recorder.Code, path)
	}
}
