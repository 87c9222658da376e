package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-dev/parallax/pkg/pattern"
	"github.com/parallax-dev/parallax/pkg/runtime"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	registry, err := pattern.NewRegistry(&pattern.Pattern{
		Name:    "code-review",
		Version: "1.0",
		Structure: pattern.OrgStructure{
			Roles: []pattern.Role{{ID: "reviewer"}},
		},
		Workflow: pattern.Workflow{
			Steps: []pattern.Step{{Type: pattern.StepAssign, Role: "reviewer", Task: "Review"}},
		},
	})
	require.NoError(t, err)

	return NewServer(Deps{
		Registry:   registry,
		Federation: runtime.NewFederation(),
	})
}

func doRequest(s *Server, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestHealthHandler(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.NotEmpty(t, resp.Version)
	// An empty federation degrades the runtimes check, not the service.
	assert.Equal(t, healthStatusDegraded, resp.Checks["runtimes"].Status)
}

func TestSecurityHeaders(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodGet, "/health")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestClusterStatusHandler_Standalone(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodGet, "/api/cluster/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ClusterStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Enabled)
	assert.Empty(t, resp.InstanceID)
}

func TestPatternHandlers(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/patterns")
	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []PatternSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "code-review", summaries[0].Name)
	assert.Equal(t, 1, summaries[0].Roles)

	rec = doRequest(s, http.MethodGet, "/api/patterns/code-review")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(s, http.MethodGet, "/api/patterns/ghost")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRuntimesHandler(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, http.MethodGet, "/api/runtimes")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RuntimesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Runtimes)
}
