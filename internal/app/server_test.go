package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Health(t *testing.T) {
	server, err := NewServer()
	require.NoError(t, err)

	resp, err := server.App().Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestServer_MetricsExposed(t *testing.T) {
	server, err := NewServer()
	require.NoError(t, err)

	resp, err := server.App().Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestServer_APIKeyGuard(t *testing.T) {
	t.Setenv("API_KEY", "topsecret")

	server, err := NewServer()
	require.NoError(t, err)

	resp, err := server.App().Test(httptest.NewRequest("GET", "/api/catalog", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req := httptest.NewRequest("GET", "/api/catalog", nil)
	req.Header.Set("X-API-Key", "topsecret")
	resp, err = server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestServer_Briefing(t *testing.T) {
	server, err := NewServer()
	require.NoError(t, err)

	resp, err := server.App().Test(httptest.NewRequest("GET", "/api/briefing", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestServer_BadCatalogPathFails(t *testing.T) {
	t.Setenv("CATALOG_PATH", "/does/not/exist.yaml")

	_, err := NewServer()
	assert.Error(t, err)
}
