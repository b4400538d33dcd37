package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrodovalexey/avcatalog/internal/catalog"
	"github.com/vyrodovalexey/avcatalog/internal/config"
	"github.com/vyrodovalexey/avcatalog/internal/observability"
)

func newTestHandler(t *testing.T, cfg *config.Config, data string) *Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	store := catalog.NewFileStore(path)
	homePage := NewHomePage("", observability.NopLogger())

	return NewHandler(cfg, store, homePage, observability.NopLogger())
}

func TestHandler_HomeRoute(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, config.DefaultConfig(), `[]`)

	// Query parameters must not affect the home route.
	for _, target := range []string{"/", "/?category=a", "/?limit=3&category=b"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html", target)
	}
}

func TestHandler_DataRoute(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, config.DefaultConfig(), `[
		{"id": 1, "category": "a"},
		{"id": 2, "category": "b"},
		{"id": 3, "category": "a"}
	]`)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api?category=a&limit=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var records []catalog.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].ID)
}

func TestHandler_UnmatchedRoute(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, config.DefaultConfig(), `[]`)

	for _, target := range []string{"/missing", "/api/sub", "/home"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}
}

func TestHandler_RequestIDHeader(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, config.DefaultConfig(), `[]`)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHandler_RateLimit(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.RateLimit = config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 1,
		Burst:             1,
	}

	h := newTestHandler(t, cfg, `[]`)

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestHandler_Router(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, config.DefaultConfig(), `[]`)

	routes := h.Router().Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/", routes[0].Path)
	assert.Equal(t, "/api", routes[1].Path)
}
