package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrodovalexey/avcatalog/internal/observability"
)

func TestStaticPage_ServeHTTP(t *testing.T) {
	t.Parallel()

	page := NewStaticPage([]byte("<h1>hi</h1>"), "text/html; charset=utf-8", http.StatusOK)

	rec := httptest.NewRecorder()
	page.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<h1>hi</h1>", rec.Body.String())
}

func TestNewHomePage_Default(t *testing.T) {
	t.Parallel()

	page := NewHomePage("", observability.NopLogger())

	rec := httptest.NewRecorder()
	page.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Catalog Server")
}

func TestNewHomePage_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>custom</p>"), 0o600))

	page := NewHomePage(path, observability.NopLogger())

	rec := httptest.NewRecorder()
	page.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "<p>custom</p>", rec.Body.String())
}

func TestNewHomePage_MissingFileFallsBack(t *testing.T) {
	t.Parallel()

	page := NewHomePage(filepath.Join(t.TempDir(), "missing.html"), observability.NopLogger())

	rec := httptest.NewRecorder()
	page.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Catalog Server")
}

func TestStaticPage_LoadFile_KeepsBodyOnError(t *testing.T) {
	t.Parallel()

	page := NewStaticPage([]byte("original"), "text/html; charset=utf-8", http.StatusOK)

	page.LoadFile(filepath.Join(t.TempDir(), "missing.html"), observability.NopLogger())

	assert.Equal(t, []byte("original"), page.Body())
}

func TestStaticPage_SetBody(t *testing.T) {
	t.Parallel()

	page := NewStaticPage([]byte("old"), "text/html; charset=utf-8", http.StatusOK)
	page.SetBody([]byte("new"))

	assert.Equal(t, []byte("new"), page.Body())
}

func TestNotFoundHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NotFoundHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whatever", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")
}
