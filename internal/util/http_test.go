package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCapturingResponseWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := NewStatusCapturingResponseWriter(rec)

	assert.Equal(t, http.StatusOK, w.StatusCode)
	assert.False(t, w.HeaderWritten)

	w.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, w.StatusCode)
	assert.True(t, w.HeaderWritten)

	// Second WriteHeader is ignored
	w.WriteHeader(http.StatusOK)
	assert.Equal(t, http.StatusNotFound, w.StatusCode)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusCapturingResponseWriter_WriteMarksHeader(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := NewStatusCapturingResponseWriter(rec)

	_, err := w.Write([]byte("body"))
	assert.NoError(t, err)
	assert.True(t, w.HeaderWritten)
	assert.Equal(t, http.StatusOK, w.StatusCode)
	assert.Equal(t, "body", rec.Body.String())
}
