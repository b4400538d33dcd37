package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vyrodovalexey/avcatalog/internal/util"
)

func TestMetrics_InjectsRouteLabel(t *testing.T) {
	t.Parallel()

	var label *util.RouteLabel
	handler := Metrics()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		label = util.RouteLabelFromContext(r.Context())
		if label != nil {
			label.Set("home")
		}
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotNil(t, label)
	assert.Equal(t, "home", label.Get())
}

func TestMetrics_PassesThrough(t *testing.T) {
	t.Parallel()

	handler := Metrics()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
