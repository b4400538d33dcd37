package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/vyrodovalexey/avcatalog/internal/observability"
)

// dataUnavailableBody is the response body served when the collection
// cannot be read or decoded.
const dataUnavailableBody = `{"error":"Data file not found"}`

// Handler serves the data route: it loads the collection, applies the
// query, and writes the result as JSON.
type Handler struct {
	store  Store
	logger observability.Logger
}

// HandlerOption is a functional option for configuring a Handler.
type HandlerOption func(*Handler)

// WithHandlerLogger sets the logger for the handler.
func WithHandlerLogger(logger observability.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler creates a new data handler.
func NewHandler(store Store, opts ...HandlerOption) *Handler {
	h := &Handler{
		store:  store,
		logger: observability.NopLogger(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := ParseQuery(r.URL.Query())

	records, err := h.store.Load(r.Context())
	if err != nil {
		h.logger.WithContext(r.Context()).Warn("data unavailable",
			observability.Error(err),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(dataUnavailableBody))
		return
	}

	result := query.Apply(records)
	if result == nil {
		// Serialize an empty collection as [], not null.
		result = []Record{}
	}

	observability.GetMetrics().RecordRecordsServed(len(result))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.WithContext(r.Context()).Error("failed to encode response",
			observability.Error(err),
		)
	}
}
