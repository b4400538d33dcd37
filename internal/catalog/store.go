package catalog

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/vyrodovalexey/avcatalog/internal/observability"
	"github.com/vyrodovalexey/avcatalog/internal/util"
)

// Store loads the record collection from its source.
type Store interface {
	Load(ctx context.Context) ([]Record, error)
}

// FileStore is a Store backed by a JSON file holding an ordered array
// of records. The file is re-read on every Load; there is no caching.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	logger observability.Logger
}

// FileStoreOption is a functional option for configuring a FileStore.
type FileStoreOption func(*FileStore)

// WithStoreLogger sets the logger for the store.
func WithStoreLogger(logger observability.Logger) FileStoreOption {
	return func(s *FileStore) {
		s.logger = logger
	}
}

// NewFileStore creates a new file-backed store.
func NewFileStore(path string, opts ...FileStoreOption) *FileStore {
	s := &FileStore{
		path:   path,
		logger: observability.NopLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Path returns the current data file path.
func (s *FileStore) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// SetPath swaps the data file path. Used by configuration hot reload;
// takes effect on the next Load.
func (s *FileStore) SetPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
}

// Load reads and decodes the record collection. Read and parse failures
// are both reported as util.ErrDataUnavailable; the caller never sees a
// partial collection.
func (s *FileStore) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from validated config
	if err != nil {
		s.logger.Error("failed to read data file",
			observability.String("path", path),
			observability.Error(err),
		)
		observability.GetMetrics().RecordCatalogLoad(err)
		return nil, util.NewDataError(path, "read failed", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Error("failed to decode data file",
			observability.String("path", path),
			observability.Error(err),
		)
		observability.GetMetrics().RecordCatalogLoad(err)
		return nil, util.NewDataError(path, "decode failed", err)
	}

	observability.GetMetrics().RecordCatalogLoad(nil)

	return records, nil
}

// Check verifies that the data file is readable and well-formed. Used
// by the readiness probe.
func (s *FileStore) Check(ctx context.Context) error {
	_, err := s.Load(ctx)
	return err
}
