package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrodovalexey/avcatalog/internal/util"
)

// staticStore is a Store stub serving a fixed collection or error.
type staticStore struct {
	records []Record
	err     error
}

func (s *staticStore) Load(_ context.Context) ([]Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func doDataRequest(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeRecords(t *testing.T, body []byte) []Record {
	t.Helper()

	var records []Record
	require.NoError(t, json.Unmarshal(body, &records))
	return records
}

func TestHandler_ServeHTTP(t *testing.T) {
	t.Parallel()

	store := &staticStore{records: testRecords()}
	h := NewHandler(store)

	rec := doDataRequest(t, h, "/api")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	records := decodeRecords(t, rec.Body.Bytes())
	assert.Len(t, records, 5)
}

func TestHandler_ServeHTTP_Filter(t *testing.T) {
	t.Parallel()

	h := NewHandler(&staticStore{records: testRecords()})

	rec := doDataRequest(t, h, "/api?category=kitchen")

	assert.Equal(t, http.StatusOK, rec.Code)

	records := decodeRecords(t, rec.Body.Bytes())
	require.Len(t, records, 2)
	assert.Equal(t, []int{2, 4}, recordIDs(records))
}

func TestHandler_ServeHTTP_FilterAndLimit(t *testing.T) {
	t.Parallel()

	h := NewHandler(&staticStore{records: testRecords()})

	rec := doDataRequest(t, h, "/api?category=electronics&limit=1")

	records := decodeRecords(t, rec.Body.Bytes())
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].ID)
}

func TestHandler_ServeHTTP_UnparseableLimitServesAll(t *testing.T) {
	t.Parallel()

	h := NewHandler(&staticStore{records: testRecords()})

	rec := doDataRequest(t, h, "/api?limit=banana")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeRecords(t, rec.Body.Bytes()), 5)
}

func TestHandler_ServeHTTP_AbsentCategoryServesEmptyArray(t *testing.T) {
	t.Parallel()

	h := NewHandler(&staticStore{records: testRecords()})

	rec := doDataRequest(t, h, "/api?category=garden")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_ServeHTTP_DataUnavailable(t *testing.T) {
	t.Parallel()

	h := NewHandler(&staticStore{err: util.NewDataError("/tmp/x.json", "read failed", nil)})

	rec := doDataRequest(t, h, "/api")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Data file not found"}`, rec.Body.String())
}

func TestHandler_ServeHTTP_FileBacked(t *testing.T) {
	t.Parallel()

	path := writeDataFile(t, `[
		{"id": 1, "category": "a"},
		{"id": 2, "category": "b"},
		{"id": 3, "category": "a"}
	]`)

	h := NewHandler(NewFileStore(path))

	rec := doDataRequest(t, h, "/api?category=a&limit=1")

	assert.Equal(t, http.StatusOK, rec.Code)

	records := decodeRecords(t, rec.Body.Bytes())
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].ID)
}

func TestHandler_ServeHTTP_FileDeleted(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "gone.json"))
	h := NewHandler(store)

	rec := doDataRequest(t, h, "/api")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Data file not found"}`, rec.Body.String())
}
