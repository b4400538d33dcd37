package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetMetrics_Singleton(t *testing.T) {
	t.Parallel()

	m1 := GetMetrics()
	m2 := GetMetrics()

	assert.Same(t, m1, m2)
}

func TestMetrics_Record(t *testing.T) {
	t.Parallel()

	m := GetMetrics()

	// Recording must not panic with arbitrary labels and values
	m.RecordRequest("home", 200, 5*time.Millisecond)
	m.RecordRequest("data", 404, time.Second)
	m.RecordCatalogLoad(nil)
	m.RecordCatalogLoad(errors.New("read failed"))
	m.RecordRecordsServed(3)
	m.RecordRateLimitRejected()
	m.RecordPanicRecovered()
}
