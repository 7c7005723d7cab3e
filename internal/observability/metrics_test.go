package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRecordRequest(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRequest("/login", "POST", 200, 5*time.Millisecond)
	metrics.RecordRequest("/login", "POST", 200, 7*time.Millisecond)
	metrics.RecordRequest("/login", "POST", 401, time.Millisecond)

	assert.Equal(t, int64(2), metrics.RequestCount("/login", "POST", 200))
	assert.Equal(t, int64(1), metrics.RequestCount("/login", "POST", 401))
	assert.Equal(t, int64(0), metrics.RequestCount("/tickets", "GET", 200))
}

func TestMetricsNilSafe(t *testing.T) {
	var metrics *Metrics
	metrics.RecordRequest("/login", "POST", 200, time.Millisecond)
	metrics.RecordError("/login", "POST", "INTERNAL_ERROR")
}
