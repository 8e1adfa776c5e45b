package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bootwatcher/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordSubscription(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordSubscription("Lot A")
	c.RecordSubscription("Lot B")

	assert.InDelta(t, 2, testutil.ToFloat64(c.subscriptions), 0)
}

func TestCollector_RecordDelivery(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordDelivery(entity.DeliveryOutcome{PhoneNumber: "5551234567", SID: "SM1"})
	c.RecordDelivery(entity.DeliveryOutcome{PhoneNumber: "5551234568", Error: "invalid number"})
	c.RecordDelivery(entity.DeliveryOutcome{PhoneNumber: "5551234569", SID: "SM2"})

	assert.InDelta(t, 2, testutil.ToFloat64(c.deliveries.WithLabelValues("accepted")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.deliveries.WithLabelValues("failed")), 0)
}

func TestCollector_RecordDispatchAndLookup(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordDispatch(entity.DispatchCompleted, 150*time.Millisecond)
	c.RecordDispatch(entity.DispatchFailed, time.Second)
	c.RecordLookup(entity.LookupOK)
	c.RecordLookup(entity.LookupRateLimited)
	c.RecordStoreReadFailure("count_recent")

	assert.InDelta(t, 1, testutil.ToFloat64(c.dispatches.WithLabelValues("COMPLETED")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.dispatches.WithLabelValues("FAILED")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.lookups.WithLabelValues("RATE_LIMITED")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.storeReadFailures.WithLabelValues("count_recent")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)

	var histogramCount uint64
	for _, mf := range families {
		if mf.GetName() == "bootwatcher_dispatch_duration_seconds" {
			histogramCount = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(2), histogramCount)
}

func TestHandler_ServesMetrics(t *testing.T) {
	result := NewMetrics()
	result.Recorder.RecordSubscription("Lot A")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler(result.Gatherer).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "bootwatcher_subscriptions_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
