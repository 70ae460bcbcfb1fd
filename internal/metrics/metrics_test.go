package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	RecordHTTPRequest(http.MethodGet, "/submitData/{id}", http.StatusOK, 5*time.Millisecond)
	RecordHTTPRequest(http.MethodGet, "/submitData/{id}", http.StatusOK, 7*time.Millisecond)
	RecordHTTPRequest(http.MethodGet, "/submitData/{id}", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/submitData/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/submitData/{id}", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(httpRequestDuration))
}

func TestRecordSubmission(t *testing.T) {
	before := testutil.ToFloat64(passesSubmittedTotal)
	RecordSubmission()
	assert.Equal(t, before+1, testutil.ToFloat64(passesSubmittedTotal))
}

func TestRecordCacheOperation(t *testing.T) {
	cacheOperationsTotal.Reset()

	RecordCacheOperation("get", "hit")
	RecordCacheOperation("get", "miss")
	RecordCacheOperation("get", "miss")

	assert.Equal(t, 1.0, testutil.ToFloat64(cacheOperationsTotal.WithLabelValues("get", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(cacheOperationsTotal.WithLabelValues("get", "miss")))
}
