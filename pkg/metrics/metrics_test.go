package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveHTTP("GET", "/api/v1/people/:id", 404, 5*time.Millisecond)
	m.ObserveOperation("EditPerson", OutcomeFailure, time.Millisecond)
	m.ObserveOperation("EditPerson", OutcomeFailure, time.Millisecond)
	m.ObserveOutbox("person.created", true)
	m.ObserveOutbox("person.created", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/v1/people/:id", "404")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations.WithLabelValues("EditPerson", OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OutboxEvents.WithLabelValues("person.created", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OutboxEvents.WithLabelValues("person.created", OutcomeFailure)))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveOperation("CreatePerson", OutcomeSuccess, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `contactbook_operations_total{operation="CreatePerson",outcome="success"} 1`)
}
