package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileMetrics(t *testing.T) {
	registry := NewRegistry()
	m, ok := NewReconcileMetrics(registry).(*reconcileMetrics)
	require.True(t, ok)

	m.ObserveRun("cron", nil, time.Second)
	m.ObserveRun("cron", errors.New("rpc down"), time.Second)
	m.ObserveRun("push", nil, time.Millisecond)
	m.AddCorrections("cron", 3)
	m.AddCorrections("cron", 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("cron", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("cron", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("push", "true")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.corrections.WithLabelValues("cron")))
}

func TestHTTPMetrics_Begin(t *testing.T) {
	m := NewHTTPMetrics(NewRegistry())

	done := m.Begin()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inFlight))

	done("GET", "/api/products", "200", 10*time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/products", "200")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	registry := NewRegistry()
	NewReconcileMetrics(registry).AddCorrections("push", 1)

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `atelier_reconcile_corrections_total{trigger="push"} 1`)
}
