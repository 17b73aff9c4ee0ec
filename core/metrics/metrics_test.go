package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"spec-sync/core/metrics"
	"spec-sync/core/reconcile"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	r := metrics.NewRecorder()

	r.Observe(reconcile.Result{Status: reconcile.StatusPending, Conflicts: []reconcile.Conflict{}})
	r.Observe(reconcile.Result{Status: reconcile.StatusConflict, Conflicts: []reconcile.Conflict{
		{Field: "parameters.id", Type: reconcile.ConflictMissing},
		{Field: "parameters.q", Type: reconcile.ConflictMissing},
		{Field: "statusCodes", Type: reconcile.ConflictTypeMismatch},
	}})

	families, err := r.Registry().Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "|" + lp.GetValue()
			}
			if m.GetCounter() != nil {
				values[key] = m.GetCounter().GetValue()
			}
		}
	}

	assert.Equal(t, 1.0, values["spec_sync_reconciliations_total|pending"])
	assert.Equal(t, 1.0, values["spec_sync_reconciliations_total|conflict"])
	assert.Equal(t, 0.0, values["spec_sync_reconciliations_total|synced"])
	assert.Equal(t, 2.0, values["spec_sync_conflicts_total|missing"])
	assert.Equal(t, 1.0, values["spec_sync_conflicts_total|type_mismatch"])
	assert.Equal(t, 0.0, values["spec_sync_conflicts_total|required_mismatch"])
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *metrics.Recorder
	assert.NotPanics(t, func() {
		r.Observe(reconcile.Result{Status: reconcile.StatusSynced})
	})
}

func TestRecorder_Handler(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe(reconcile.Result{Status: reconcile.StatusSynced, Conflicts: []reconcile.Conflict{}})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `spec_sync_reconciliations_total{status="synced"} 1`)
	assert.Equal(t, 7, testutil.CollectAndCount(r.Registry(), "spec_sync_reconciliations_total", "spec_sync_conflicts_total"))
}
