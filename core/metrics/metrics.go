package metrics

import (
	"net/http"

	"spec-sync/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "spec_sync"

// Config holds configuration for metrics exposition.
type Config struct {
	// Enabled toggles the /metrics endpoint.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Path is the route the exposition handler is mounted on.
	Path string `mapstructure:"path" default:"/metrics"`
}

// Recorder records reconciliation results. A nil *Recorder is a no-op.
type Recorder struct {
	registry        *prometheus.Registry
	reconciliations *prometheus.CounterVec
	conflicts       *prometheus.CounterVec
}

// NewRecorder creates a Recorder backed by a fresh registry that also carries
// the Go runtime and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		reconciliations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliations_total",
			Help:      "Number of reconciliations by resulting endpoint status.",
		}, []string{"status"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflicts_total",
			Help:      "Number of conflicts detected by conflict type.",
		}, []string{"type"}),
	}

	r.registry.MustRegister(
		r.reconciliations,
		r.conflicts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Pre-populate label values so every series is exported from startup.
	for _, s := range reconcile.Statuses {
		r.reconciliations.WithLabelValues(string(s))
	}
	for _, t := range reconcile.ConflictTypes {
		r.conflicts.WithLabelValues(string(t))
	}

	return r
}

// Observe records one reconciliation result.
func (r *Recorder) Observe(result reconcile.Result) {
	if r == nil {
		return
	}
	r.reconciliations.WithLabelValues(string(result.Status)).Inc()
	for t, n := range result.CountByType() {
		r.conflicts.WithLabelValues(string(t)).Add(float64(n))
	}
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler returns the Prometheus exposition handler for this recorder.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
