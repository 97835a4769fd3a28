// Package metrics exposes pipeline counters to prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"LawTracker/internal/domain"
)

const namespace = "lawtracker"

// Pipeline groups the counters updated by a run. A nil *Pipeline is valid
// and records nothing.
type Pipeline struct {
	registry     *prometheus.Registry
	fetched      *prometheus.CounterVec
	sourceErrors *prometheus.CounterVec
	merged       prometheus.Counter
	duplicates   prometheus.Counter
	rejected     prometheus.Counter
	classified   *prometheus.CounterVec
	persistErrs  prometheus.Counter
}

// NewPipeline registers every collector on a private registry.
func NewPipeline() *Pipeline {
	m := &Pipeline{
		registry: prometheus.NewRegistry(),
		fetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_fetched_total",
			Help:      "Raw records returned by each source.",
		}, []string{"source"}),
		sourceErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_errors_total",
			Help:      "Failed fetches per source.",
		}, []string{"source"}),
		merged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_merged_total",
			Help:      "Records surviving cross-source deduplication.",
		}),
		duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_duplicate_total",
			Help:      "Records shadowed by an earlier copy of the same identifier.",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_rejected_total",
			Help:      "Records dropped for a missing identifier.",
		}),
		classified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_classified_total",
			Help:      "Merged records by priority tier.",
		}, []string{"tier"}),
		persistErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_errors_total",
			Help:      "Records that failed to persist.",
		}),
	}
	m.registry.MustRegister(m.fetched, m.sourceErrors, m.merged, m.duplicates,
		m.rejected, m.classified, m.persistErrs)
	return m
}

// Handler serves the registry in the prometheus text format.
func (m *Pipeline) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (m *Pipeline) Registry() *prometheus.Registry {
	return m.registry
}

// Fetched adds n raw records returned by source.
func (m *Pipeline) Fetched(source string, n int) {
	if m != nil {
		m.fetched.WithLabelValues(source).Add(float64(n))
	}
}

// SourceFailed counts one failed fetch for source.
func (m *Pipeline) SourceFailed(source string) {
	if m != nil {
		m.sourceErrors.WithLabelValues(source).Inc()
	}
}

// Merged records the outcome of one cross-source merge.
func (m *Pipeline) Merged(unique, duplicates, rejected int) {
	if m == nil {
		return
	}
	m.merged.Add(float64(unique))
	m.duplicates.Add(float64(duplicates))
	m.rejected.Add(float64(rejected))
}

// Classified counts one merged record in tier.
func (m *Pipeline) Classified(tier domain.PriorityTier) {
	if m != nil {
		m.classified.WithLabelValues(string(tier)).Inc()
	}
}

// PersistFailed counts one record that could not be stored.
func (m *Pipeline) PersistFailed() {
	if m != nil {
		m.persistErrs.Inc()
	}
}
