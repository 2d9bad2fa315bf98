// SPDX-License-Identifier: MIT

package observe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pathsearch"

// Metrics records per-search Prometheus series, all namespaced "pathsearch_":
//
//	searches_total{algorithm,outcome}        counter
//	search_duration_seconds{algorithm}       histogram
//	vertices_expanded{algorithm}             histogram of store lookups
//	path_length{algorithm}                   histogram of vertices per result
//
// A nil *Metrics records nothing.
type Metrics struct {
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
	expanded *prometheus.HistogramVec
	length   *prometheus.HistogramVec
}

// NewMetrics creates and registers the series with reg; nil means
// prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Searches run, by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of a single search",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"algorithm"}),
		expanded: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "vertices_expanded",
			Help:      "Store lookups performed by a single search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		length: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_length",
			Help:      "Vertices on each returned path or neighbourhood entry count",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
	}
}

// Search is one finished search as seen by Observe.
type Search struct {
	Algorithm string
	Err       error
	Duration  time.Duration
	Lookups   int64
	Lengths   []int
}

// Observe records s.
func (m *Metrics) Observe(s Search) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(s.Algorithm, Outcome(s.Err)).Inc()
	m.duration.WithLabelValues(s.Algorithm).Observe(s.Duration.Seconds())
	m.expanded.WithLabelValues(s.Algorithm).Observe(float64(s.Lookups))
	for _, n := range s.Lengths {
		m.length.WithLabelValues(s.Algorithm).Observe(float64(n))
	}
}
