package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SearchMetrics counts aggregated offer searches. All record methods are
// nil-safe so instrumentation stays optional.
type SearchMetrics struct {
	SearchesTotal       prometheus.Counter
	SourceFailuresTotal *prometheus.CounterVec
	OffersReturned      prometheus.Histogram
	SearchDuration      prometheus.Histogram
}

// NewSearchMetrics registers search metrics with the given registerer
func NewSearchMetrics(reg prometheus.Registerer, prefix string) *SearchMetrics {
	factory := promauto.With(reg)
	return &SearchMetrics{
		SearchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_offer_searches_total",
			Help: "Total number of aggregated offer searches",
		}),
		SourceFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_offer_source_failures_total",
			Help: "Total number of per-source lookup failures",
		}, []string{"source"}),
		OffersReturned: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    prefix + "_offers_returned",
			Help:    "Number of offers returned per aggregated search",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    prefix + "_offer_search_duration_seconds",
			Help:    "Duration of aggregated offer searches in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveSearch records one completed aggregated search
func (m *SearchMetrics) ObserveSearch(offers int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.SearchesTotal.Inc()
	m.OffersReturned.Observe(float64(offers))
	m.SearchDuration.Observe(elapsed.Seconds())
}

// ObserveSourceFailure records one failed source lookup
func (m *SearchMetrics) ObserveSourceFailure(source string) {
	if m == nil {
		return
	}
	m.SourceFailuresTotal.WithLabelValues(source).Inc()
}

// PlanMetrics counts cart optimizations
type PlanMetrics struct {
	OptimizationsTotal  prometheus.Counter
	OptimizationErrors  prometheus.Counter
	OptimizationSeconds prometheus.Histogram
}

// NewPlanMetrics registers optimizer metrics with the given registerer
func NewPlanMetrics(reg prometheus.Registerer, prefix string) *PlanMetrics {
	factory := promauto.With(reg)
	return &PlanMetrics{
		OptimizationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_optimizations_total",
			Help: "Total number of cart optimizations",
		}),
		OptimizationErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_optimization_errors_total",
			Help: "Total number of failed cart optimizations",
		}),
		OptimizationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    prefix + "_optimization_duration_seconds",
			Help:    "Duration of cart optimizations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveOptimization records one completed optimization
func (m *PlanMetrics) ObserveOptimization(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.OptimizationsTotal.Inc()
	m.OptimizationSeconds.Observe(elapsed.Seconds())
}

// ObserveError records one failed optimization
func (m *PlanMetrics) ObserveError() {
	if m == nil {
		return
	}
	m.OptimizationErrors.Inc()
}
