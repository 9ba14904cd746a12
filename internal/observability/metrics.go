package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the deduplication service.
// Metrics are organized by subsystem: batches, records, groups, and HTTP.
// All counters and histograms are registered via promauto for automatic
// registration with the default Prometheus registry.
type Metrics struct {
	// BatchesProcessed counts deduplication batches processed, labeled by
	// kind ("records" or "table").
	BatchesProcessed *prometheus.CounterVec

	// BatchDuration observes how long one batch took, in seconds, labeled by kind.
	BatchDuration *prometheus.HistogramVec

	// BatchSize observes the number of input records per batch, labeled by kind.
	BatchSize *prometheus.HistogramVec

	// RecordsProcessed counts the total number of input records seen.
	RecordsProcessed prometheus.Counter

	// DuplicatesRemoved counts the total number of records collapsed away.
	DuplicatesRemoved prometheus.Counter

	// DuplicateGroups counts the total number of duplicate groups formed.
	DuplicateGroups prometheus.Counter

	// GroupSize observes the size distribution of duplicate groups.
	GroupSize prometheus.Histogram

	// HTTPRequestsTotal counts HTTP requests, labeled by route and status code.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes HTTP request duration in seconds, labeled by route.
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsRateLimited counts requests rejected by the rate limiter.
	HTTPRequestsRateLimited prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The namespace is used as a prefix for all metric names.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		// Batches
		BatchesProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_processed_total",
			Help:      "Total number of deduplication batches processed by kind",
		}, []string{"kind"}),
		BatchDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Duration of deduplication batches in seconds by kind",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		}, []string{"kind"}),
		BatchSize: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size_records",
			Help:      "Number of input records per deduplication batch by kind",
			Buckets:   []float64{1, 10, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"kind"}),

		// Records
		RecordsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_processed_total",
			Help:      "Total number of input records processed",
		}),
		DuplicatesRemoved: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicates_removed_total",
			Help:      "Total number of duplicate records collapsed away",
		}),
		DuplicateGroups: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_groups_total",
			Help:      "Total number of duplicate groups formed",
		}),
		GroupSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "duplicate_group_size",
			Help:      "Size distribution of duplicate groups",
			Buckets:   []float64{2, 3, 4, 5, 7, 10, 20, 50},
		}),

		// HTTP
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status code",
		}, []string{"route", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds by route",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		}, []string{"route"}),
		HTTPRequestsRateLimited: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_rate_limited_total",
			Help:      "Total number of HTTP requests rejected by the rate limiter",
		}),
	}
}

// RecordBatch records a completed deduplication batch of the given kind.
func (m *Metrics) RecordBatch(kind string, inputCount, duplicatesRemoved int, groupSizes []int, durationSeconds float64) {
	m.BatchesProcessed.WithLabelValues(kind).Inc()
	m.BatchDuration.WithLabelValues(kind).Observe(durationSeconds)
	m.BatchSize.WithLabelValues(kind).Observe(float64(inputCount))
	m.RecordsProcessed.Add(float64(inputCount))
	m.DuplicatesRemoved.Add(float64(duplicatesRemoved))
	m.DuplicateGroups.Add(float64(len(groupSizes)))
	for _, size := range groupSizes {
		m.GroupSize.Observe(float64(size))
	}
}

// RecordHTTPRequest records an HTTP request outcome.
func (m *Metrics) RecordHTTPRequest(route, status string, durationSeconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(durationSeconds)
}

// RecordRateLimited records a request rejected by the rate limiter.
func (m *Metrics) RecordRateLimited() {
	m.HTTPRequestsRateLimited.Inc()
}
