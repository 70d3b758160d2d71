// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Stream operation metrics
	CropsTotal      *prometheus.CounterVec
	ResamplesTotal  *prometheus.CounterVec
	RowsProcessed   *prometheus.CounterVec
	OperationErrors *prometheus.CounterVec

	// Latency metrics
	OperationDuration *prometheus.HistogramVec

	// Archive metrics
	SamplesStored   *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	// Pipeline metrics
	PipelineRunsTotal *prometheus.CounterVec
	PipelineDuration  prometheus.Histogram
	ReportsGenerated  prometheus.Counter

	// Health metrics
	LastSuccessfulRun prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "eye_stream_lab"
	}

	return &Metrics{
		CropsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "crops_total",
			Help:      "Total number of crop operations by stream kind",
		}, []string{"kind"}),
		ResamplesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "resamples_total",
			Help:      "Total number of resample operations by stream kind",
		}, []string{"kind"}),
		RowsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "rows_processed_total",
			Help:      "Total number of sample rows processed by stream kind",
		}, []string{"kind"}),
		OperationErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "operation_errors_total",
			Help:      "Total number of failed stream operations",
		}, []string{"operation", "kind"}),

		OperationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "operation_duration_seconds",
			Help:      "Stream operation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "kind"}),

		SamplesStored: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "archive",
			Name:      "samples_stored_total",
			Help:      "Total number of samples written to the archive",
		}, []string{"kind"}),
		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"database", "operation"}),
		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_errors_total",
			Help:      "Total number of database query errors",
		}, []string{"database", "operation"}),

		PipelineRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Total number of pipeline runs by status",
		}, []string{"status"}),
		PipelineDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "Pipeline execution duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		}),
		ReportsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "reports_generated_total",
			Help:      "Total number of reports generated",
		}),

		LastSuccessfulRun: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_run_timestamp",
			Help:      "Unix timestamp of last successful pipeline run",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordCrop increments the crop counter for a stream kind.
func RecordCrop(kind string, rows int) {
	DefaultMetrics.CropsTotal.WithLabelValues(kind).Inc()
	DefaultMetrics.RowsProcessed.WithLabelValues(kind).Add(float64(rows))
}

// RecordResample increments the resample counter for a stream kind.
func RecordResample(kind string, rows int) {
	DefaultMetrics.ResamplesTotal.WithLabelValues(kind).Inc()
	DefaultMetrics.RowsProcessed.WithLabelValues(kind).Add(float64(rows))
}

// RecordOperationError records a failed stream operation.
func RecordOperationError(operation, kind string) {
	DefaultMetrics.OperationErrors.WithLabelValues(operation, kind).Inc()
}

// RecordSamplesStored records samples written to the archive.
func RecordSamplesStored(kind string, count int) {
	DefaultMetrics.SamplesStored.WithLabelValues(kind).Add(float64(count))
}

// RecordDBQuery records database query metrics.
func RecordDBQuery(database, operation string, seconds float64, err error) {
	DefaultMetrics.DBQueryDuration.WithLabelValues(database, operation).Observe(seconds)
	if err != nil {
		DefaultMetrics.DBQueryErrors.WithLabelValues(database, operation).Inc()
	}
}

// RecordPipelineRun records a pipeline run.
func RecordPipelineRun(status string, durationSeconds float64) {
	DefaultMetrics.PipelineRunsTotal.WithLabelValues(status).Inc()
	DefaultMetrics.PipelineDuration.Observe(durationSeconds)
}
