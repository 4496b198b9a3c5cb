package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "tubeseo"

	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 120},
		},
		[]string{"method", "endpoint"},
	)

	// Generations are labelled by where the metadata came from.
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "metadata",
			Name:      "generations_total",
			Help:      "Total metadata generations",
		},
		[]string{"source", "category", "status"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "youtube",
			Name:      "uploads_total",
			Help:      "Total video uploads",
		},
		[]string{"status"},
	)

	UploadBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "youtube",
			Name:      "upload_bytes_total",
			Help:      "Total video bytes sent to YouTube",
		},
	)

	OAuthCallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "oauth",
			Name:      "callbacks_total",
			Help:      "Total OAuth callbacks by outcome",
		},
		[]string{"result"},
	)
)

func RecordRequest(method, endpoint, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

func RecordGeneration(source, category string, err error) {
	GenerationsTotal.WithLabelValues(source, category, outcome(err)).Inc()
}

// RecordUpload counts an upload; status is "published", "scheduled" or "error".
func RecordUpload(status string, size int64) {
	UploadsTotal.WithLabelValues(status).Inc()
	if size > 0 {
		UploadBytesTotal.Add(float64(size))
	}
}

func RecordOAuthCallback(result string) {
	OAuthCallbacksTotal.WithLabelValues(result).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
