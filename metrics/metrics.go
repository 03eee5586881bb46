package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// DetectionsTotal counts classified uploads by disease and severity.
	DetectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cropguard",
		Subsystem: "detect",
		Name:      "detections_total",
		Help:      "Total number of disease detections served, labeled by disease and severity.",
	}, []string{"disease", "severity"})

	// DetectionsNotRecorded counts detections whose report row failed to persist.
	DetectionsNotRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cropguard",
		Subsystem: "detect",
		Name:      "detections_not_recorded_total",
		Help:      "Total number of detections returned to callers without a persisted report row.",
	})

	// UploadRejectedTotal counts rejected uploads by reason.
	UploadRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cropguard",
		Subsystem: "detect",
		Name:      "upload_rejected_total",
		Help:      "Total number of rejected image uploads, labeled by reason.",
	}, []string{"reason"})

	// WeatherFallbackTotal counts weather lookups answered from fallback data.
	WeatherFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cropguard",
		Subsystem: "weather",
		Name:      "fallback_total",
		Help:      "Total number of weather lookups served from the static fallback table.",
	})

	// RequestDurationSeconds observes handler latency per endpoint.
	RequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cropguard",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds, labeled by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "status"})
)

// Register registers all collectors exactly once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			DetectionsTotal,
			DetectionsNotRecorded,
			UploadRejectedTotal,
			WeatherFallbackTotal,
			RequestDurationSeconds,
		)
	})
}
