// Package metrics defines Prometheus metrics for the allcascais directory.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "allcascais"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Directory gauges, refreshed by the stats scheduler.
var (
	ServicesVisible = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "services_visible",
		Help:      "Number of services currently shown in the public directory.",
	})

	RatingsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ratings_total",
		Help:      "Number of service ratings stored.",
	})

	OffersCurrent = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "offers_current",
		Help:      "Number of offers that have not passed their valid-until date.",
	})

	PropertiesActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "properties_active",
		Help:      "Number of property listings with active status.",
	})

	SearchRequestsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "search_requests_total",
		Help:      "Number of property search requests received.",
	})
)

// Health endpoint gauges (1 = passing, 0 = failing).
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last /readyz probe succeeded.",
	})
)

// Upload metrics.
var (
	UploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of files stored by the upload endpoint.",
	})

	UploadFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upload_failures_total",
		Help:      "Total number of upload files that failed to store.",
	})
)

// Rating submission metrics.
var (
	RatingConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rating_conflicts_total",
		Help:      "Total number of rejected duplicate rating submissions.",
	})
)
