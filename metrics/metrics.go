package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coderfest_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "coderfest_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "coderfest_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coderfest_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// RegistrationsAccepted counts successfully stored registrations
	RegistrationsAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coderfest_registrations_accepted_total",
			Help: "Total number of accepted team registrations",
		},
	)

	// RegistrationsRejected counts rejected submissions by failure stage
	RegistrationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coderfest_registrations_rejected_total",
			Help: "Total number of rejected registration submissions",
		},
		[]string{"stage"}, // "validation", "upload", "persistence"
	)

	// ProofUploadDuration measures payment proof storage duration
	ProofUploadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coderfest_proof_upload_duration_seconds",
			Help:    "Payment proof upload duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// EmailFailures counts confirmation emails that could not be sent.
	// Email failures never fail a registration, so this is the only place
	// they are visible besides the logs.
	EmailFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coderfest_email_failures_total",
			Help: "Total number of confirmation emails that failed to send",
		},
	)
)

// RecordProofUpload records the duration of a payment proof upload
func RecordProofUpload(startTime time.Time) {
	ProofUploadDuration.Observe(time.Since(startTime).Seconds())
}
