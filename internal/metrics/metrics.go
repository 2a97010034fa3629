package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tessalp_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tessalp_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CheckinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tessalp_checkins_total",
			Help: "Total number of member check-ins",
		},
		[]string{"gym_id"},
	)

	AccessRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tessalp_access_requests_total",
			Help: "Total number of coach access requests created",
		},
	)

	AccessRequestDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tessalp_access_request_decisions_total",
			Help: "Total number of access request decisions",
		},
		[]string{"status"},
	)

	GymLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tessalp_gym_logins_total",
			Help: "Total number of gym admin login attempts",
		},
		[]string{"outcome"},
	)

	MembershipPurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tessalp_membership_purchases_total",
			Help: "Total number of membership purchases recorded",
		},
		[]string{"plan"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tessalp_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tessalp_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

// RecordHTTPRequest records a completed request in both the counter and the
// duration histogram.
func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}
