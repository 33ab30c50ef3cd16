// Package metrics holds the Prometheus collectors shared by the services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultError   = "error"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mindcare_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mindcare_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Session metrics
	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mindcare_signups_total",
			Help: "Signup attempts by result",
		},
		[]string{"result"},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mindcare_logins_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	ActiveProfiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mindcare_profiles_active",
			Help: "Number of profiles held in memory",
		},
	)

	// Feature metrics
	ChatRepliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mindcare_chat_replies_total",
			Help: "Chat replies by outcome (topic, or discarded)",
		},
		[]string{"topic"},
	)

	StressChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mindcare_stress_checks_total",
			Help: "Stress checks by mode and whether the result was substituted",
		},
		[]string{"mode", "substituted"},
	)

	MoodCheckinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mindcare_mood_checkins_total",
			Help: "Mood check-ins by mood",
		},
		[]string{"mood"},
	)

	BookingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mindcare_bookings_total",
			Help: "Total number of counselor bookings submitted",
		},
	)

	ForumPostsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mindcare_forum_posts_total",
			Help: "Total number of forum posts created",
		},
	)

	HelplineCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mindcare_helpline_calls_total",
			Help: "Simulated helpline calls by number",
		},
		[]string{"number"},
	)

	ResourceSearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mindcare_resource_searches_total",
			Help: "Total number of filtered resource library searches",
		},
	)
)
