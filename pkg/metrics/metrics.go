package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JourneyEvents 清单事件处理结果
	JourneyEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nhcc_journey_events_total",
			Help: "Total number of checklist events by outcome",
		},
		[]string{"event", "outcome", "reason"},
	)

	SessionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nhcc_sessions_created_total",
			Help: "Total number of checklist sessions created",
		},
		[]string{"student_type"},
	)

	SessionsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nhcc_sessions_deleted_total",
			Help: "Total number of checklist sessions ended by the client",
		},
	)

	// StoreConflicts 乐观锁冲突次数
	StoreConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nhcc_session_store_conflicts_total",
			Help: "Total number of optimistic lock conflicts on session snapshots",
		},
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nhcc_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"route"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nhcc_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// StudentType 学生类型标签值
func StudentType(isInternational bool) string {
	if isInternational {
		return "international"
	}
	return "domestic"
}
