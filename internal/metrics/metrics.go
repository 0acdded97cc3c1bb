package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	ExpGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExpGranted,
			Help: HelpTextExpGranted,
		},
		[]string{LabelActivity},
	)

	ExpDeducted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExpDeducted,
			Help: HelpTextExpDeducted,
		},
		[]string{LabelActivity},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	PunishmentsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePunishmentsApplied,
			Help: HelpTextPunishmentsApplied,
		},
		[]string{LabelCategory, LabelSeverity},
	)

	PunishmentsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePunishmentsResolved,
			Help: HelpTextPunishmentsResolved,
		},
		[]string{LabelCategory},
	)

	HonorRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHonorRecovered,
			Help: HelpTextHonorRecovered,
		},
	)

	BossBattles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBossBattles,
			Help: HelpTextBossBattles,
		},
		[]string{LabelBossType},
	)

	LeaderboardRefreshes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardRefresh,
			Help: HelpTextLeaderboardRefresh,
		},
	)
)
