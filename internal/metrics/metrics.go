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
)

// Cultivation Metrics
var (
	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsStarted,
			Help: HelpTextSessionsStarted,
		},
	)

	SessionsEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsEnded,
			Help: HelpTextSessionsEnded,
		},
		[]string{LabelTruncated},
	)

	SessionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSessionDuration,
			Help:    HelpTextSessionDuration,
			Buckets: SessionDurationBuckets,
		},
	)

	ExpGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExpGranted,
			Help: HelpTextExpGranted,
		},
	)

	RealmAdvancements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRealmAdvancements,
			Help: HelpTextRealmAdvancements,
		},
		[]string{LabelRealm},
	)

	DailyResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyResets,
			Help: HelpTextDailyResets,
		},
	)
)

// Weather Metrics
var (
	WeatherLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWeatherLookups,
			Help: HelpTextWeatherLookups,
		},
		[]string{LabelResult},
	)

	WeatherFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWeatherFallbacks,
			Help: HelpTextWeatherFallbacks,
		},
		[]string{LabelReason},
	)
)
