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

// Simulation Metrics
var (
	TicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTicksTotal,
			Help: HelpTextTicksTotal,
		},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickLatencyBuckets,
		},
	)

	HarvestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvestsTotal,
			Help: HelpTextHarvestsTotal,
		},
		[]string{LabelRarity},
	)

	GramsHarvested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGramsHarvested,
			Help: HelpTextGramsHarvested,
		},
	)

	SalesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSalesTotal,
			Help: HelpTextSalesTotal,
		},
		[]string{LabelChannel, LabelSource},
	)

	GramsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGramsSold,
			Help: HelpTextGramsSold,
		},
		[]string{LabelChannel},
	)

	RevenueTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRevenueTotal,
			Help: HelpTextRevenueTotal,
		},
		[]string{LabelSource},
	)

	DealerEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDealerEventsTotal,
			Help: HelpTextDealerEventsTotal,
		},
		[]string{LabelKind},
	)

	LevelUpsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUpsTotal,
			Help: HelpTextLevelUpsTotal,
		},
	)

	OfflineCoins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOfflineCoins,
			Help: HelpTextOfflineCoins,
		},
	)

	SavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAutosavesTotal,
			Help: HelpTextAutosavesTotal,
		},
		[]string{LabelTrigger},
	)
)
