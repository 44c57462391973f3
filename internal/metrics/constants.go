package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Simulation metric names
const (
	MetricNameTicksTotal        = "growlab_ticks_total"
	MetricNameTickDuration      = "growlab_tick_duration_seconds"
	MetricNameHarvestsTotal     = "growlab_harvests_total"
	MetricNameGramsHarvested    = "growlab_grams_harvested_total"
	MetricNameSalesTotal        = "growlab_sales_total"
	MetricNameGramsSold         = "growlab_grams_sold_total"
	MetricNameRevenueTotal      = "growlab_revenue_total"
	MetricNameDealerEventsTotal = "growlab_dealer_events_total"
	MetricNameLevelUpsTotal     = "growlab_level_ups_total"
	MetricNameOfflineCoins      = "growlab_offline_coins_total"
	MetricNameAutosavesTotal    = "growlab_saves_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Simulation metric help text
const (
	HelpTextTicksTotal        = "Total number of simulation ticks applied"
	HelpTextTickDuration      = "Wall time spent applying one simulation tick"
	HelpTextHarvestsTotal     = "Total number of harvests by rarity"
	HelpTextGramsHarvested    = "Total grams of wet product harvested"
	HelpTextSalesTotal        = "Total number of sales by channel and source"
	HelpTextGramsSold         = "Total grams sold by channel"
	HelpTextRevenueTotal      = "Total coins earned from sales by source"
	HelpTextDealerEventsTotal = "Total dealer narrative outcomes by kind"
	HelpTextLevelUpsTotal     = "Total player levels gained"
	HelpTextOfflineCoins      = "Total coins granted by offline catch-up"
	HelpTextAutosavesTotal    = "Total snapshots written by trigger"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelRarity  = "rarity"
	LabelChannel = "channel"
	LabelSource  = "source"
	LabelKind    = "kind"
	LabelTrigger = "trigger"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets ranges from 10µs to 100ms
var TickLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
