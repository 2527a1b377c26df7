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

// Store Metrics
var (
	FavoriteToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFavoriteToggles,
			Help: HelpTextFavoriteToggles,
		},
		[]string{LabelAction},
	)

	FavoritesCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameFavoritesCount,
			Help: HelpTextFavoritesCount,
		},
	)

	CustomRecipeOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCustomRecipeOps,
			Help: HelpTextCustomRecipeOps,
		},
		[]string{LabelOp, LabelResult},
	)

	CustomRecipesCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCustomRecipesCount,
			Help: HelpTextCustomRecipesCount,
		},
	)
)

// Storage Metrics
var (
	StorageOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStorageOps,
			Help: HelpTextStorageOps,
		},
		[]string{LabelBackend, LabelOp, LabelResult},
	)

	StorageOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameStorageOpDuration,
			Help:    HelpTextStorageOpDuration,
			Buckets: StorageLatencyBuckets,
		},
		[]string{LabelBackend, LabelOp},
	)

	StorageCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStorageCacheLookups,
			Help: HelpTextStorageCacheLookups,
		},
		[]string{LabelResult},
	)
)

// Result returns the result label value for err
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
