package txhandler

import (
	"sync"

	"github.com/bsv-blockchain/txhandler/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusHandleBatch          *prometheus.HistogramVec
	prometheusBatchSize            prometheus.Histogram
	prometheusAcceptedTransactions *prometheus.CounterVec
	prometheusRejectedTransactions *prometheus.CounterVec
	prometheusPoolSize             prometheus.Gauge
)

var prometheusMetricsInitOnce sync.Once

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusHandleBatch = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "txhandler",
			Subsystem: "handler",
			Name:      "handle_batch",
			Help:      "Histogram of batch handling, by policy",
			Buckets:   util.MetricsBucketsMilliSeconds,
		},
		[]string{"policy"},
	)

	prometheusBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "txhandler",
			Subsystem: "handler",
			Name:      "batch_size",
			Help:      "Number of candidate transactions per batch",
			Buckets:   util.MetricsBucketsSizeSmall,
		},
	)

	prometheusAcceptedTransactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "txhandler",
			Subsystem: "handler",
			Name:      "accepted_transactions",
			Help:      "Number of transactions accepted into the pool, by policy",
		},
		[]string{"policy"},
	)

	prometheusRejectedTransactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "txhandler",
			Subsystem: "handler",
			Name:      "rejected_transactions",
			Help:      "Number of candidate transactions rejected, by reason",
		},
		[]string{"reason"},
	)

	prometheusPoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "txhandler",
			Subsystem: "handler",
			Name:      "pool_size",
			Help:      "Number of unspent outputs in the pool after the last batch",
		},
	)
}
