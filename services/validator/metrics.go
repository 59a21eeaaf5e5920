package validator

import (
	"sync"

	"github.com/bsv-blockchain/txhandler/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusValidTransactions   prometheus.Counter
	prometheusInvalidTransactions *prometheus.CounterVec
	prometheusTransactionValidate prometheus.Histogram
)

var prometheusMetricsInitOnce sync.Once

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusValidTransactions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "txhandler",
			Subsystem: "validator",
			Name:      "valid_transactions",
			Help:      "Number of transactions found valid by the validator",
		},
	)

	prometheusInvalidTransactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "txhandler",
			Subsystem: "validator",
			Name:      "invalid_transactions",
			Help:      "Number of transactions found invalid by the validator, by reason",
		},
		[]string{"reason"},
	)

	prometheusTransactionValidate = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "txhandler",
			Subsystem: "validator",
			Name:      "transactions_validate",
			Help:      "Histogram of transaction validation",
			Buckets:   util.MetricsBucketsMicroSeconds,
		},
	)
}
