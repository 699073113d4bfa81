// Package observability holds the Prometheus collectors for storage calls.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes recorded for a storage call.
const (
	OutcomeOK          = "ok"
	OutcomeAbsent      = "absent"
	OutcomeConstraint  = "constraint"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

var (
	storageOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness",
		Subsystem: "storage",
		Name:      "operations_total",
		Help:      "Storage calls made through the persistence port, labeled by entity, operation and outcome.",
	}, []string{"entity", "operation", "outcome"})

	storageLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fitness",
		Subsystem: "storage",
		Name:      "operation_duration_seconds",
		Help:      "Latency of storage calls made through the persistence port.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"entity", "operation"})

	lastWriteGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "fitness",
		Subsystem: "storage",
		Name:      "last_write_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful write, labeled by entity.",
	}, []string{"entity"})
)

func init() {
	prometheus.MustRegister(storageOperations, storageLatency, lastWriteGauge)
}

// ObserveStorage records one storage call that began at started.
func ObserveStorage(entity, operation, outcome string, started time.Time) {
	storageOperations.WithLabelValues(entity, operation, outcome).Inc()
	storageLatency.WithLabelValues(entity, operation).Observe(time.Since(started).Seconds())
}

// RecordWrite updates the write watermark for entity.
func RecordWrite(entity string, ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastWriteGauge.WithLabelValues(entity).Set(float64(ts.Unix()))
}
