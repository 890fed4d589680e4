package streams

import (
	"weblog-analytics/internal/shared/metrics"
)

var (
	streamSnapshot              = "snapshot"
	metricSnapshotProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "snapshot_published_total",
		},
		[]string{"stream_id"},
	)

	// metricSnapshotReplacedTotal counts snapshots overwritten in the queue before the consumer
	// took them.
	metricSnapshotReplacedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "snapshot_replaced_total",
		},
		[]string{"stream_id"},
	)

	metricSnapshotConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "snapshot_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	metricLatestSnapshotGeneratedAt = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "latest_snapshot_generated_at_seconds",
			Help:      "Unix time at which the snapshot currently served was generated.",
		},
	)
)
