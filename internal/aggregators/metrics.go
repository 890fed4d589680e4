package aggregators

import (
	"weblog-analytics/internal/shared/metrics"
)

const (
	resultInDay    = "in_day"
	resultOutOfDay = "out_of_day"
)

var (
	// metricRecordsAggregatedTotal counts records seen by the bucket aggregator, split by whether
	// they fell on the requested day. A dashboard for 2024-10-10 built over a log spanning three
	// days reports most records as out_of_day.
	metricRecordsAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_total",
		},
		[]string{metrics.FieldResult},
	)

	metricDashboardBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "dashboard_built_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
