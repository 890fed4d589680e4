package ingestors

import (
	"weblog-analytics/internal/shared/metrics"
)

const resultParsed = "parsed"

var (
	// result is "parsed" or the drop reason
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_total",
		},
		[]string{metrics.FieldSource, metrics.FieldResult},
	)

	metricSourceLoadedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "source_loaded_total",
		},
		[]string{metrics.FieldSource, metrics.FieldErrorCode},
	)
)
