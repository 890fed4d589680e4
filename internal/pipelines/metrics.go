package pipelines

import (
	"weblog-analytics/internal/shared/metrics"
)

const (
	resultOK         = "ok"
	resultFailed     = "failed"
	resultInProgress = "in_progress"
)

var (
	metricPassTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "passes_total",
		},
		[]string{metrics.FieldResult},
	)

	metricPassDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "pass_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldResult},
	)

	// metricTicksSkippedTotal counts refresher ticks that found a pass still running.
	metricTicksSkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "ticks_skipped_total",
		},
		[]string{},
	)
)
