package aggregators

import (
	"net-profiler/internal/shared/metrics"
)

var (
	// metricSummaryBuiltTotal counts background summary builds by outcome.
	metricSummaryBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "summary_built_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricSegmentBuildSeconds observes how long it takes to turn a stored trace into the segment
	// a request asked for, labelled by operation (summary, segment, report, performance).
	metricSegmentBuildSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProfile,
			Name:      "segment_build_seconds",
			Buckets:   metrics.ExponentialBuckets(0.001, 2, 14),
		},
		[]string{"operation"},
	)

	metricProfileQueryTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProfile,
			Name:      "query_total",
		},
		[]string{"operation", metrics.FieldErrorCode},
	)
)

const (
	operationSummary     = "summary"
	operationSegment     = "segment"
	operationReport      = "report"
	operationPerformance = "performance"
)
