package streams

import (
	"net-profiler/internal/shared/metrics"
)

var (
	streamTraceIngested = "trace_ingested"

	metricEventProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "event_published_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	metricEventConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "event_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
