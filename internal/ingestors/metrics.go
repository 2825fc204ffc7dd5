package ingestors

import (
	"net-profiler/internal/shared/metrics"
)

var (
	metricTraceIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "trace_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricTokenIngestedTotal counts decoded tokens of accepted traces by token kind.
	metricTokenIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "token_ingested_total",
		},
		[]string{"kind"},
	)

	metricUploadBytes = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "upload_bytes",
			Buckets:   metrics.ExponentialBuckets(1024, 4, 10),
		},
		[]string{},
	)
)
