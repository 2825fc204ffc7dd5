package streams

import (
	"context"

	"net-profiler/internal/events"
	"net-profiler/internal/shared/metrics"
)

const codePublishFailed = "STR_9000"

// TraceEventProducer publishes TraceIngestedEvents to the partitioned queue, keyed by trace ID.
//
// Every event of one trace goes to the same partition, and each partition has a single consumer
// worker, so summaries of one trace are never computed concurrently while different traces are
// summarized in parallel.
//
//go:generate mockgen -source=trace_event_producer.go -destination=./mocks/trace_event_producer_mock.go -package=mocks
type TraceEventProducer interface {
	Produce(ctx context.Context, event *events.TraceIngestedEvent) error
}

type traceEventProducer struct {
	queue *PartitionedQueue[events.TraceIngestedEvent]
}

func NewTraceEventProducer(queue *PartitionedQueue[events.TraceIngestedEvent]) TraceEventProducer {
	return &traceEventProducer{
		queue: queue,
	}
}

func (producer *traceEventProducer) Produce(ctx context.Context, event *events.TraceIngestedEvent) error {
	if err := producer.queue.Publish(ctx, event.PartitionKey(), *event); err != nil {
		metricEventProducedTotal.WithLabelValues(streamTraceIngested, codePublishFailed).Inc()
		return err
	}
	metricEventProducedTotal.WithLabelValues(streamTraceIngested, metrics.ValueNoError).Inc()
	return nil
}
