package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"net-profiler/internal/aggregators"
	"net-profiler/internal/events"
	"net-profiler/internal/shared/loggers"
	"net-profiler/internal/shared/metrics"
	"net-profiler/internal/shared/svcerrors"
	"net-profiler/internal/shared/ulid"
)

//go:generate mockgen -source=trace_event_consumer.go -destination=./mocks/trace_event_consumer_mock.go -package=mocks
type TraceEventConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type traceEventConsumer struct {
	queue          *PartitionedQueue[events.TraceIngestedEvent]
	summaryService aggregators.SummaryService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewTraceEventConsumer(queue *PartitionedQueue[events.TraceIngestedEvent], summaryService aggregators.SummaryService, logger loggers.Logger) TraceEventConsumer {
	return &traceEventConsumer{
		queue:          queue,
		summaryService: summaryService,
		stopCh:         make(chan struct{}),
		logger:         logger,
	}
}

// Start spawns one worker goroutine per partition.
func (consumer *traceEventConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.Partition(partitionIndex)
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop signals the workers and waits for them to return. Events still queued are dropped; their
// traces stay unsummarized until re-uploaded.
func (consumer *traceEventConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *traceEventConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.TraceIngestedEvent) {
	workerLogger := consumer.logger.With().Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).Logger()

	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, workerLogger, &event)
		}
	}
}

func (consumer *traceEventConsumer) handle(ctx context.Context, workerLogger loggers.Logger, event *events.TraceIngestedEvent) {
	eventCtx := workerLogger.With().
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldTraceID, event.TraceID).
		Logger().WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(eventCtx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricEventConsumedTotal.WithLabelValues(streamTraceIngested, svcErr.Code).Inc()
		}
	}()

	svcErr := consumer.summaryService.Aggregate(eventCtx, event)
	if svcErr != nil {
		loggers.Ctx(eventCtx).Error().Err(svcErr).Str(loggers.FieldErrorCode, svcErr.Code).Msg("trace summary failed")
		metricEventConsumedTotal.WithLabelValues(streamTraceIngested, svcErr.Code).Inc()
		return
	}
	metricEventConsumedTotal.WithLabelValues(streamTraceIngested, metrics.ValueNoError).Inc()
}
