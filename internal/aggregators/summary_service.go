package aggregators

import (
	"context"
	"errors"
	"time"

	"net-profiler/internal/events"
	"net-profiler/internal/shared/loggers"
	"net-profiler/internal/shared/metrics"
	"net-profiler/internal/shared/svcerrors"
	"net-profiler/internal/stores"
)

// Settings are the trace interpretation settings shared by the aggregation services.
type Settings struct {
	// ExemptSocketName names the socket whose sends are accounted apart from all others.
	ExemptSocketName    string
	PacketOverheadBytes int64
}

// SummaryService computes the whole-trace summary of a freshly ingested trace and persists it.
// It is driven by the trace event consumer; rebuilding a summary overwrites the previous one.
//
//go:generate mockgen -source=summary_service.go -destination=./mocks/summary_service_mock.go -package=mocks
type SummaryService interface {
	Aggregate(ctx context.Context, event *events.TraceIngestedEvent) *svcerrors.ServiceError
}

type summaryService struct {
	settings     Settings
	traceStore   stores.TraceStore
	summaryStore stores.SummaryStore
	traceCatalog stores.TraceCatalog
}

func NewSummaryService(settings Settings, traceStore stores.TraceStore, summaryStore stores.SummaryStore, traceCatalog stores.TraceCatalog) SummaryService {
	return &summaryService{
		settings:     settings,
		traceStore:   traceStore,
		summaryStore: summaryStore,
		traceCatalog: traceCatalog,
	}
}

func (s *summaryService) Aggregate(ctx context.Context, event *events.TraceIngestedEvent) *svcerrors.ServiceError {
	svcErr := s.aggregate(ctx, event)
	if svcErr != nil {
		metricSummaryBuiltTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}
	metricSummaryBuiltTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return nil
}

func (s *summaryService) aggregate(ctx context.Context, event *events.TraceIngestedEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldTraceID, event.TraceID).Int(loggers.FieldTokenCount, event.TokenCount).Msg("started summarizing trace")

	trace, err := s.traceStore.Get(ctx, event.TraceID)
	if err != nil {
		if errors.Is(err, stores.ErrTraceNotFound) {
			return errTraceNotFound(err)
		}
		return errInternalTraceStoreFailed(err)
	}

	started := time.Now()
	view := newTraceView(trace, s.settings.ExemptSocketName)
	segment, err := view.whole()
	if err != nil {
		return errInternalCorruptTrace(err)
	}

	summarizedAt := time.Now().UTC()
	summary := newSegmentSummary(trace.TraceID, segment, s.settings.PacketOverheadBytes)
	addActorStatistics(summary, trace.Tokens)
	summary.SummarizedAt = &summarizedAt
	metricSegmentBuildSeconds.WithLabelValues(operationSummary).Observe(time.Since(started).Seconds())

	if err := s.summaryStore.Upsert(ctx, summary); err != nil {
		return errInternalSummaryStoreFailed(err)
	}
	if err := s.traceCatalog.MarkSummarized(ctx, trace.TraceID, summarizedAt); err != nil {
		return errInternalCatalogFailed(err)
	}

	logger.Info().
		Str(loggers.FieldTraceID, trace.TraceID).
		Int(loggers.FieldFrameCount, summary.NumFrames).
		Int(loggers.FieldExemptSocket, view.exemptSocket).
		Msg("trace summarized")
	return nil
}
