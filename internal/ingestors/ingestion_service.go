package ingestors

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"net-profiler/internal/events"
	"net-profiler/internal/models"
	"net-profiler/internal/shared/loggers"
	"net-profiler/internal/shared/metrics"
	"net-profiler/internal/shared/svcerrors"
	"net-profiler/internal/shared/ulid"
	"net-profiler/internal/shared/validators"
	"net-profiler/internal/stores"
	"net-profiler/internal/streams"
)

// IngestResult represents the result of a trace upload.
type IngestResult struct {
	TraceID    string
	UploadedAt time.Time
	TokenCount int
	NameCount  int
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestTrace decodes, stores and catalogs an uploaded trace, then schedules its summary.
	// A non-empty idempotencyKey becomes the trace ID.
	IngestTrace(ctx context.Context, uploaderAgent string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	decoder            TraceDecoder
	traceStore         stores.TraceStore
	catalog            stores.TraceCatalog
	traceEventProducer streams.TraceEventProducer
	validate           *validators.Validate
	now                func() time.Time
}

func NewIngestionService(decoder TraceDecoder, traceStore stores.TraceStore, catalog stores.TraceCatalog, traceEventProducer streams.TraceEventProducer) IngestionService {
	return &ingestionService{
		decoder:            decoder,
		traceStore:         traceStore,
		catalog:            catalog,
		traceEventProducer: traceEventProducer,
		validate:           validators.New(),
		now:                func() time.Time { return time.Now().UTC() },
	}
}

func (s *ingestionService) IngestTrace(ctx context.Context, uploaderAgent string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting trace with idempotency key: %s, format: %s", idempotencyKey, format)

	uploadedAt := s.now()
	traceID := strings.TrimSpace(idempotencyKey)
	if traceID == "" {
		traceID = ulid.NewTraceID(uploadedAt)
	} else if err := s.validate.Var(traceID, models.TraceIDRules); err != nil {
		return nil, s.fail(errValidationFailed("invalid idempotency key: must be alphanumeric or a UUID of at most 64 characters", err))
	}

	trace, err := s.decoder.Decode(format, r)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			return nil, s.fail(svcErr)
		}
		return nil, s.fail(errValidationFailed("failed to decode trace", err))
	}
	trace.TraceID = traceID
	trace.UploadedAt = uploadedAt

	if err := s.traceStore.Put(ctx, trace); err != nil {
		if errors.Is(err, stores.ErrTraceAlreadyExist) {
			return nil, s.fail(errTraceAlreadyUploaded(err))
		}
		return nil, s.fail(errInternalTraceStoreFailed(err))
	}

	entry := &models.TraceCatalogEntry{
		TraceID:       traceID,
		UploadedAt:    trace.UploadedAt,
		UploaderAgent: normalizeUploaderAgent(uploaderAgent),
		TokenCount:    len(trace.Tokens),
		NameCount:     len(trace.Names),
	}
	if err := s.catalog.Register(ctx, entry); err != nil {
		// the blob is useless without its catalog entry
		s.rollbackTrace(ctx, traceID)
		if errors.Is(err, stores.ErrCatalogEntryAlreadyExist) {
			return nil, s.fail(errTraceAlreadyUploaded(err))
		}
		return nil, s.fail(errInternalTraceCatalogFailed(err))
	}

	event := &events.TraceIngestedEvent{
		TraceID:    traceID,
		UploadedAt: trace.UploadedAt,
		TokenCount: entry.TokenCount,
		NameCount:  entry.NameCount,
	}
	if err := s.traceEventProducer.Produce(ctx, event); err != nil {
		// nothing would ever summarize the trace, so undo the upload and let the client retry
		rollbackCtx := context.WithoutCancel(ctx)
		s.rollbackCatalogEntry(rollbackCtx, traceID)
		s.rollbackTrace(rollbackCtx, traceID)
		return nil, s.fail(errInternalTraceEventPublishFailed(err))
	}

	countTokens(trace.Tokens)
	metricTraceIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().
		Str(loggers.FieldTraceID, traceID).
		Int(loggers.FieldTokenCount, entry.TokenCount).
		Int(loggers.FieldNameCount, entry.NameCount).
		Str(loggers.FieldUploader, entry.UploaderAgent).
		Msg("trace ingested")

	return &IngestResult{
		TraceID:    traceID,
		UploadedAt: trace.UploadedAt,
		TokenCount: entry.TokenCount,
		NameCount:  entry.NameCount,
	}, nil
}

func (s *ingestionService) rollbackTrace(ctx context.Context, traceID string) {
	if err := s.traceStore.Delete(ctx, traceID); err != nil {
		loggers.Ctx(ctx).Error().Err(err).Str(loggers.FieldTraceID, traceID).Msg("failed to roll back stored trace")
	}
}

func (s *ingestionService) rollbackCatalogEntry(ctx context.Context, traceID string) {
	if err := s.catalog.Delete(ctx, traceID); err != nil {
		loggers.Ctx(ctx).Error().Err(err).Str(loggers.FieldTraceID, traceID).Msg("failed to roll back catalog entry")
	}
}

func (s *ingestionService) fail(svcErr *svcerrors.ServiceError) error {
	metricTraceIngestedTotal.WithLabelValues(svcErr.Code).Inc()
	return svcErr
}

func countTokens(tokens models.TokenList) {
	var counts [models.TokenRawSocketData + 1]int
	for _, token := range tokens {
		counts[token.Kind()]++
	}
	for kind, n := range counts {
		if n > 0 {
			metricTokenIngestedTotal.WithLabelValues(models.TokenKind(kind).String()).Add(float64(n))
		}
	}
}
