package aggregators

import (
	"context"
	"errors"
	"time"

	"net-profiler/internal/models"
	"net-profiler/internal/reports"
	"net-profiler/internal/rollups"
	"net-profiler/internal/segments"
	"net-profiler/internal/shared/loggers"
	"net-profiler/internal/shared/metrics"
	"net-profiler/internal/shared/svcerrors"
	"net-profiler/internal/shared/validators"
	"net-profiler/internal/stores"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// ProfileService answers queries over stored traces. Summaries for a filter or frame range are
// computed on demand from the stored tokens; the unfiltered whole-trace summary is the one
// precomputed by SummaryService.
//
//go:generate mockgen -source=profile_service.go -destination=./mocks/profile_service_mock.go -package=mocks
type ProfileService interface {
	// ListTraces returns catalogued traces, newest first. A limit of 0 selects DefaultListLimit.
	ListTraces(ctx context.Context, limit int) ([]*models.TraceCatalogEntry, error)
	// Summary returns the precomputed whole-trace summary.
	Summary(ctx context.Context, traceID string) (*models.SegmentSummary, error)
	Segment(ctx context.Context, traceID string, query ProfileQuery) (*models.SegmentSummary, error)
	// Report renders the textual summary report of the selected segment, one entry per line.
	Report(ctx context.Context, traceID string, query ProfileQuery) ([]string, error)
	// Performance rolls up the actors of the selected segment by actor class.
	Performance(ctx context.Context, traceID string, query ProfileQuery) (*rollups.PerformanceRollup, error)
}

type profileService struct {
	settings     Settings
	traceStore   stores.TraceStore
	summaryStore stores.SummaryStore
	traceCatalog stores.TraceCatalog
	validate     *validators.Validate
}

func NewProfileService(settings Settings, traceStore stores.TraceStore, summaryStore stores.SummaryStore, traceCatalog stores.TraceCatalog) ProfileService {
	return &profileService{
		settings:     settings,
		traceStore:   traceStore,
		summaryStore: summaryStore,
		traceCatalog: traceCatalog,
		validate:     validators.New(),
	}
}

func (s *profileService) ListTraces(ctx context.Context, limit int) ([]*models.TraceCatalogEntry, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 0 || limit > MaxListLimit {
		return nil, errInvalidQuery("limit must be between 1 and 500", nil)
	}
	entries, err := s.traceCatalog.List(ctx, limit)
	if err != nil {
		return nil, errInternalCatalogFailed(err)
	}
	return entries, nil
}

func (s *profileService) Summary(ctx context.Context, traceID string) (*models.SegmentSummary, error) {
	summary, err := s.summary(ctx, traceID)
	s.countQuery(operationSummary, err)
	return summary, err
}

func (s *profileService) summary(ctx context.Context, traceID string) (*models.SegmentSummary, error) {
	if err := s.validateTraceID(traceID); err != nil {
		return nil, err
	}

	summary, err := s.summaryStore.Get(ctx, traceID)
	if err == nil {
		return summary, nil
	}
	if !errors.Is(err, stores.ErrSummaryNotFound) {
		return nil, errInternalSummaryStoreFailed(err)
	}

	// Tell an unknown trace apart from one still being summarized
	if _, err := s.traceCatalog.Get(ctx, traceID); err != nil {
		if errors.Is(err, stores.ErrCatalogEntryNotFound) {
			return nil, errTraceNotFound(err)
		}
		return nil, errInternalCatalogFailed(err)
	}
	return nil, errSummaryNotReady(nil)
}

func (s *profileService) Segment(ctx context.Context, traceID string, query ProfileQuery) (*models.SegmentSummary, error) {
	view, segment, err := s.buildSegment(ctx, operationSegment, traceID, query)
	if err != nil {
		return nil, err
	}
	summary := newSegmentSummary(view.trace.TraceID, segment, s.settings.PacketOverheadBytes)
	summary.Query = query.toModel()
	return summary, nil
}

func (s *profileService) Report(ctx context.Context, traceID string, query ProfileQuery) ([]string, error) {
	_, segment, err := s.buildSegment(ctx, operationReport, traceID, query)
	if err != nil {
		return nil, err
	}
	return reports.SummaryLines(segment, s.settings.PacketOverheadBytes), nil
}

func (s *profileService) Performance(ctx context.Context, traceID string, query ProfileQuery) (*rollups.PerformanceRollup, error) {
	view, segment, err := s.buildSegment(ctx, operationPerformance, traceID, query)
	if err != nil {
		return nil, err
	}
	rollup := rollups.BuildPerformanceRollup(segment.Tokens(), view.actorClass)
	return rollup.WithNames(view.names), nil
}

func (s *profileService) buildSegment(ctx context.Context, operation, traceID string, query ProfileQuery) (view *traceView, segment *segments.StreamSegment, err error) {
	defer func() { s.countQuery(operation, err) }()

	if err := s.validateTraceID(traceID); err != nil {
		return nil, nil, err
	}
	if err := query.validate(); err != nil {
		return nil, nil, errInvalidQuery(err.Error(), err)
	}

	trace, err := s.traceStore.Get(ctx, traceID)
	if err != nil {
		if errors.Is(err, stores.ErrTraceNotFound) {
			return nil, nil, errTraceNotFound(err)
		}
		return nil, nil, errInternalTraceStoreFailed(err)
	}

	started := time.Now()
	view = newTraceView(trace, s.settings.ExemptSocketName)
	built, err := view.segment(query)
	if err != nil {
		return nil, nil, errInternalCorruptTrace(err)
	}
	metricSegmentBuildSeconds.WithLabelValues(operation).Observe(time.Since(started).Seconds())

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldTraceID, traceID).
		Int(loggers.FieldTokenCount, built.Len()).
		Msg("segment built")
	return view, built, nil
}

func (s *profileService) validateTraceID(traceID string) error {
	if err := s.validate.Var(traceID, models.TraceIDRules); err != nil {
		return errInvalidQuery("invalid trace id", err)
	}
	return nil
}

func (s *profileService) countQuery(operation string, err error) {
	code := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricProfileQueryTotal.WithLabelValues(operation, code).Inc()
}
