package ingestors_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"net-profiler/internal/events"
	"net-profiler/internal/ingestors"
	ingestormocks "net-profiler/internal/ingestors/mocks"
	"net-profiler/internal/models"
	"net-profiler/internal/shared/svcerrors"
	"net-profiler/internal/stores"
	storemocks "net-profiler/internal/stores/mocks"
	streammocks "net-profiler/internal/streams/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const chromeAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type ingestionMocks struct {
	decoder    *ingestormocks.MockTraceDecoder
	traceStore *storemocks.MockTraceStore
	catalog    *storemocks.MockTraceCatalog
	producer   *streammocks.MockTraceEventProducer
}

func newIngestionService(t *testing.T) (ingestors.IngestionService, ingestionMocks) {
	ctrl := gomock.NewController(t)
	m := ingestionMocks{
		decoder:    ingestormocks.NewMockTraceDecoder(ctrl),
		traceStore: storemocks.NewMockTraceStore(ctrl),
		catalog:    storemocks.NewMockTraceCatalog(ctrl),
		producer:   streammocks.NewMockTraceEventProducer(ctrl),
	}
	return ingestors.NewIngestionService(m.decoder, m.traceStore, m.catalog, m.producer), m
}

func decodedTrace() *models.TraceCapture {
	return &models.TraceCapture{
		Names: []string{"Unreal", "PlayerPawn_C_0"},
		Tokens: models.TokenList{
			&models.FrameMarker{},
			&models.ReplicateActor{ActorIdentity: 1},
			&models.FrameMarker{RelativeTime: 1},
		},
	}
}

func TestIngestTrace_Success(t *testing.T) {
	t.Parallel()

	service, m := newIngestionService(t)
	ctx := context.Background()
	body := strings.NewReader("{}")

	var stored *models.TraceCapture
	m.decoder.EXPECT().Decode("application/json", body).Return(decodedTrace(), nil)
	m.traceStore.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, trace *models.TraceCapture) error {
		stored = trace
		return nil
	})
	m.catalog.EXPECT().Register(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, entry *models.TraceCatalogEntry) error {
		assert.Equal(t, "trace42", entry.TraceID)
		assert.Equal(t, 3, entry.TokenCount)
		assert.Equal(t, 2, entry.NameCount)
		assert.True(t, strings.HasPrefix(entry.UploaderAgent, "Chrome"))
		assert.True(t, entry.UploadedAt.Equal(stored.UploadedAt))
		assert.Nil(t, entry.SummarizedAt)
		return nil
	})
	m.producer.EXPECT().Produce(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, event *events.TraceIngestedEvent) error {
		assert.Equal(t, "trace42", event.TraceID)
		assert.Equal(t, 3, event.TokenCount)
		assert.Equal(t, 2, event.NameCount)
		return nil
	})

	result, err := service.IngestTrace(ctx, chromeAgent, " trace42 ", "application/json", body)
	require.NoError(t, err)
	assert.Equal(t, "trace42", result.TraceID)
	assert.Equal(t, 3, result.TokenCount)
	assert.Equal(t, 2, result.NameCount)
	assert.False(t, result.UploadedAt.IsZero())

	require.NotNil(t, stored)
	assert.Equal(t, "trace42", stored.TraceID)
	assert.Equal(t, result.UploadedAt, stored.UploadedAt)
}

func TestIngestTrace_GeneratesTraceID(t *testing.T) {
	t.Parallel()

	service, m := newIngestionService(t)

	m.decoder.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(decodedTrace(), nil)
	m.traceStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	m.catalog.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.IngestTrace(context.Background(), "", "", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	assert.Len(t, result.TraceID, 26)
}

func TestIngestTrace_ErrValidationFailed_InvalidIdempotencyKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{"path traversal", "../etc"},
		{"slash", "a/b"},
		{"too long", strings.Repeat("a", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, _ := newIngestionService(t)
			_, err := service.IngestTrace(context.Background(), "", tt.key, "application/json", strings.NewReader("{}"))

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "ING_1000", svcErr.Code)
			assert.Equal(t, "invalid_argument", svcErr.Category)
		})
	}
}

func TestIngestTrace_AcceptsUUIDIdempotencyKey(t *testing.T) {
	t.Parallel()

	service, m := newIngestionService(t)
	key := "3f1c2a7e-8b4d-4e6a-9c1f-2d3e4f5a6b7c"

	m.decoder.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(decodedTrace(), nil)
	m.traceStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	m.catalog.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.IngestTrace(context.Background(), "", key, "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	assert.Equal(t, key, result.TraceID)
}

func TestIngestTrace_DecodeFailed(t *testing.T) {
	t.Parallel()

	service, m := newIngestionService(t)
	decodeErr := svcerrors.NewInvalidArgumentError("ING_1000", "invalid json", nil)
	m.decoder.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(nil, decodeErr)

	result, err := service.IngestTrace(context.Background(), "", "", "application/json", strings.NewReader("{"))
	assert.Nil(t, result)
	assert.Same(t, decodeErr, err)
}

func TestIngestTrace_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		setup        func(m ingestionMocks)
		wantCode     string
		wantCategory string
	}{
		{
			name: "trace already uploaded",
			setup: func(m ingestionMocks) {
				m.traceStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(stores.ErrTraceAlreadyExist)
			},
			wantCode:     "ING_1001",
			wantCategory: "resource_conflict",
		},
		{
			name: "trace store failed",
			setup: func(m ingestionMocks) {
				m.traceStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			wantCode:     "ING_9000",
			wantCategory: "internal",
		},
		{
			name: "catalog failed rolls back trace",
			setup: func(m ingestionMocks) {
				m.traceStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
				m.catalog.EXPECT().Register(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))
				m.traceStore.EXPECT().Delete(gomock.Any(), "trace42").Return(nil)
			},
			wantCode:     "ING_9001",
			wantCategory: "internal",
		},
		{
			name: "catalog conflict rolls back trace",
			setup: func(m ingestionMocks) {
				m.traceStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
				m.catalog.EXPECT().Register(gomock.Any(), gomock.Any()).Return(stores.ErrCatalogEntryAlreadyExist)
				m.traceStore.EXPECT().Delete(gomock.Any(), "trace42").Return(errors.New("busy"))
			},
			wantCode:     "ING_1001",
			wantCategory: "resource_conflict",
		},
		{
			name: "publish failed rolls back catalog entry and trace",
			setup: func(m ingestionMocks) {
				m.traceStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
				m.catalog.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)
				gomock.InOrder(
					m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(context.Canceled),
					m.catalog.EXPECT().Delete(gomock.Any(), "trace42").Return(nil),
					m.traceStore.EXPECT().Delete(gomock.Any(), "trace42").Return(nil),
				)
			},
			wantCode:     "ING_9002",
			wantCategory: "internal",
		},
		{
			name: "publish failed with failing rollback",
			setup: func(m ingestionMocks) {
				m.traceStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
				m.catalog.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("queue closed"))
				m.catalog.EXPECT().Delete(gomock.Any(), "trace42").Return(errors.New("database is locked"))
				m.traceStore.EXPECT().Delete(gomock.Any(), "trace42").Return(nil)
			},
			wantCode:     "ING_9002",
			wantCategory: "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, m := newIngestionService(t)
			m.decoder.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(decodedTrace(), nil)
			tt.setup(m)

			result, err := service.IngestTrace(context.Background(), "", "trace42", "application/json", strings.NewReader("{}"))
			assert.Nil(t, result)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, svcErr.Code)
			assert.Equal(t, tt.wantCategory, svcErr.Category)
		})
	}
}
