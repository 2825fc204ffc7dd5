package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"net-profiler/internal/ingestors"
	ingestormocks "net-profiler/internal/ingestors/mocks"
	"net-profiler/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngestTraceHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestTraceHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/traces", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(headerIdempotencyKey, "key123")
	req.Header.Set(headerContentType, "application/json")
	req.Header.Set(headerUserAgent, "curl/8.4.0")
	rr := httptest.NewRecorder()

	uploadedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mockIngestionService.EXPECT().
		IngestTrace(
			gomock.Any(),
			"curl/8.4.0",
			"key123",
			"application/json",
			gomock.Any(),
		).
		Return(&ingestors.IngestResult{TraceID: "key123", UploadedAt: uploadedAt, TokenCount: 9, NameCount: 4}, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "/traces/key123/summary", rr.Header().Get(headerLocation))

	var body IngestTraceResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "key123", body.TraceID)
	assert.True(t, uploadedAt.Equal(body.UploadedAt))
	assert.Equal(t, 9, body.TokenCount)
	assert.Equal(t, 4, body.NameCount)
}

func TestIngestTraceHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestTraceHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/traces", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("TEST_1000", "validation failed", nil)
	mockIngestionService.EXPECT().
		IngestTrace(gomock.Any(), "", "", "application/json", gomock.Any()).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "TEST_1000", svcErr.Code)
	// Status should not be set when error occurs
	assert.Equal(t, http.StatusOK, rr.Code)
}
