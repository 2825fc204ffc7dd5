package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"net-profiler/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_ServiceError(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Empty(t, appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewInvalidArgumentError("ING_1000", "invalid trace", nil))
	assert.Equal(t, "ING_1000", appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewInternalError("ING_9000", nil))
	assert.Equal(t, "ING_9000", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Empty(t, appWriter.ErrorCode())
}

func TestAppResponseWriter_TraceID(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Empty(t, appWriter.TraceID())

	appWriter.SetTraceID("match42")
	assert.Equal(t, "match42", appWriter.TraceID())
}

func TestAppResponseWriter_StatusAndBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{name: "implicit ok", body: "Data Summary\n", wantStatus: http.StatusOK},
		{name: "accepted", status: http.StatusAccepted, body: `{"traceId":"a"}`, wantStatus: http.StatusAccepted},
		{name: "not found without body", status: http.StatusNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			appWriter := newAppResponseWriter(rr, 1)
			if tt.status != 0 {
				appWriter.WriteHeader(tt.status)
			}
			if tt.body != "" {
				_, _ = appWriter.Write([]byte(tt.body))
			}

			assert.Equal(t, tt.wantStatus, appWriter.StatusOrOK())
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, len(tt.body), appWriter.BytesWritten())
			assert.Equal(t, tt.body, rr.Body.String())
		})
	}
}
