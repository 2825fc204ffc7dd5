package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"net-profiler/internal/shared/loggers"
	"net-profiler/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMwRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provided string
	}{
		{name: "generated when absent"},
		{name: "kept when provided", provided: "client-request-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, _ := loggers.New("info")
			var seen string
			handler := mwRequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = r.Header.Get(headerRequestID)
				assert.NotNil(t, loggers.Ctx(r.Context()))
			}))

			req := httptest.NewRequest(http.MethodGet, "/traces", nil)
			if tt.provided != "" {
				req.Header.Set(headerRequestID, tt.provided)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tt.provided == "" {
				assert.Len(t, seen, 26, "generated IDs are ULIDs")
			} else {
				assert.Equal(t, tt.provided, seen)
			}
		})
	}
}

func TestMwRecoverer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		panicValue any
	}{
		{name: "string panic", panicValue: "name table exhausted"},
		{name: "error panic", panicValue: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, _ := loggers.New("info")
			handler := mwRecoverer(mwRequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panicValue)
			})))

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/traces", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, contentTypeJSON, rr.Header().Get("Content-Type"))

			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.NotEmpty(t, errorResponse.RequestID)
			assert.Equal(t, "internal", errorResponse.ErrorCategory)
			assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
			assert.Equal(t, "internal server error", errorResponse.ErrorDescription)
		})
	}
}

func TestMwRecoverer_PassesThroughWhenNoPanic(t *testing.T) {
	t.Parallel()

	handler := mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/traces", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

// newTraceScopedRouter mounts a single trace route behind the full middleware chain,
// writing logs into buf.
func newTraceScopedRouter(t *testing.T, buf *bytes.Buffer, handler AppHttpHandler) *chi.Mux {
	t.Helper()

	logger, err := loggers.NewWithWriter("debug", buf)
	require.NoError(t, err)

	router := chi.NewRouter()
	setupMiddleware(router, logger)
	router.Route("/traces/{"+urlParamTraceID+"}", func(r chi.Router) {
		r.Use(mwTraceScope)
		r.Get("/summary", errorHandlingAdapter(handler))
	})
	return router
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line), raw)
		lines = append(lines, line)
	}
	return lines
}

func findLog(lines []map[string]any, message string) map[string]any {
	for _, line := range lines {
		if line["message"] == message {
			return line
		}
	}
	return nil
}

func TestMwTraceScope_TagsLogsAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	router := newTraceScopedRouter(t, &buf, &testHandler{
		handleFunc: func(w http.ResponseWriter, r *http.Request) error {
			loggers.Ctx(r.Context()).Info().Msg("building summary")
			_, err := w.Write([]byte("abc"))
			return err
		},
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/traces/match42/summary", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	lines := logLines(t, &buf)

	inner := findLog(lines, "building summary")
	require.NotNil(t, inner)
	assert.Equal(t, "match42", inner[loggers.FieldTraceID])
	assert.NotEmpty(t, inner[loggers.FieldRequestID])

	completed := findLog(lines, "request completed")
	require.NotNil(t, completed)
	assert.Equal(t, "match42", completed[loggers.FieldTraceID])
	assert.Equal(t, float64(http.StatusOK), completed[loggers.FieldHttpStatus])
	assert.Equal(t, float64(3), completed[loggers.FieldBytesWritten])
	assert.Equal(t, "/traces/match42/summary", completed[loggers.FieldHttpPath])
}

func TestMwTraceScope_ErrorBodyCarriesTraceID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	router := newTraceScopedRouter(t, &buf, &testHandler{
		handleFunc: func(w http.ResponseWriter, r *http.Request) error {
			return svcerrors.NewNotFoundError("PRF_1001", "trace not found", nil)
		},
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/traces/missing1/summary", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "missing1", errorResponse.TraceID)
	assert.Equal(t, "PRF_1001", errorResponse.ErrorCode)

	completed := findLog(logLines(t, &buf), "request completed")
	require.NotNil(t, completed)
	assert.Equal(t, float64(http.StatusNotFound), completed[loggers.FieldHttpStatus])
}

func TestSetupMiddleware_RecoversOutsideTraceScope(t *testing.T) {
	t.Parallel()

	logger, _ := loggers.New("info")
	router := chi.NewRouter()
	setupMiddleware(router, logger)
	router.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.NotEmpty(t, errorResponse.RequestID)
	assert.Empty(t, errorResponse.TraceID)
	assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
}
