package http

import (
	"net/http"
	"time"

	"net-profiler/internal/ingestors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// IngestTraceResponse is the body of an accepted trace upload.
type IngestTraceResponse struct {
	TraceID    string    `json:"traceId"`
	UploadedAt time.Time `json:"uploadedAt"`
	TokenCount int       `json:"tokenCount"`
	NameCount  int       `json:"nameCount"`
}

type ingestTraceHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestTraceHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestTraceHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /traces requests. The summary is built in the background, hence 202.
func (h *ingestTraceHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestTrace(r.Context(), userAgent(r), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	w.Header().Set(headerLocation, "/traces/"+result.TraceID+"/summary")
	return writeJSON(w, http.StatusAccepted, IngestTraceResponse{
		TraceID:    result.TraceID,
		UploadedAt: result.UploadedAt,
		TokenCount: result.TokenCount,
		NameCount:  result.NameCount,
	})
}
