package http

import (
	"net/http"
	"strings"

	"net-profiler/internal/aggregators"
	"net-profiler/internal/models"
	"net-profiler/internal/reports"

	"github.com/go-chi/chi/v5"
)

const (
	urlParamTraceID = "traceID"

	formatText = "text"
)

// ListTracesResponse is the body of GET /traces.
type ListTracesResponse struct {
	Traces []*models.TraceCatalogEntry `json:"traces"`
}

func traceID(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, urlParamTraceID))
}

type listTracesHandler struct {
	profileService aggregators.ProfileService
}

func NewListTracesHandler(profileService aggregators.ProfileService) AppHttpHandler {
	return &listTracesHandler{profileService: profileService}
}

// Handle processes GET /traces requests.
func (h *listTracesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	limit, err := listLimit(r)
	if err != nil {
		return err
	}
	entries, err := h.profileService.ListTraces(r.Context(), limit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*models.TraceCatalogEntry{}
	}
	return writeJSON(w, http.StatusOK, ListTracesResponse{Traces: entries})
}

type summaryHandler struct {
	profileService aggregators.ProfileService
}

func NewSummaryHandler(profileService aggregators.ProfileService) AppHttpHandler {
	return &summaryHandler{profileService: profileService}
}

// Handle processes GET /traces/{traceID}/summary requests.
func (h *summaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	summary, err := h.profileService.Summary(r.Context(), traceID(r))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, summary)
}

type segmentHandler struct {
	profileService aggregators.ProfileService
}

func NewSegmentHandler(profileService aggregators.ProfileService) AppHttpHandler {
	return &segmentHandler{profileService: profileService}
}

// Handle processes GET /traces/{traceID}/segment requests.
func (h *segmentHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query, err := profileQuery(r)
	if err != nil {
		return err
	}
	summary, err := h.profileService.Segment(r.Context(), traceID(r), query)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, summary)
}

type reportHandler struct {
	profileService aggregators.ProfileService
}

func NewReportHandler(profileService aggregators.ProfileService) AppHttpHandler {
	return &reportHandler{profileService: profileService}
}

// Handle processes GET /traces/{traceID}/report requests.
func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query, err := profileQuery(r)
	if err != nil {
		return err
	}
	lines, err := h.profileService.Report(r.Context(), traceID(r), query)
	if err != nil {
		return err
	}
	return writeLines(w, lines)
}

type performanceHandler struct {
	profileService aggregators.ProfileService
}

func NewPerformanceHandler(profileService aggregators.ProfileService) AppHttpHandler {
	return &performanceHandler{profileService: profileService}
}

// Handle processes GET /traces/{traceID}/performance requests. format=text renders the
// rollup as an indented tree instead of JSON.
func (h *performanceHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(queryFormat)))
	if format != "" && format != formatText && format != "json" {
		return errInvalidQueryParam(queryFormat, nil)
	}

	query, err := profileQuery(r)
	if err != nil {
		return err
	}
	rollup, err := h.profileService.Performance(r.Context(), traceID(r), query)
	if err != nil {
		return err
	}
	if format == formatText {
		return writeLines(w, reports.PerformanceLines(rollup))
	}
	return writeJSON(w, http.StatusOK, rollup)
}
