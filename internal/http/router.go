package http

import (
	"net/http"

	"net-profiler/internal/aggregators"
	"net-profiler/internal/ingestors"
	"net-profiler/internal/shared/loggers"
	"net-profiler/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, profileService aggregators.ProfileService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestTraceHandler := NewIngestTraceHandler(ingestionService)
	listTracesHandler := NewListTracesHandler(profileService)
	summaryHandler := NewSummaryHandler(profileService)
	segmentHandler := NewSegmentHandler(profileService)
	reportHandler := NewReportHandler(profileService)
	performanceHandler := NewPerformanceHandler(profileService)

	// Routes
	router.Route("/traces", func(r chi.Router) {
		r.Post("/", errorHandlingAdapter(ingestTraceHandler))
		r.Get("/", errorHandlingAdapter(listTracesHandler))
		r.Route("/{"+urlParamTraceID+"}", func(r chi.Router) {
			r.Use(mwTraceScope)
			r.Get("/summary", errorHandlingAdapter(summaryHandler))
			r.Get("/segment", errorHandlingAdapter(segmentHandler))
			r.Get("/report", errorHandlingAdapter(reportHandler))
			r.Get("/performance", errorHandlingAdapter(performanceHandler))
		})
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
