package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"net-profiler/internal/aggregators"
	"net-profiler/internal/events"
	internalhttp "net-profiler/internal/http"
	"net-profiler/internal/ingestors"
	"net-profiler/internal/shared/configs"
	"net-profiler/internal/shared/filestorages"
	"net-profiler/internal/shared/loggers"
	"net-profiler/internal/stores"
	"net-profiler/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	traceCatalog       stores.TraceCatalog
	traceEventConsumer streams.TraceEventConsumer
	backgroundCtx      context.Context
	backgroundCancel   context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "net-profiler").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	traceStore, err := stores.NewTraceStore(fileStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize trace store: %w", err)
	}
	summaryStore := stores.NewSummaryStore(fileStorage)

	// Initialize trace catalog
	traceCatalog, err := stores.NewTraceCatalog(context.Background(), config.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize trace catalog: %w", err)
	}

	// Initialize stream queue
	traceIngestedQueue := streams.NewPartitionedQueue[events.TraceIngestedEvent]()

	// Initialize summary and profile services
	settings := aggregators.Settings{
		ExemptSocketName:    config.Profiler.ExemptSocketName,
		PacketOverheadBytes: config.Profiler.PacketOverheadBytes,
	}
	summaryService := aggregators.NewSummaryService(settings, traceStore, summaryStore, traceCatalog)
	profileService := aggregators.NewProfileService(settings, traceStore, summaryStore, traceCatalog)
	traceEventConsumer := streams.NewTraceEventConsumer(traceIngestedQueue, summaryService, loggers.Component(appLogger, "consumer"))

	// Initialize ingestionService
	traceDecoder := ingestors.NewTraceDecoder(int64(config.Profiler.MaxUploadMB) * 1024 * 1024)
	traceEventProducer := streams.NewTraceEventProducer(traceIngestedQueue)
	ingestionService := ingestors.NewIngestionService(traceDecoder, traceStore, traceCatalog, traceEventProducer)

	// Initialize http router
	router := internalhttp.NewRouter(ingestionService, profileService, loggers.Component(appLogger, "http"))

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	// Shutdown may run on another goroutine than Start, so the context exists before either
	backgroundCtx, backgroundCancel := context.WithCancel(context.Background())

	return &App{
		config:             config,
		appLogger:          appLogger,
		server:             server,
		traceCatalog:       traceCatalog,
		traceEventConsumer: traceEventConsumer,
		backgroundCtx:      backgroundCtx,
		backgroundCancel:   backgroundCancel,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting net-profiler service on port %d (log_level=%s, file_storage_root_dir=%s, catalog_path=%s, exempt_socket=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Catalog.Path,
			app.config.Profiler.ExemptSocketName)

	// start background consumers
	app.traceEventConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	// 2) Cancel background consumers
	app.backgroundCancel()
	app.appLogger.Info().Msg("Background consumers cancelled")

	// 3) Wait for background consumers to finish
	app.traceEventConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	// 4) Close the catalog once nothing writes to it
	if err := app.traceCatalog.Close(); err != nil {
		return fmt.Errorf("trace catalog close failed: %w", err)
	}
	return nil
}

// IsServerClosed reports whether err is the expected result of Shutdown.
func IsServerClosed(err error) bool {
	return errors.Is(err, http.ErrServerClosed)
}
