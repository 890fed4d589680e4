package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"weblog-analytics/internal/aggregators"
	internalhttp "weblog-analytics/internal/http"
	"weblog-analytics/internal/ingestors"
	"weblog-analytics/internal/models"
	"weblog-analytics/internal/pipelines"
	"weblog-analytics/internal/shared/configs"
	"weblog-analytics/internal/shared/filestorages"
	"weblog-analytics/internal/shared/loggers"
	"weblog-analytics/internal/stores"
	"weblog-analytics/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	snapshotStore    stores.SnapshotStore
	snapshotConsumer streams.SnapshotConsumer
	refresher        pipelines.Refresher
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "weblog-analytics").
		Logger()

	location, err := time.LoadLocation(config.Aggregation.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", config.Aggregation.TimeZone, err)
	}
	defaultGranularity, err := models.ParseGranularity(config.Aggregation.DefaultGranularity)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize default granularity: %w", err)
	}

	// Initialize file storage
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize snapshot handoff
	snapshotQueue := streams.NewLatestQueue[*models.DashboardSnapshot]()
	snapshotStore := stores.NewSnapshotStore(fileStorage, config.Dashboard.SnapshotKey)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	snapshotConsumer := streams.NewSnapshotConsumer(snapshotQueue, snapshotStore, consumerLogger)
	snapshotProducer := streams.NewSnapshotProducer(snapshotQueue)

	// Initialize ingestion and aggregation
	sourceStore := stores.NewLogSourceStore(fileStorage)
	ingestionService := ingestors.NewIngestionService(sourceStore, ingestors.NewAccessLogParser(), ingestors.NewAuditLogParser())
	aggregationService := aggregators.NewAggregationService(
		aggregators.NewTimeBucketAggregator(),
		aggregators.NewRankingEngine(),
		aggregators.RankingLimits{TimeBuckets: config.Dashboard.TimeBucketRankingLimit},
	)

	// Initialize pipeline
	pipeline := pipelines.NewDashboardPipeline(pipelines.PipelineConfig{
		AccessLogKey:       config.Sources.AccessLog,
		AuditLogKey:        config.Sources.AuditLog,
		DefaultGranularity: defaultGranularity,
		TimeZone:           config.Aggregation.TimeZone,
		Location:           location,
	}, ingestionService, aggregationService, snapshotProducer)
	pipelineLogger := appLogger.With().Str(loggers.FieldComponent, "pipeline").Logger()
	refresher := pipelines.NewRefresher(pipeline, time.Duration(config.Refresh.Interval)*time.Second, pipelineLogger)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(
		internalhttp.RouterConfig{MaxDisplayedBuckets: config.Dashboard.MaxDisplayedBuckets},
		snapshotConsumer,
		aggregationService,
		pipeline,
		httpLogger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:           config,
		appLogger:        appLogger,
		server:           server,
		snapshotStore:    snapshotStore,
		snapshotConsumer: snapshotConsumer,
		refresher:        refresher,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting weblog-analytics service on port %d (log_level=%s, file_storage_root_dir=%s, time_zone=%s, refresh_interval=%ds)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Aggregation.TimeZone,
			app.config.Refresh.Interval)

	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.logPreviousSnapshot(app.backgroundCtx)

	// consumer first so the first pass is picked up
	app.snapshotConsumer.Start(app.backgroundCtx)
	app.refresher.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// logPreviousSnapshot reports the summary persisted by the previous run, if any.
func (app *App) logPreviousSnapshot(ctx context.Context) {
	previous, err := app.snapshotStore.Get(ctx)
	switch {
	case err == nil:
		app.appLogger.Info().
			Str(loggers.FieldSnapshotID, previous.ID).
			Time("generatedAt", previous.GeneratedAt).
			Str(loggers.FieldDay, previous.Day.String()).
			Msg("Previous snapshot found")
	case errors.Is(err, filestorages.ErrFileNotFound):
		app.appLogger.Info().Msg("No previous snapshot")
	default:
		app.appLogger.Warn().Err(err).Msg("Failed to read previous snapshot")
	}
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop the refresher, an in-flight pass completes
	app.refresher.Stop()
	app.appLogger.Info().Msg("Refresher stopped")

	// 3) Cancel and wait for the consumer
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.snapshotConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
