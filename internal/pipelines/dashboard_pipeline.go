package pipelines

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"weblog-analytics/internal/aggregators"
	"weblog-analytics/internal/ingestors"
	"weblog-analytics/internal/models"
	"weblog-analytics/internal/shared/loggers"
	"weblog-analytics/internal/shared/svcerrors"
	"weblog-analytics/internal/shared/ulid"
	"weblog-analytics/internal/streams"

	"golang.org/x/sync/errgroup"
)

// PipelineConfig names the sources of a pass and the defaults it falls back to. An empty key
// disables that source.
type PipelineConfig struct {
	AccessLogKey       string
	AuditLogKey        string
	DefaultGranularity models.Granularity
	TimeZone           string
	Location           *time.Location
}

// DashboardPipeline runs one synchronous pass: load and parse both sources, aggregate, rank,
// and hand the finished snapshot to the snapshot producer. At most one pass runs at a time.
//
//go:generate mockgen -source=dashboard_pipeline.go -destination=./mocks/dashboard_pipeline_mock.go -package=mocks
type DashboardPipeline interface {
	// Run builds a snapshot for day at granularity. A zero day means today in the configured
	// time zone and an empty granularity means the configured default. A call made while
	// another pass runs returns ErrPassInProgress at once.
	Run(ctx context.Context, day models.Day, granularity models.Granularity) (*models.DashboardSnapshot, error)
}

type dashboardPipeline struct {
	config             PipelineConfig
	ingestionService   ingestors.IngestionService
	aggregationService aggregators.AggregationService
	snapshotProducer   streams.SnapshotProducer

	running atomic.Bool
	now     func() time.Time
}

func NewDashboardPipeline(config PipelineConfig, ingestionService ingestors.IngestionService, aggregationService aggregators.AggregationService, snapshotProducer streams.SnapshotProducer) DashboardPipeline {
	if config.Location == nil {
		config.Location = time.UTC
		config.TimeZone = time.UTC.String()
	}
	return &dashboardPipeline{
		config:             config,
		ingestionService:   ingestionService,
		aggregationService: aggregationService,
		snapshotProducer:   snapshotProducer,
		now:                time.Now,
	}
}

type sourceOutcome struct {
	status models.SourceStatus
	err    error
}

func (p *dashboardPipeline) Run(ctx context.Context, day models.Day, granularity models.Granularity) (*models.DashboardSnapshot, error) {
	if !p.running.CompareAndSwap(false, true) {
		metricPassTotal.WithLabelValues(resultInProgress).Inc()
		return nil, ErrPassInProgress
	}
	defer p.running.Store(false)

	start := p.now()
	snapshot, err := p.run(ctx, day, granularity)
	result := resultOK
	if err != nil {
		result = resultFailed
	}
	metricPassTotal.WithLabelValues(result).Inc()
	metricPassDuration.WithLabelValues(result).Observe(p.now().Sub(start).Seconds())
	return snapshot, err
}

func (p *dashboardPipeline) run(ctx context.Context, day models.Day, granularity models.Granularity) (*models.DashboardSnapshot, error) {
	generatedAt := p.now().UTC()
	if day.IsZero() {
		day = models.DayOf(generatedAt, p.config.Location)
	}
	if granularity == "" {
		granularity = p.config.DefaultGranularity
	}
	if _, err := models.ParseGranularity(string(granularity)); err != nil {
		return nil, errInvalidGranularity(err)
	}

	snapshotID := ulid.NewULIDAt(generatedAt)
	ctx = loggers.Ctx(ctx).With().
		Str(loggers.FieldSnapshotID, snapshotID).
		Str(loggers.FieldDay, day.String()).
		Str(loggers.FieldGranularity, string(granularity)).
		Logger().WithContext(ctx)
	logger := loggers.Ctx(ctx)
	logger.Debug().Msg("started dashboard pass")

	var (
		accessResult  *ingestors.AccessLogResult
		auditResult   *ingestors.AuditLogResult
		accessOutcome *sourceOutcome
		auditOutcome  *sourceOutcome
		group         errgroup.Group
	)
	// a failed source must not cancel the other one, so goroutines report failures in their
	// outcome and only return context errors
	if p.config.AccessLogKey != "" {
		accessOutcome = &sourceOutcome{}
		group.Go(func() error {
			accessResult, accessOutcome.err = p.ingestionService.IngestAccessLog(ctx, p.config.AccessLogKey)
			accessOutcome.status = sourceStatus(models.SourceAccessLog, p.config.AccessLogKey, accessOutcome.err)
			if accessResult != nil {
				accessOutcome.status = accessResult.Status
			}
			return ctx.Err()
		})
	}
	if p.config.AuditLogKey != "" {
		auditOutcome = &sourceOutcome{}
		group.Go(func() error {
			auditResult, auditOutcome.err = p.ingestionService.IngestAuditLog(ctx, p.config.AuditLogKey)
			auditOutcome.status = sourceStatus(models.SourceAuditLog, p.config.AuditLogKey, auditOutcome.err)
			if auditResult != nil {
				auditOutcome.status = auditResult.Status
			}
			return ctx.Err()
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var (
		sources  []models.SourceStatus
		failures []error
	)
	for _, outcome := range []*sourceOutcome{accessOutcome, auditOutcome} {
		if outcome == nil {
			continue
		}
		sources = append(sources, outcome.status)
		if outcome.err != nil {
			failures = append(failures, outcome.err)
		}
	}
	if len(sources) == 0 || len(failures) == len(sources) {
		err := errNoSourceLoaded(errors.Join(failures...))
		logger.Error().Err(err).Msg("dashboard pass failed")
		return nil, err
	}

	var (
		accessRecords []*models.LogRecord
		accessDropped int64
		auditRecords  []*models.AuditRecord
	)
	if accessResult != nil {
		accessRecords = accessResult.Records
		accessDropped = accessResult.Status.Stats.Dropped
	}
	if auditResult != nil {
		auditRecords = auditResult.Records
	}

	dashboard, err := p.aggregationService.BuildDashboard(ctx, accessRecords, accessDropped, day, granularity, p.config.Location)
	if err != nil {
		logger.Error().Err(err).Msg("dashboard pass failed")
		return nil, err
	}
	audit := p.aggregationService.BuildAudit(ctx, auditRecords)

	snapshot := &models.DashboardSnapshot{
		ID:            snapshotID,
		GeneratedAt:   generatedAt,
		Day:           day,
		Granularity:   granularity,
		TimeZone:      p.config.TimeZone,
		Location:      p.config.Location,
		Sources:       sources,
		Dashboard:     *dashboard,
		Audit:         *audit,
		AccessRecords: accessRecords,
		AccessDropped: accessDropped,
	}

	if err := p.snapshotProducer.Produce(ctx, snapshot); err != nil {
		return nil, errInternalPublishFailed(err)
	}

	logger.Info().
		Int("access_records", len(accessRecords)).
		Int("audit_records", len(auditRecords)).
		Int("failed_sources", len(failures)).
		Msg("completed dashboard pass")
	return snapshot, nil
}

// sourceStatus describes a source that could not be loaded. It is replaced by the ingestion
// result's own status when the source loaded.
func sourceStatus(kind models.SourceKind, key string, err error) models.SourceStatus {
	status := models.SourceStatus{Kind: kind, Key: key, Stats: models.NewParseStats()}
	if err == nil {
		return status
	}
	status.Error = err.Error()
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		status.ErrorCode = svcErr.Code
		status.Error = svcErr.Message
	} else {
		status.ErrorCode = svcerrors.NewInternalErrorUndefined(err).Code
	}
	return status
}
