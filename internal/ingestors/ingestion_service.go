package ingestors

import (
	"context"
	"errors"
	"fmt"

	"weblog-analytics/internal/models"
	"weblog-analytics/internal/shared/loggers"
	"weblog-analytics/internal/shared/metrics"
	"weblog-analytics/internal/stores"
)

// AccessLogResult holds the records of one access log read and how its lines fared.
type AccessLogResult struct {
	Records []*models.LogRecord
	Status  models.SourceStatus
}

// AuditLogResult holds the records of one audit log read and how its lines fared.
type AuditLogResult struct {
	Records []*models.AuditRecord
	Status  models.SourceStatus
}

// IngestionService loads a log source and parses it line by line. Lines that fail to parse are
// dropped and counted by reason; only a source that cannot be read at all is an error.
//
//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	IngestAccessLog(ctx context.Context, key string) (*AccessLogResult, error)
	IngestAuditLog(ctx context.Context, key string) (*AuditLogResult, error)
}

type ingestionService struct {
	sourceStore     stores.LogSourceStore
	accessLogParser AccessLogParser
	auditLogParser  AuditLogParser
}

func NewIngestionService(sourceStore stores.LogSourceStore, accessLogParser AccessLogParser, auditLogParser AuditLogParser) IngestionService {
	return &ingestionService{
		sourceStore:     sourceStore,
		accessLogParser: accessLogParser,
		auditLogParser:  auditLogParser,
	}
}

func (s *ingestionService) IngestAccessLog(ctx context.Context, key string) (*AccessLogResult, error) {
	records, status, err := ingest(ctx, s.sourceStore, models.SourceAccessLog, key, s.accessLogParser.Parse)
	if err != nil {
		return nil, err
	}
	return &AccessLogResult{Records: records, Status: status}, nil
}

func (s *ingestionService) IngestAuditLog(ctx context.Context, key string) (*AuditLogResult, error) {
	records, status, err := ingest(ctx, s.sourceStore, models.SourceAuditLog, key, s.auditLogParser.Parse)
	if err != nil {
		return nil, err
	}
	return &AuditLogResult{Records: records, Status: status}, nil
}

func ingest[T any](ctx context.Context, sourceStore stores.LogSourceStore, kind models.SourceKind, key string, parse func(string) (T, error)) ([]T, models.SourceStatus, error) {
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldSource, string(kind)).
		Str(loggers.FieldSourceKey, key).
		Logger()
	logger.Debug().Msg("started ingesting log source")

	source := string(kind)
	status := models.SourceStatus{Kind: kind, Key: key, Stats: models.NewParseStats()}
	var records []T

	info, err := sourceStore.ReadLines(ctx, key, func(lineNumber int, line string, lineErr error) error {
		var record T
		err := lineErr
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrMalformedLine, lineErr)
		} else {
			record, err = parse(line)
		}
		if err != nil {
			reason := DropReason(err)
			status.Stats.RecordDrop(reason)
			metricLinesTotal.WithLabelValues(source, reason).Inc()
			logger.Debug().Err(err).
				Int(loggers.FieldLineNumber, lineNumber).
				Str(loggers.FieldDropReason, reason).
				Msg("dropped log line")
			return nil
		}
		status.Stats.RecordParsed()
		metricLinesTotal.WithLabelValues(source, resultParsed).Inc()
		records = append(records, record)
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, status, err
		}
		svcErr := errInternalSourceReadFailed(err)
		if errors.Is(err, stores.ErrSourceNotFound) {
			svcErr = errMissingSource(key, err)
		}
		metricSourceLoadedTotal.WithLabelValues(source, svcErr.Code).Inc()
		logger.Warn().Err(err).Str(loggers.FieldErrorCode, svcErr.Code).Msg("failed to load log source")
		return nil, status, svcErr
	}

	status.Size = info.Size
	status.ModTime = info.ModTime
	metricSourceLoadedTotal.WithLabelValues(source, metrics.ValueNoError).Inc()
	logger.Info().
		Int64("lines", status.Stats.Lines).
		Int64("parsed", status.Stats.Parsed).
		Int64("dropped", status.Stats.Dropped).
		Msg("ingested log source")

	return records, status, nil
}
