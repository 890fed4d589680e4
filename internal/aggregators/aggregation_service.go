package aggregators

import (
	"context"
	"errors"
	"time"

	"weblog-analytics/internal/models"
	"weblog-analytics/internal/shared/loggers"
	"weblog-analytics/internal/shared/metrics"
)

const (
	DefaultTimeBucketRankingLimit = 7
	DefaultUserAgentRankingLimit  = 10
)

type RankingLimits struct {
	TimeBuckets int
	UserAgents  int
}

// AggregationService turns parsed records into the views the dashboard shows. It is a pure
// function of its inputs, so it is safe to call concurrently over shared records.
//
//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	BuildDashboard(ctx context.Context, records []*models.LogRecord, dropped int64, day models.Day, granularity models.Granularity, loc *time.Location) (*models.DashboardView, error)
	BuildAudit(ctx context.Context, records []*models.AuditRecord) *models.AuditView
}

type aggregationService struct {
	aggregator    TimeBucketAggregator
	rankingEngine RankingEngine
	limits        RankingLimits
}

func NewAggregationService(aggregator TimeBucketAggregator, rankingEngine RankingEngine, limits RankingLimits) AggregationService {
	if limits.TimeBuckets <= 0 {
		limits.TimeBuckets = DefaultTimeBucketRankingLimit
	}
	if limits.UserAgents <= 0 {
		limits.UserAgents = DefaultUserAgentRankingLimit
	}
	return &aggregationService{aggregator: aggregator, rankingEngine: rankingEngine, limits: limits}
}

func (s *aggregationService) BuildDashboard(ctx context.Context, records []*models.LogRecord, dropped int64, day models.Day, granularity models.Granularity, loc *time.Location) (*models.DashboardView, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldDay, day.String()).
		Str(loggers.FieldGranularity, string(granularity)).
		Int("records", len(records)).
		Msg("started building dashboard")

	series, err := s.aggregator.Aggregate(records, dropped, day, granularity, loc)
	if err != nil {
		if errors.Is(err, models.ErrInvalidGranularity) {
			svcErr := errInvalidGranularity(err)
			metricDashboardBuiltTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}
		svcErr := errInternalAggregateFailed(err)
		metricDashboardBuiltTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	view := &models.DashboardView{
		Series:               series,
		StatusClassRanking:   s.rankingEngine.RankStatusClasses(series),
		TimeBucketRanking:    s.rankingEngine.RankTimeBuckets(series, s.limits.TimeBuckets),
		ClientAddressRanking: s.rankingEngine.RankClientAddresses(records, day, loc, 0),
		UserAgentRanking:     s.rankingEngine.RankUserAgents(records, day, loc, s.limits.UserAgents),
	}
	metricDashboardBuiltTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return view, nil
}

func (s *aggregationService) BuildAudit(ctx context.Context, records []*models.AuditRecord) *models.AuditView {
	loggers.Ctx(ctx).Debug().Int("records", len(records)).Msg("started building audit view")

	if records == nil {
		records = []*models.AuditRecord{}
	}
	return &models.AuditView{
		Records:         records,
		AttackRanking:   s.rankingEngine.RankAttacks(records, 0),
		SeverityRanking: s.rankingEngine.RankSeverities(records, 0),
	}
}
