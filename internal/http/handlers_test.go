package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weblog-analytics/internal/aggregators"
	aggregatormocks "weblog-analytics/internal/aggregators/mocks"
	"weblog-analytics/internal/models"
	pipelinemocks "weblog-analytics/internal/pipelines/mocks"
	"weblog-analytics/internal/pipelines"
	"weblog-analytics/internal/shared/loggers"
	"weblog-analytics/internal/shared/svcerrors"
	streammocks "weblog-analytics/internal/streams/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ict = time.FixedZone("ICT", 7*60*60)

func testSnapshot(t *testing.T) *models.DashboardSnapshot {
	t.Helper()

	records := []*models.LogRecord{
		{ClientAddress: "10.0.0.1", Timestamp: time.Date(2024, 10, 10, 10, 3, 0, 0, ict), StatusCode: 200},
		{ClientAddress: "10.0.0.2", Timestamp: time.Date(2024, 10, 10, 10, 7, 0, 0, ict), StatusCode: 404},
		{ClientAddress: "10.0.0.1", Timestamp: time.Date(2024, 10, 10, 10, 20, 0, 0, ict), StatusCode: 200},
		{ClientAddress: "10.0.0.3", Timestamp: time.Date(2024, 10, 10, 11, 5, 0, 0, ict), StatusCode: 500},
		{ClientAddress: "10.0.0.4", Timestamp: time.Date(2024, 10, 11, 9, 0, 0, 0, ict), StatusCode: 301},
	}
	day := models.Day{Year: 2024, Month: time.October, Day: 10}
	service := aggregators.NewAggregationService(aggregators.NewTimeBucketAggregator(), aggregators.NewRankingEngine(), aggregators.RankingLimits{})
	view, err := service.BuildDashboard(t.Context(), records, 2, day, models.Granularity15Minutes, ict)
	require.NoError(t, err)

	auditRecords := []*models.AuditRecord{{TransactionID: "a", AttackName: "REQUEST-930-APPLICATION-ATTACK-LFI", Severity: "CRITICAL"}}
	return &models.DashboardSnapshot{
		ID:          "01J9Z3NDEKTSV4RRFFQ69G5FAV",
		GeneratedAt: time.Date(2024, 10, 10, 6, 0, 0, 0, time.UTC),
		Day:         day,
		Granularity: models.Granularity15Minutes,
		TimeZone:    "ICT",
		Location:    ict,
		Sources: []models.SourceStatus{
			{Kind: models.SourceAccessLog, Key: "logs/access.log", Stats: models.NewParseStats()},
			{Kind: models.SourceAuditLog, Key: "logs/audit.json", Stats: models.NewParseStats()},
		},
		Dashboard:     *view,
		Audit:         *service.BuildAudit(t.Context(), auditRecords),
		AccessRecords: records,
		AccessDropped: 2,
	}
}

type testRouter struct {
	handler  http.Handler
	consumer *streammocks.MockSnapshotConsumer
	pipeline *pipelinemocks.MockDashboardPipeline
}

func newTestRouter(t *testing.T, maxDisplayedBuckets int) testRouter {
	ctrl := gomock.NewController(t)
	consumer := streammocks.NewMockSnapshotConsumer(ctrl)
	pipeline := pipelinemocks.NewMockDashboardPipeline(ctrl)
	service := aggregators.NewAggregationService(aggregators.NewTimeBucketAggregator(), aggregators.NewRankingEngine(), aggregators.RankingLimits{})
	handler := NewRouter(RouterConfig{MaxDisplayedBuckets: maxDisplayedBuckets}, consumer, service, pipeline, loggers.Nop())
	return testRouter{handler: handler, consumer: consumer, pipeline: pipeline}
}

func (tr testRouter) do(method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	tr.handler.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	return errorResponse
}

func TestDashboardHandler_ServesLatestSnapshot(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, 10)
	tr.consumer.EXPECT().Latest().Return(testSnapshot(t))

	rr := tr.do(http.MethodGet, "/dashboard")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no-store", rr.Header().Get(headerCacheControl))

	var response dashboardResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "01J9Z3NDEKTSV4RRFFQ69G5FAV", response.SnapshotID)
	assert.Equal(t, models.Granularity15Minutes, response.Granularity)
	assert.Equal(t, 3, response.TotalBuckets)
	assert.Equal(t, int64(2), response.Dropped)
	assert.Equal(t, []models.TimeBucket{
		{Label: "2024-10-10 10:00", Counts: map[models.StatusClass]int64{models.StatusClass2xx: 1, models.StatusClass4xx: 1}},
		{Label: "2024-10-10 10:15", Counts: map[models.StatusClass]int64{models.StatusClass2xx: 1}},
		{Label: "2024-10-10 11:00", Counts: map[models.StatusClass]int64{models.StatusClass5xx: 1}},
	}, response.Buckets)
	assert.Equal(t, []models.RankingEntry{
		{Label: "10.0.0.1", Count: 2},
		{Label: "10.0.0.2", Count: 1},
		{Label: "10.0.0.3", Count: 1},
	}, response.ClientAddressRanking)
	assert.Len(t, response.Sources, 2)
}

func TestDashboardHandler_ReaggregatesForAnotherDayAndGranularity(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, 1)
	tr.consumer.EXPECT().Latest().Return(testSnapshot(t)).Times(2)

	rr := tr.do(http.MethodGet, "/dashboard?granularity=1h")
	require.Equal(t, http.StatusOK, rr.Code)

	var response dashboardResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, models.Granularity1Hour, response.Granularity)
	assert.Equal(t, 2, response.TotalBuckets)
	assert.Equal(t, []models.TimeBucket{
		{Label: "2024-10-10 10:00", Counts: map[models.StatusClass]int64{models.StatusClass2xx: 2, models.StatusClass4xx: 1}},
	}, response.Buckets)

	rr = tr.do(http.MethodGet, "/dashboard?date=2024-10-11&granularity=1d")
	require.Equal(t, http.StatusOK, rr.Code)
	response = dashboardResponse{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, models.Day{Year: 2024, Month: time.October, Day: 11}, response.Day)
	assert.Equal(t, []models.TimeBucket{
		{Label: "2024-10-11", Counts: map[models.StatusClass]int64{models.StatusClass3xx: 1}},
	}, response.Buckets)
	assert.Equal(t, []models.RankingEntry{{Label: "10.0.0.4", Count: 1}}, response.ClientAddressRanking)
}

func TestDashboardHandler_ReaggregationFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	consumer := streammocks.NewMockSnapshotConsumer(ctrl)
	aggregationService := aggregatormocks.NewMockAggregationService(ctrl)
	snapshot := testSnapshot(t)

	consumer.EXPECT().Latest().Return(snapshot)
	aggregationService.EXPECT().
		BuildDashboard(gomock.Any(), snapshot.AccessRecords, int64(2), snapshot.Day, models.Granularity1Day, ict).
		Return(nil, svcerrors.NewInternalError("AGG_9000", errors.New("boom")))

	handler := errorHandlingAdapter(NewDashboardHandler(consumer, aggregationService, 10))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard?granularity=1d", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "AGG_9000", decodeError(t, rr).ErrorCode)
}

func TestDashboardHandler_InvalidParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		target       string
		expectedCode string
	}{
		{name: "unknown granularity", target: "/dashboard?granularity=5m", expectedCode: "DASH_1001"},
		{name: "malformed date", target: "/dashboard?date=10/10/2024", expectedCode: "DASH_1000"},
		{name: "impossible date", target: "/dashboard?date=2024-02-30", expectedCode: "DASH_1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := newTestRouter(t, 10)
			rr := tr.do(http.MethodGet, tt.target)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			errorResponse := decodeError(t, rr)
			assert.Equal(t, tt.expectedCode, errorResponse.ErrorCode)
			assert.Equal(t, "invalid_argument", errorResponse.ErrorCategory)
		})
	}
}

func TestDashboardHandler_NoSnapshotYet(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, 10)
	tr.consumer.EXPECT().Latest().Return(nil).Times(2)

	for _, target := range []string{"/dashboard", "/audit"} {
		rr := tr.do(http.MethodGet, target)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "DASH_9000", decodeError(t, rr).ErrorCode)
	}
}

func TestAuditHandler(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, 10)
	tr.consumer.EXPECT().Latest().Return(testSnapshot(t))

	rr := tr.do(http.MethodGet, "/audit")
	require.Equal(t, http.StatusOK, rr.Code)

	var response auditResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Len(t, response.Records, 1)
	assert.Equal(t, "a", response.Records[0].TransactionID)
	assert.Equal(t, []models.RankingEntry{{Label: "REQUEST-930-APPLICATION-ATTACK-LFI", Count: 1}}, response.AttackRanking)
	assert.Equal(t, []models.RankingEntry{{Label: "CRITICAL", Count: 1}}, response.SeverityRanking)
	require.NotNil(t, response.Source)
	assert.Equal(t, "logs/audit.json", response.Source.Key)
}

func TestRefreshHandler(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, 10)
	snapshot := testSnapshot(t)
	tr.pipeline.EXPECT().Run(gomock.Any(), models.Day{}, models.Granularity1Hour).Return(snapshot, nil)

	rr := tr.do(http.MethodPost, "/refresh?granularity=1h")
	require.Equal(t, http.StatusOK, rr.Code)

	var response refreshResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, snapshot.ID, response.SnapshotID)
}

func TestRefreshHandler_PassInProgress(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, 10)
	tr.pipeline.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, pipelines.ErrPassInProgress)

	rr := tr.do(http.MethodPost, "/refresh")
	assert.Equal(t, http.StatusConflict, rr.Code)
	errorResponse := decodeError(t, rr)
	assert.Equal(t, "DASH_1002", errorResponse.ErrorCode)
	assert.Equal(t, "resource_conflict", errorResponse.ErrorCategory)
}

func TestRefreshHandler_PassFailed(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, 10)
	tr.pipeline.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	rr := tr.do(http.MethodPost, "/refresh")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "SYS_9001", decodeError(t, rr).ErrorCode)
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, 10)
	rr := tr.do(http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rr.Code)
}
