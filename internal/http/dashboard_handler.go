package http

import (
	"net/http"
	"time"

	"weblog-analytics/internal/aggregators"
	"weblog-analytics/internal/models"
	"weblog-analytics/internal/streams"
)

type dashboardResponse struct {
	SnapshotID           string                `json:"snapshotId"`
	GeneratedAt          time.Time             `json:"generatedAt"`
	Day                  models.Day            `json:"day"`
	Granularity          models.Granularity    `json:"granularity"`
	TimeZone             string                `json:"timeZone"`
	Buckets              []models.TimeBucket   `json:"buckets"`
	TotalBuckets         int                   `json:"totalBuckets"`
	Dropped              int64                 `json:"dropped"`
	StatusClassRanking   []models.RankingEntry `json:"statusClassRanking"`
	TimeBucketRanking    []models.RankingEntry `json:"timeBucketRanking"`
	ClientAddressRanking []models.RankingEntry `json:"clientAddressRanking"`
	UserAgentRanking     []models.RankingEntry `json:"userAgentRanking"`
	Sources              []models.SourceStatus `json:"sources"`
}

type dashboardHandler struct {
	snapshotConsumer    streams.SnapshotConsumer
	aggregationService  aggregators.AggregationService
	maxDisplayedBuckets int
}

func NewDashboardHandler(snapshotConsumer streams.SnapshotConsumer, aggregationService aggregators.AggregationService, maxDisplayedBuckets int) AppHttpHandler {
	return &dashboardHandler{
		snapshotConsumer:    snapshotConsumer,
		aggregationService:  aggregationService,
		maxDisplayedBuckets: maxDisplayedBuckets,
	}
}

// Handle processes GET /dashboard requests. The latest snapshot is served as is when the
// requested day and granularity match it, otherwise its records are aggregated again.
func (h *dashboardHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	day, granularity, err := parseDashboardQuery(r)
	if err != nil {
		return err
	}

	snapshot := h.snapshotConsumer.Latest()
	if snapshot == nil {
		return errSnapshotUnavailable()
	}
	if day.IsZero() {
		day = snapshot.Day
	}
	if granularity == "" {
		granularity = snapshot.Granularity
	}

	view := &snapshot.Dashboard
	if day != snapshot.Day || granularity != snapshot.Granularity {
		view, err = h.aggregationService.BuildDashboard(r.Context(), snapshot.AccessRecords, snapshot.AccessDropped, day, granularity, snapshot.Location)
		if err != nil {
			return err
		}
	}

	return writeJSON(w, http.StatusOK, dashboardResponse{
		SnapshotID:           snapshot.ID,
		GeneratedAt:          snapshot.GeneratedAt,
		Day:                  day,
		Granularity:          granularity,
		TimeZone:             snapshot.TimeZone,
		Buckets:              view.Series.Head(h.maxDisplayedBuckets),
		TotalBuckets:         len(view.Series.Buckets),
		Dropped:              view.Series.Dropped,
		StatusClassRanking:   view.StatusClassRanking,
		TimeBucketRanking:    view.TimeBucketRanking,
		ClientAddressRanking: view.ClientAddressRanking,
		UserAgentRanking:     view.UserAgentRanking,
		Sources:              snapshot.Sources,
	})
}
