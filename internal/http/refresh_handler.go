package http

import (
	"errors"
	"net/http"
	"time"

	"weblog-analytics/internal/models"
	"weblog-analytics/internal/pipelines"
)

type refreshResponse struct {
	SnapshotID  string                `json:"snapshotId"`
	GeneratedAt time.Time             `json:"generatedAt"`
	Day         models.Day            `json:"day"`
	Granularity models.Granularity    `json:"granularity"`
	Sources     []models.SourceStatus `json:"sources"`
}

type refreshHandler struct {
	pipeline pipelines.DashboardPipeline
}

func NewRefreshHandler(pipeline pipelines.DashboardPipeline) AppHttpHandler {
	return &refreshHandler{pipeline: pipeline}
}

// Handle processes POST /refresh requests by running a pass right away.
func (h *refreshHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	day, granularity, err := parseDashboardQuery(r)
	if err != nil {
		return err
	}

	snapshot, err := h.pipeline.Run(r.Context(), day, granularity)
	if err != nil {
		if errors.Is(err, pipelines.ErrPassInProgress) {
			return errPassInProgress(err)
		}
		return err
	}

	return writeJSON(w, http.StatusOK, refreshResponse{
		SnapshotID:  snapshot.ID,
		GeneratedAt: snapshot.GeneratedAt,
		Day:         snapshot.Day,
		Granularity: snapshot.Granularity,
		Sources:     snapshot.Sources,
	})
}
