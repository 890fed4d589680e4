package http

import (
	"net/http"
	"time"

	"weblog-analytics/internal/models"
	"weblog-analytics/internal/streams"
)

type auditResponse struct {
	SnapshotID      string                `json:"snapshotId"`
	GeneratedAt     time.Time             `json:"generatedAt"`
	Records         []*models.AuditRecord `json:"records"`
	AttackRanking   []models.RankingEntry `json:"attackRanking"`
	SeverityRanking []models.RankingEntry `json:"severityRanking"`
	Source          *models.SourceStatus  `json:"source,omitempty"`
}

type auditHandler struct {
	snapshotConsumer streams.SnapshotConsumer
}

func NewAuditHandler(snapshotConsumer streams.SnapshotConsumer) AppHttpHandler {
	return &auditHandler{snapshotConsumer: snapshotConsumer}
}

// Handle processes GET /audit requests.
func (h *auditHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	snapshot := h.snapshotConsumer.Latest()
	if snapshot == nil {
		return errSnapshotUnavailable()
	}

	response := auditResponse{
		SnapshotID:      snapshot.ID,
		GeneratedAt:     snapshot.GeneratedAt,
		Records:         snapshot.Audit.Records,
		AttackRanking:   snapshot.Audit.AttackRanking,
		SeverityRanking: snapshot.Audit.SeverityRanking,
	}
	if status, ok := snapshot.Source(models.SourceAuditLog); ok {
		response.Source = &status
	}
	return writeJSON(w, http.StatusOK, response)
}
