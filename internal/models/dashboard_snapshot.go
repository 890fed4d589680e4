package models

import "time"

// SourceKind names one of the two log inputs.
type SourceKind string

const (
	SourceAccessLog SourceKind = "access_log"
	SourceAuditLog  SourceKind = "audit_log"
)

// ParseStats counts what happened to the lines of one source during a pass.
type ParseStats struct {
	Lines           int64            `json:"lines"`
	Parsed          int64            `json:"parsed"`
	Dropped         int64            `json:"dropped"`
	DroppedByReason map[string]int64 `json:"droppedByReason"`
}

func NewParseStats() ParseStats {
	return ParseStats{DroppedByReason: make(map[string]int64)}
}

// RecordDrop counts one dropped line under reason.
func (s *ParseStats) RecordDrop(reason string) {
	s.Lines++
	s.Dropped++
	s.DroppedByReason[reason]++
}

// RecordParsed counts one line that became a record.
func (s *ParseStats) RecordParsed() {
	s.Lines++
	s.Parsed++
}

// SourceStatus reports how one source fared in a pass. A failed source has ErrorCode set
// and contributes no records; the other source is unaffected.
type SourceStatus struct {
	Kind      SourceKind `json:"kind"`
	Key       string     `json:"key"`
	Size      int64      `json:"size"`
	ModTime   time.Time  `json:"modTime"`
	Stats     ParseStats `json:"stats"`
	ErrorCode string     `json:"errorCode,omitempty"`
	Error     string     `json:"error,omitempty"`
}

func (s SourceStatus) Failed() bool {
	return s.ErrorCode != ""
}

// DashboardSnapshot is the complete result of one pipeline pass. It is fully built before
// being handed to readers and is never modified afterwards; a newer pass replaces it.
//
// Example JSON (persisted form, records omitted):
//
//	{
//	  "id": "01J9Z3NDEKTSV4RRFFQ69G5FAV",
//	  "generatedAt": "2024-10-10T06:00:10Z",
//	  "day": "2024-10-10",
//	  "granularity": "15m",
//	  "timeZone": "Asia/Ho_Chi_Minh",
//	  "sources": [{"kind": "access_log", "key": "logs/access.log", "stats": {"lines": 4, "parsed": 4, "dropped": 0}}],
//	  "dashboard": {"series": {"buckets": [{"label": "2024-10-10 10:00", "counts": {"200-299": 2, "400-499": 1}}]}}
//	}
type DashboardSnapshot struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Day         Day            `json:"day"`
	Granularity Granularity    `json:"granularity"`
	TimeZone    string         `json:"timeZone"`
	Location    *time.Location `json:"-"`
	Sources     []SourceStatus `json:"sources"`
	Dashboard   DashboardView  `json:"dashboard"`
	Audit       AuditView      `json:"audit"`

	// AccessRecords backs on-demand re-aggregation for another day or granularity.
	AccessRecords []*LogRecord `json:"-"`
	// AccessDropped is the drop counter of the access log source.
	AccessDropped int64 `json:"-"`
}

// Source returns the status of kind, if that source was configured.
func (s *DashboardSnapshot) Source(kind SourceKind) (SourceStatus, bool) {
	for _, status := range s.Sources {
		if status.Kind == kind {
			return status, true
		}
	}
	return SourceStatus{}, false
}
