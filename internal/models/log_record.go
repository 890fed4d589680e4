package models

import "time"

// LogRecord is one request parsed from a combined-format access log line.
// Records are built once by the access log parser and never mutated afterwards.
type LogRecord struct {
	ClientAddress string    `json:"clientAddress"`
	Timestamp     time.Time `json:"timestamp"`
	Method        string    `json:"method"`
	Path          string    `json:"path"`
	Protocol      string    `json:"protocol"`
	StatusCode    int       `json:"statusCode"`
	BytesSent     int64     `json:"bytesSent"`
	UserAgent     string    `json:"userAgent"`
}

func (r *LogRecord) StatusClass() StatusClass {
	return StatusClassOf(r.StatusCode)
}
