package ingestors

import (
	"errors"
	"fmt"

	"weblog-analytics/internal/shared/svcerrors"
)

// Per-line parse failures. A line failing with one of these is dropped and counted; it never
// aborts the source.
var (
	ErrMalformedLine       = errors.New("malformed line")
	ErrUnparsableTimestamp = errors.New("unparsable timestamp")
	ErrMalformedJSON       = errors.New("malformed json")
)

// Drop reasons, used as the reason label of dropped line counters.
const (
	DropReasonMalformedLine       = "malformed_line"
	DropReasonUnparsableTimestamp = "unparsable_timestamp"
	DropReasonMalformedJSON       = "malformed_json"
	DropReasonUnknown             = "unknown"
)

// DropReason maps a parse error to its drop reason.
func DropReason(err error) string {
	switch {
	case errors.Is(err, ErrUnparsableTimestamp):
		return DropReasonUnparsableTimestamp
	case errors.Is(err, ErrMalformedLine):
		return DropReasonMalformedLine
	case errors.Is(err, ErrMalformedJSON):
		return DropReasonMalformedJSON
	default:
		return DropReasonUnknown
	}
}

// IngestionService errors
const (
	codeMissingSource = "ING_1000"

	codeInternalSourceReadFailed = "ING_9000"
)

// errMissingSource returns an error when a configured log source does not exist.
func errMissingSource(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeMissingSource, fmt.Sprintf("log source %q not found", key), cause)
}

// errInternalSourceReadFailed returns an error when a log source exists but cannot be read.
func errInternalSourceReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSourceReadFailed, fmt.Errorf("sourceReadFailed: %w", cause))
}
