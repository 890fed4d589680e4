package http

import (
	"weblog-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidDate         = "DASH_1000"
	codeInvalidGranularity  = "DASH_1001"
	codePassInProgress      = "DASH_1002"
	codeSnapshotUnavailable = "DASH_9000"
)

// errInvalidDate returns an error when the date query parameter is not YYYY-MM-DD.
func errInvalidDate(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDate, "date must be formatted as YYYY-MM-DD", cause)
}

// errInvalidGranularity returns an error when the granularity query parameter is unknown.
func errInvalidGranularity(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidGranularity, "granularity must be one of 15m, 30m, 1h, 2h, 12h, 1d", cause)
}

// errPassInProgress returns an error when a refresh is requested while a pass runs.
func errPassInProgress(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codePassInProgress, "a dashboard pass is already in progress", cause)
}

// errSnapshotUnavailable returns an error when no snapshot has been published yet.
func errSnapshotUnavailable() *svcerrors.ServiceError {
	return svcerrors.NewServiceUnavailableError(codeSnapshotUnavailable, "dashboard is not ready yet", nil)
}
