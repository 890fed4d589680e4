package pipelines

import (
	"errors"
	"fmt"

	"weblog-analytics/internal/shared/svcerrors"
)

var (
	ErrPassInProgress = errors.New("dashboard pass already in progress")
)

const (
	codeNoSourceLoaded     = "PIP_1000"
	codeInvalidGranularity = "PIP_1001"

	codeInternalPublishFailed = "PIP_9000"
)

// errNoSourceLoaded returns an error when every configured log source failed to load.
func errNoSourceLoaded(cause error) *svcerrors.ServiceError {
	return svcerrors.NewServiceUnavailableError(codeNoSourceLoaded, "no log source could be loaded", cause)
}

// errInvalidGranularity returns an error when a pass is requested with an unsupported bucket width.
func errInvalidGranularity(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidGranularity, "granularity must be one of 15m, 30m, 1h, 2h, 12h, 1d", cause)
}

// errInternalPublishFailed returns an error when a completed snapshot cannot be handed off.
func errInternalPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPublishFailed, fmt.Errorf("publishFailed: %w", cause))
}
