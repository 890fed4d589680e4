package aggregators

import (
	"fmt"

	"weblog-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidGranularity = "AGG_1000"

	codeInternalAggregateFailed = "AGG_9000"
)

// errInvalidGranularity returns an error when a granularity token is not one of the supported ones.
func errInvalidGranularity(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidGranularity, "granularity must be one of 15m, 30m, 1h, 2h, 12h, 1d", cause)
}

// errInternalAggregateFailed returns an error when bucketing records fails.
func errInternalAggregateFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAggregateFailed, fmt.Errorf("aggregateFailed: %w", cause))
}
