package streams

import (
	"fmt"

	"weblog-analytics/internal/shared/svcerrors"
)

const (
	codeInternalSnapshotStoreFailed = "STR_9000"
)

// errInternalSnapshotStoreFailed returns an error when a consumed snapshot cannot be persisted.
func errInternalSnapshotStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSnapshotStoreFailed, fmt.Errorf("snapshotStoreFailed: %w", cause))
}
