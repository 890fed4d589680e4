package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"weblog-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_ServiceError(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Equal(t, "", appWriter.ErrorCode())
	assert.Equal(t, "", appWriter.ErrorCategory())

	appWriter.SetServiceError(svcerrors.NewInvalidArgumentError("DASH_1001", "bad granularity", nil))
	assert.Equal(t, "DASH_1001", appWriter.ErrorCode())
	assert.Equal(t, "invalid_argument", appWriter.ErrorCategory())

	appWriter.SetServiceError(svcerrors.NewServiceUnavailableError("DASH_9000", "not ready", nil))
	assert.Equal(t, "DASH_9000", appWriter.ErrorCode())
	assert.Equal(t, "service_unavailable", appWriter.ErrorCategory())

	appWriter.SetServiceError(nil)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_TracksStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	appWriter.WriteHeader(http.StatusConflict)
	_, _ = appWriter.Write([]byte("busy"))

	assert.Equal(t, http.StatusConflict, appWriter.Status())
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "busy", rr.Body.String())

	status, errorCode, errorCategory := responseOutcome(newAppResponseWriter(httptest.NewRecorder(), 1))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "", errorCode)
	assert.Equal(t, "", errorCategory)
}
