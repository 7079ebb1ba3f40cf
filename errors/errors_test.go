package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("error string includes the code and cause", func(t *testing.T) {
		err := ErrQueryFailed(stderrors.New("connection reset"))
		assert.Equal(t, "[QUERY_FAILED] Search query execution failed: connection reset", err.Error())
	})

	t.Run("error string without a cause", func(t *testing.T) {
		err := ErrInvalidArgument("user ID must be a valid UUID")
		assert.Equal(t, "[INVALID_ARGUMENT] user ID must be a valid UUID", err.Error())
	})

	t.Run("with detail", func(t *testing.T) {
		err := ErrNotFound("meeting").WithDetail("meeting_id", "42")
		assert.Equal(t, "42", err.Details["meeting_id"])
		assert.Equal(t, "meeting not found", err.Message)
	})

	t.Run("http codes", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, ErrInvalidPayload(nil).HTTPCode)
		assert.Equal(t, http.StatusNotFound, ErrNotFound("meeting").HTTPCode)
		assert.Equal(t, http.StatusConflict, ErrAlreadyExists("user").HTTPCode)
		assert.Equal(t, http.StatusServiceUnavailable, ErrConnectivity(nil).HTTPCode)
		assert.Equal(t, http.StatusServiceUnavailable, ErrSessionUnavailable(nil).HTTPCode)
		assert.Equal(t, http.StatusInternalServerError, ErrInternal(nil).HTTPCode)
	})
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "OK", ErrorCode_HTTP_OK.String())
	assert.Equal(t, "INTERNAL", ErrorCode_INTERNAL.String())
	assert.Equal(t, "UNSUPPORTED_OPERATION", ErrorCode_UNSUPPORTED_OPERATION.String())
	assert.Equal(t, "UNKNOWN", ErrorCode(9999).String())
}
