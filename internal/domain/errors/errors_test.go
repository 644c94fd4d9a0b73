package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrNotFound.WrapMessage("service location 42")

	var appErr AppError
	require.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
	assert.Contains(t, wrapped.Error(), "service location 42")
}

func TestBaseError_WithDetailsDoesNotMutate(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("latitude out of range")

	assert.Equal(t, "latitude out of range", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to list service locations")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to list service locations", err.Details())
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}
