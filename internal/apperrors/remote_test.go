package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestRemoteError_MessageFieldKeyed(t *testing.T) {
	re := apperrors.NewRemoteError(http.StatusBadRequest, []byte(`{"email":["already used","invalid"],"non_field_errors":["bad pair"],"phone":"required"}`))

	assert.Equal(t, "email: already used, invalid\nbad pair\nphone: required", re.Message("failed to save"))
}

func TestRemoteError_MessageDetailFallback(t *testing.T) {
	re := apperrors.NewRemoteError(http.StatusForbidden, []byte(`{"detail":"You do not have permission."}`))
	assert.Equal(t, "You do not have permission.", re.Message("failed to save"))
}

func TestRemoteError_MessageGenericFallback(t *testing.T) {
	re := &apperrors.RemoteError{Status: http.StatusInternalServerError, Payload: map[string]any{}}
	assert.Equal(t, "failed to save", re.Message("failed to save"))

	re = apperrors.NewRemoteError(http.StatusBadGateway, []byte("<html>bad gateway</html>"))
	assert.Equal(t, "<html>bad gateway</html>", re.Message("failed to save"))
}

func TestRemoteError_EmptyBodyUsesStatusText(t *testing.T) {
	re := apperrors.NewRemoteError(http.StatusNotFound, nil)
	assert.Equal(t, "Not Found", re.Payload)
}

func TestRemoteError_Is(t *testing.T) {
	unauthorized := apperrors.NewRemoteError(http.StatusUnauthorized, nil)
	wrapped := fmt.Errorf("fetch clients: %w", unauthorized)

	assert.True(t, errors.Is(wrapped, apperrors.ErrRemote))
	assert.True(t, errors.Is(wrapped, apperrors.ErrUnauthorized))
	assert.False(t, errors.Is(apperrors.NewRemoteError(http.StatusBadRequest, nil), apperrors.ErrUnauthorized))
	assert.True(t, errors.Is(apperrors.NewRemoteError(http.StatusNotFound, nil), apperrors.ErrNotFound))

	re, ok := apperrors.AsRemote(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, re.Status)
}

func TestTransportError(t *testing.T) {
	re := apperrors.NewTransportError(errors.New("dial tcp: connection refused"))
	assert.Equal(t, 0, re.Status)
	assert.Equal(t, "dial tcp: connection refused", re.Message("x"))
	assert.Contains(t, re.Error(), "connection refused")
}

func TestValidationError(t *testing.T) {
	err := apperrors.NewValidationError("name_en", "is required")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, "validation error: name_en is required", err.Error())
}

func TestPartialSubmissionError(t *testing.T) {
	cause := apperrors.NewRemoteError(http.StatusBadRequest, []byte(`{"email":["taken"]}`))
	err := fmt.Errorf("submit wizard: %w", &apperrors.PartialSubmissionError{Succeeded: 2, Failed: 1, Cause: cause})

	assert.True(t, errors.Is(err, apperrors.ErrPartialSubmission))
	assert.True(t, errors.Is(err, apperrors.ErrRemote))
	re, ok := apperrors.AsRemote(err)
	assert.True(t, ok)
	assert.Equal(t, "email: taken", re.Message("x"))
	assert.Contains(t, err.Error(), "1 of 3 failed")
}
