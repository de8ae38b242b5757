package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("validation failed")), wantCode: http.StatusBadRequest, wantMsg: "validation failed"},
		{name: "bad request from string", err: failure.BadRequestFromString("invalid input"), wantCode: http.StatusBadRequest, wantMsg: "invalid input"},
		{name: "unauthorized", err: failure.Unauthorized("no token"), wantCode: http.StatusUnauthorized, wantMsg: "no token"},
		{name: "internal", err: failure.InternalError(errors.New("boom")), wantCode: http.StatusInternalServerError, wantMsg: "boom"},
		{name: "not found", err: failure.NotFound("booking not found"), wantCode: http.StatusNotFound, wantMsg: "booking not found"},
		{name: "conflict", err: failure.Conflict("phone already registered"), wantCode: http.StatusConflict, wantMsg: "phone already registered"},
		{name: "forbidden", err: failure.Forbidden("not yours"), wantCode: http.StatusForbidden, wantMsg: "not yours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestNew(t *testing.T) {
	err := failure.New(http.StatusTooManyRequests, failure.ReasonRateLimited, "phone", "too many codes requested")

	var fail *failure.Failure
	assert.True(t, errors.As(err, &fail))
	assert.Equal(t, http.StatusTooManyRequests, fail.Code)
	assert.Equal(t, failure.ReasonRateLimited, fail.Reason)
	assert.Equal(t, "phone", fail.Field)
	assert.Equal(t, "too many codes requested", fail.Message)
}

func TestBadRequestField(t *testing.T) {
	err := failure.BadRequestField("code", "code must be 6 digits")

	var fail *failure.Failure
	assert.True(t, errors.As(err, &fail))
	assert.Equal(t, "code", fail.Field)
	assert.Empty(t, fail.Reason)
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(fmt.Errorf("wrapped: %w", failure.NotFound("x"))))
}

func TestGetReason(t *testing.T) {
	wrapped := fmt.Errorf("login failed: %w", failure.New(http.StatusForbidden, failure.ReasonAppTypeMismatch, "app_type", "mismatch"))

	assert.Equal(t, failure.ReasonAppTypeMismatch, failure.GetReason(wrapped))
	assert.True(t, failure.HasReason(wrapped, failure.ReasonAppTypeMismatch))
	assert.False(t, failure.HasReason(wrapped, failure.ReasonAccountInactive))
	assert.Empty(t, failure.GetReason(errors.New("plain")))
}
