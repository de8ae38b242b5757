package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"marketplace/shared/failure"
	"marketplace/transport/http/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantBody    response.Error
		wantMessage string
		wantHidden  string
	}{
		{
			name:     "failure with reason and field",
			err:      failure.New(http.StatusTooManyRequests, failure.ReasonRateLimited, "phone", "too many codes requested"),
			wantCode: http.StatusTooManyRequests,
			wantBody: response.Error{Reason: failure.ReasonRateLimited, Field: "phone"},
		},
		{
			name:        "wrapped failure keeps its own message",
			err:         fmt.Errorf("failed to accept booking: %w", failure.Conflict("booking is not pending")),
			wantCode:    http.StatusConflict,
			wantMessage: "booking is not pending",
		},
		{
			name:       "plain error is masked",
			err:        errors.New("pq: connection refused"),
			wantCode:   http.StatusInternalServerError,
			wantHidden: "pq:",
		},
		{
			name:       "internal failure is masked",
			err:        failure.InternalError(errors.New("pq: deadlock detected")),
			wantCode:   http.StatusInternalServerError,
			wantHidden: "deadlock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)

			assert.Equal(t, tt.wantBody.Reason, body.Reason)
			assert.Equal(t, tt.wantBody.Field, body.Field)

			if tt.wantHidden != "" {
				assert.NotContains(t, *body.Error, tt.wantHidden)
			}

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, *body.Error)
			}
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "b-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"b-1"}}`, rec.Body.String())
}
