package validator_test

import (
	"marketplace/shared/failure"
	"marketplace/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeRequest struct {
	Phone   string `json:"phone"    validate:"required,phone"`
	AppType string `json:"app_type" validate:"required,apptype"`
	Purpose string `json:"purpose"  validate:"required,oneof=registration login"`
}

type cancelRequest struct {
	Reason string `json:"reason" validate:"max=10"`
	Admin  string `json:"admin"  validate:"empty"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{
			name: "valid local number",
			body: `{"phone":"0812-3456-7890","app_type":"client","purpose":"login"}`,
		},
		{
			name: "valid international number",
			body: `{"phone":"+6281234567890","app_type":"provider","purpose":"registration"}`,
		},
		{
			name:      "missing phone",
			body:      `{"app_type":"client","purpose":"login"}`,
			wantField: "phone",
			wantMsg:   "phone is required",
		},
		{
			name:      "letters in phone",
			body:      `{"phone":"0812abc","app_type":"client","purpose":"login"}`,
			wantField: "phone",
			wantMsg:   "phone must be a valid phone number",
		},
		{
			name:      "unknown app type",
			body:      `{"phone":"081234567890","app_type":"admin","purpose":"login"}`,
			wantField: "app_type",
			wantMsg:   "app_type must be one of client provider",
		},
		{
			name:      "unknown purpose",
			body:      `{"phone":"081234567890","app_type":"client","purpose":"reset"}`,
			wantField: "purpose",
			wantMsg:   "purpose must be one of registration login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := codeRequest{}

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantMsg == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, err.Error())

			var fail *failure.Failure
			require.ErrorAs(t, err, &fail)
			assert.Equal(t, tt.wantField, fail.Field)
		})
	}
}

func TestValidate_MalformedBody(t *testing.T) {
	req := codeRequest{}

	err := validator.Validate(strings.NewReader(`{"phone":`), &req)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "failed to decode request body")
}

func TestValidateStruct_CustomTags(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&cancelRequest{Reason: "late"}))

	err := validator.ValidateStruct(&cancelRequest{Reason: "running very late"})
	assert.Equal(t, "reason must be less than or equal to 10", err.Error())

	err = validator.ValidateStruct(&cancelRequest{Admin: "me"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("081234567890", "phone"))
	assert.NoError(t, validator.ValidateVar(5, "gte=1,lte=10"))

	err := validator.ValidateVar(0, "gte=1")
	require.Error(t, err)
	assert.Equal(t, "must be greater than or equal to 1", strings.TrimSpace(err.Error()))
}
