package secret_test

import (
	"marketplace/shared/secret"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{name: "six digit code", value: "482915"},
		{name: "empty", value: "", wantErr: secret.ErrEmpty},
		{name: "too long", value: strings.Repeat("9", 73), wantErr: secret.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := secret.Hash(tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.value, hash)
			assert.NoError(t, secret.Verify(tt.value, hash))
		})
	}
}

func TestHash_Salted(t *testing.T) {
	first, err := secret.Hash("123456")
	require.NoError(t, err)

	second, err := secret.Hash("123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hash, err := secret.Hash("123456")
	require.NoError(t, err)

	tests := []struct {
		name      string
		value     string
		hash      string
		wantErr   error
		malformed bool
	}{
		{name: "match", value: "123456", hash: hash},
		{name: "wrong code", value: "654321", hash: hash, wantErr: secret.ErrMismatch},
		{name: "empty code", value: "", hash: hash, wantErr: secret.ErrMismatch},
		{name: "empty hash", value: "123456", hash: "", wantErr: secret.ErrMismatch},
		{name: "malformed hash", value: "123456", hash: "not-a-hash", malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := secret.Verify(tt.value, tt.hash)

			switch {
			case tt.malformed:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, secret.ErrMismatch)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
