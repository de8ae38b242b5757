package permissions_test

import (
	"marketplace/permissions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)

	for _, endpoint := range data.Endpoints {
		assert.NotEmpty(t, endpoint.Path)
		assert.NotEmpty(t, endpoint.Method, endpoint.Path)

		if !endpoint.Skip {
			assert.NotEmpty(t, endpoint.Permissions, "%s %s allows nobody", endpoint.Method, endpoint.Path)
		}
	}
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{name: "public auth route", path: "/v1/auth/login", method: http.MethodPost, wantSkip: true},
		{name: "sub-router index with trailing slash", path: "/v1/bookings/", method: http.MethodPost, wantRoles: []string{"admin", "client"}},
		{name: "provider only", path: "/v1/bookings/{id}/accept", method: http.MethodPost, wantRoles: []string{"provider"}},
		{name: "admin settings", path: "/v1/settings/{key}", method: http.MethodPut, wantRoles: []string{"admin"}},
		{name: "method mismatch", path: "/v1/bookings/{id}/accept", method: http.MethodGet},
		{name: "unknown path", path: "/v1/unknown", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.ElementsMatch(t, tt.wantRoles, permission.Permissions)
		})
	}
}
