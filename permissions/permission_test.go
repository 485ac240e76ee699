package permissions_test

import (
	"net/http"
	"testing"

	"resort/permissions"
	"resort/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`{
		"skip": false,
		"endpoints": [
			{"path": "/v1/auth/login", "method": "POST", "skip": true},
			{"path": "/v1/rooms/{id}", "method": "DELETE", "permissions": ["admin"]},
			{"path": "/v1/rooms/{id}", "method": "DELETE", "permissions": ["front_desk"]}
		]
	}`)

	perms, err := permissions.Parse(data)
	require.NoError(t, err)

	assert.True(t, perms.FindPermissions("/v1/auth/login", http.MethodPost).Skip)

	deleteRoom := perms.FindPermissions("/v1/rooms/{id}", "delete")
	assert.True(t, deleteRoom.Allows(constant.RoleAdmin))
	assert.False(t, deleteRoom.Allows(constant.RoleFrontDesk))

	unknown := perms.FindPermissions("/v1/unknown", http.MethodGet)
	assert.False(t, unknown.Skip)
	assert.True(t, unknown.Allows(constant.RoleFrontDesk))

	_, err = permissions.Parse([]byte(`{"endpoints": [`))
	assert.Error(t, err)
}

func TestGet_EmbeddedDocument(t *testing.T) {
	perms := permissions.Get()
	require.NotNil(t, perms)

	assert.True(t, perms.FindPermissions("/v1/auth/login", http.MethodPost).Skip)
	assert.True(t, perms.FindPermissions("/v1/reservations/{id}/check-out", http.MethodPost).Allows(constant.RoleFrontDesk))
	assert.False(t, perms.FindPermissions("/v1/rooms/{id}", http.MethodDelete).Allows(constant.RoleFrontDesk))
}
