package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"gallery/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestAdminLoginLogout(t *testing.T) {
	router := newTestRouter(t)

	// Wrong credentials
	w := doJSON(router, "POST", "/api/admin/login",
		map[string]string{"username": "admin", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Missing fields
	w = doJSON(router, "POST", "/api/admin/login", map[string]string{"username": "admin"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Correct credentials mark the session privileged
	cookies := loginAdmin(t, router)
	w = do(router, "GET", "/api/admin/status", "", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	var status struct {
		Admin bool `json:"admin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.Admin)

	// Logout clears it
	w = do(router, "POST", "/api/admin/logout", "", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(router, "GET", "/api/admin/status", "", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.Admin)
}

func TestAdminLoginBcryptHash(t *testing.T) {
	router := newTestRouter(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	config.ADMIN_PASSWORD_HASH = string(hash)
	defer func() { config.ADMIN_PASSWORD_HASH = "" }()

	w := doJSON(router, "POST", "/api/admin/login",
		map[string]string{"username": "admin", "password": "hunter2"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// The plain-text password no longer works once a hash is configured
	w = doJSON(router, "POST", "/api/admin/login",
		map[string]string{"username": "admin", "password": "secret"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	router := newTestRouter(t)

	body, contentType := imageForm(t, "no auth")
	w := do(router, "POST", "/api/admin/artworks", contentType, body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, "DELETE", "/api/admin/artworks/1", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
