package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotvista/plotvista/internal/model"
)

func TestCurrentUser(t *testing.T) {
	e := newTestServer(t)

	w := doJSON(e, http.MethodGet, "/api/users/me", nil, bearerToken(t, "manager"))
	require.Equal(t, http.StatusOK, w.Code)

	var u model.User
	decodeBody(t, w, &u)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "manager", u.Username)
	assert.Equal(t, "manager@plotvista.com", u.Email)
	assert.Equal(t, model.RoleManager, u.Role)
	assert.True(t, u.IsActive)

	// The credential hash never appears in responses.
	assert.NotContains(t, w.Body.String(), "hashed_password")

	w = doJSON(e, http.MethodGet, "/api/users/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListUsers(t *testing.T) {
	e := newTestServer(t)

	w := doJSON(e, http.MethodGet, "/api/users", nil, bearerToken(t, "manager"))
	require.Equal(t, http.StatusOK, w.Code)

	var users []model.User
	decodeBody(t, w, &users)
	require.Len(t, users, 1)
	assert.Equal(t, model.RoleManager, users[0].Role)

	// Listing accounts is manager-only.
	w = doJSON(e, http.MethodGet, "/api/users", nil, bearerToken(t, "viewer"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(e, http.MethodGet, "/api/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
