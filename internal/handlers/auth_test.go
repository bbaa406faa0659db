package handlers_test

import (
	"net/http"
	"testing"

	"digital-prescription-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name":     "John Doe",
		"email":    "doctor@example.com",
		"password": "password123",
		"role":     "doctor",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered models.UserSanitized
	decodeData(t, w, &registered)
	assert.Equal(t, models.RoleDoctor, registered.Role)

	w = env.doJSON(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    "doctor@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		AccessToken  string               `json:"accessToken"`
		RefreshToken string               `json:"refreshToken"`
		User         models.UserSanitized `json:"user"`
	}
	decodeData(t, w, &login)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)
	assert.Equal(t, registered.ID, login.User.ID)

	// Access token works against a protected endpoint
	w = env.doJSON(t, http.MethodGet, "/api/users/me", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]string{
		"name":     "John Doe",
		"email":    "doctor@example.com",
		"password": "password123",
		"role":     "doctor",
	}
	w := env.doJSON(t, http.MethodPost, "/api/users/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/users/register", "", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Error, "already exists")
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name":     "Eve",
		"email":    "eve@example.com",
		"password": "password123",
		"role":     "superuser",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, models.RoleDoctor)

	w := env.doJSON(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    "doctor-" + t.Name() + "@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshTokenRotation(t *testing.T) {
	env := newTestEnv(t)

	env.doJSON(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name":     "John Doe",
		"email":    "doctor@example.com",
		"password": "password123",
		"role":     "doctor",
	})

	w := env.doJSON(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    "doctor@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		RefreshToken string `json:"refreshToken"`
	}
	decodeData(t, w, &login)

	w = env.doJSON(t, http.MethodPost, "/api/users/refresh-token", "", map[string]string{
		"refreshToken": login.RefreshToken,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var refreshed struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	decodeData(t, w, &refreshed)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old refresh token was revoked by the rotation
	w = env.doJSON(t, http.MethodPost, "/api/users/refresh-token", "", map[string]string{
		"refreshToken": login.RefreshToken,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
