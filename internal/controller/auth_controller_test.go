package controller

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inmosalta_backend/pkg/config"
	"inmosalta_backend/pkg/slot"
	"inmosalta_backend/pkg/utils/jwt"
)

func newAuthEnv(t *testing.T) *testEnv {
	t.Helper()
	jwt.Init("test-secret")

	env := newTestEnv(t)
	authController, err := NewAuthController(env.slots, config.AdminConfig{
		Name:     "Lucas Admin",
		Email:    "lucas@mail.com",
		Password: "12341234",
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/auth/me", authController.GetMe)
	app.Post("/api/auth/logout", authController.Logout)
	env.app = app
	return env
}

func TestLoginWithValidCredentials(t *testing.T) {
	env := newAuthEnv(t)

	resp := env.request(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "lucas@mail.com",
		"password": "12341234",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token        string         `json:"token"`
		RefreshToken string         `json:"refreshToken"`
		User         map[string]any `json:"user"`
	}
	decodeBody(t, resp, &out)
	assert.NotEmpty(t, out.Token)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "lucas@mail.com", out.User["email"])

	// The session landed in the slots.
	_, ok, err := env.slots.Get(slot.SlotCurrentUser)
	require.NoError(t, err)
	assert.True(t, ok)
	raw, ok, err := env.slots.Get(slot.SlotAuthToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, out.Token, string(raw))

	// And the issued token round-trips through validation.
	claims, err := jwt.ValidateToken(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "lucas@mail.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	env := newAuthEnv(t)

	resp := env.request(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "lucas@mail.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	env := newAuthEnv(t)

	resp := env.request(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "otro@mail.com",
		"password": "12341234",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// failingStore breaks writes to one slot so handler error paths can be
// driven from a test.
type failingStore struct {
	slot.Store
	failKey string
}

func (s *failingStore) Put(key string, value []byte) error {
	if key == s.failKey {
		return errors.New("slot write failed")
	}
	return s.Store.Put(key, value)
}

func TestLoginFailsWhenTokenSlotWriteFails(t *testing.T) {
	jwt.Init("test-secret")

	for _, key := range []string{slot.SlotAuthToken, slot.SlotRefreshToken} {
		slots := &failingStore{Store: slot.NewMemoryStore(), failKey: key}
		authController, err := NewAuthController(slots, config.AdminConfig{
			Name:     "Lucas Admin",
			Email:    "lucas@mail.com",
			Password: "12341234",
		})
		require.NoError(t, err)

		app := fiber.New()
		app.Post("/api/auth/login", authController.Login)

		env := &testEnv{app: app}
		resp := env.request(t, http.MethodPost, "/api/auth/login", map[string]any{
			"email":    "lucas@mail.com",
			"password": "12341234",
		})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, "failing slot %s", key)
	}
}

func TestGetMeWithoutSession(t *testing.T) {
	env := newAuthEnv(t)

	resp := env.request(t, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutClearsSessionSlots(t *testing.T) {
	env := newAuthEnv(t)

	resp := env.request(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "lucas@mail.com",
		"password": "12341234",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	for _, key := range []string{slot.SlotCurrentUser, slot.SlotAuthToken, slot.SlotRefreshToken} {
		_, ok, err := env.slots.Get(key)
		require.NoError(t, err)
		assert.False(t, ok, "slot %s should be gone", key)
	}

	resp = env.request(t, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
