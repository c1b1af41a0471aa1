package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studynotion/config"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": UserID(c)})
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, authHeader string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest("GET", "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestJWTMiddleware(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := newProtectedApp()

	t.Run("valid token stores user id", func(t *testing.T) {
		token, err := GenerateJWT(42, "ada@example.com")
		require.NoError(t, err)

		status, body := doGet(t, app, "Bearer "+token)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, float64(42), body["userId"])
	})

	t.Run("missing header", func(t *testing.T) {
		status, body := doGet(t, app, "")

		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, false, body["status"])
		assert.Equal(t, "Missing or invalid Authorization header", body["message"])
	})

	t.Run("not a bearer token", func(t *testing.T) {
		status, body := doGet(t, app, "Basic abc")

		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Invalid Authorization header format", body["message"])
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": 1})
		signed, err := token.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		status, body := doGet(t, app, "Bearer "+signed)

		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Invalid or expired token", body["message"])
	})

	t.Run("token without user id", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "x@example.com"})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		status, body := doGet(t, app, "Bearer "+signed)

		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Invalid token payload", body["message"])
	})
}
