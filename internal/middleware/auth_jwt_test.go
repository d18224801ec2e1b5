package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Post("/protegido", RequireJWT(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uid": c.Locals("user_id")})
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestRequireJWTRejectsMissingToken(t *testing.T) {
	app := protectedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/protegido", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireJWTRejectsBadSignature(t *testing.T) {
	app := protectedApp()
	token := signToken(t, "otra-clave", jwt.MapClaims{
		"uid": "abc",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodPost, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireJWTRejectsExpiredToken(t *testing.T) {
	app := protectedApp()
	token := signToken(t, testSecret, jwt.MapClaims{
		"uid": "abc",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodPost, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireJWTRejectsTokenWithoutUID(t *testing.T) {
	app := protectedApp()
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodPost, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireJWTAcceptsValidToken(t *testing.T) {
	app := protectedApp()
	token := signToken(t, testSecret, jwt.MapClaims{
		"uid": "68bd6ff6f80438824239b8a9",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodPost, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireJWTFallsBackToSubject(t *testing.T) {
	app := protectedApp()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "68bd6ff6f80438824239b8a9",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodPost, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
