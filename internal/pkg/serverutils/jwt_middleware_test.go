package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nec-chat-be/internal/constant"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  "6f1e1d9c-0000-4000-8000-000000000001",
		"username": "ana",
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedApp(extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{JwtMiddleware}, extra...)
	handlers = append(handlers, func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"username": LocalUsername(ctx)})
	})
	app.Get("/protected", handlers...)
	return app
}

func TestJwtMiddlewareRejectsMissingToken(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestJwtMiddlewareRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "right_secret")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: constant.AuthTokenCookie, Value: signToken(t, "wrong_secret", "USER")})
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestJwtMiddlewareAcceptsCookieToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: constant.AuthTokenCookie, Value: signToken(t, "test_secret", "USER")})
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestJwtMiddlewareAcceptsBearerHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test_secret", "USER"))
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestAdminOnlyRejectsUserRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := protectedApp(AdminOnly)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: constant.AuthTokenCookie, Value: signToken(t, "test_secret", "USER")})
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestAdminOnlyAdmitsAdminRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := protectedApp(AdminOnly)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: constant.AuthTokenCookie, Value: signToken(t, "test_secret", "ADMIN")})
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
