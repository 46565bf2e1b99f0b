package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nec-chat-be/internal/constant"
	"nec-chat-be/internal/dto"
	"nec-chat-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	loginRes  *dto.LoginResponse
	loginErr  error
	logoutArg string
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest, userAgent string) (*dto.LoginResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginRes, nil
}

func (s *stubAuthService) Logout(ctx context.Context, accessToken string) error {
	s.logoutArg = accessToken
	return nil
}

func newAuthApp(svc service.IAuthService) *fiber.App {
	app := fiber.New()
	NewAuthController(svc, validator.New(), time.Hour, false).RegisterRoutes(app.Group("/api"))
	return app
}

func findCookie(res *http.Response, name string) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginSetsAuthCookies(t *testing.T) {
	svc := &stubAuthService{
		loginRes: &dto.LoginResponse{
			AccessToken: "signed.jwt.token",
			User: dto.UserDTO{
				Id:       uuid.New(),
				Name:     "Ana Pérez",
				Username: "ana",
				Email:    "ana@example.com",
				Role:     "USER",
			},
		},
	}
	app := newAuthApp(svc)

	body := strings.NewReader(`{"email":"ana@example.com","password":"secret"}`)
	req := httptest.NewRequest("POST", "/api/auth/login", body)
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	token := findCookie(res, constant.AuthTokenCookie)
	require.NotNil(t, token)
	assert.Equal(t, "signed.jwt.token", token.Value)
	assert.True(t, token.HttpOnly, "token cookie must be httpOnly")

	username := findCookie(res, constant.UsernameCookie)
	require.NotNil(t, username)
	assert.Equal(t, "ana", username.Value)
	assert.False(t, username.HttpOnly, "identity cookies stay readable")

	require.NotNil(t, findCookie(res, constant.NameCookie))
	role := findCookie(res, constant.RoleCookie)
	require.NotNil(t, role)
	assert.Equal(t, "USER", role.Value)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newAuthApp(&stubAuthService{loginErr: service.ErrWrongPassword})

	body := strings.NewReader(`{"email":"ana@example.com","password":"nope"}`)
	req := httptest.NewRequest("POST", "/api/auth/login", body)
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Empty(t, res.Cookies())
}

func TestLoginValidatesBody(t *testing.T) {
	app := newAuthApp(&stubAuthService{})

	body := strings.NewReader(`{"email":"not-an-email","password":""}`)
	req := httptest.NewRequest("POST", "/api/auth/login", body)
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestLogoutClearsCookiesAndClosesSession(t *testing.T) {
	svc := &stubAuthService{}
	app := newAuthApp(svc)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: constant.AuthTokenCookie, Value: "signed.jwt.token"})

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "signed.jwt.token", svc.logoutArg)

	for _, name := range []string{constant.AuthTokenCookie, constant.UsernameCookie, constant.NameCookie, constant.RoleCookie} {
		cookie := findCookie(res, name)
		require.NotNil(t, cookie, "cookie %s not cleared", name)
		assert.Empty(t, cookie.Value)
		assert.True(t, cookie.Expires.Before(time.Now()), "cookie %s not expired", name)
	}
}
