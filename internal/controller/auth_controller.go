package controller

import (
	"time"

	"nec-chat-be/internal/constant"
	"nec-chat-be/internal/dto"
	"nec-chat-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service   service.IAuthService
	validate  *validator.Validate
	tokenTTL  time.Duration
	secureEnv bool
}

func NewAuthController(service service.IAuthService, validate *validator.Validate, tokenTTL time.Duration, secureEnv bool) IAuthController {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &authController{
		service:   service,
		validate:  validate,
		tokenTTL:  tokenTTL,
		secureEnv: secureEnv,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid request body",
		})
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	userAgent := ctx.Get("User-Agent")

	res, err := c.service.Login(ctx.Context(), &req, userAgent)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": err.Error(),
		})
	}

	// The token travels as an httpOnly cookie only; the identity cookies
	// stay readable so the frontend can render the logged-in user without
	// an extra round trip.
	c.setCookie(ctx, constant.AuthTokenCookie, res.AccessToken, true)
	c.setCookie(ctx, constant.UsernameCookie, res.User.Username, false)
	c.setCookie(ctx, constant.NameCookie, res.User.Name, false)
	c.setCookie(ctx, constant.RoleCookie, res.User.Role, false)

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Login successful",
		"data":    res,
	})
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	token := ctx.Cookies(constant.AuthTokenCookie)

	// The session row is closed best-effort; cookies are cleared no matter
	// what so the client always ends up logged out.
	_ = c.service.Logout(ctx.Context(), token)

	c.clearCookie(ctx, constant.AuthTokenCookie)
	c.clearCookie(ctx, constant.UsernameCookie)
	c.clearCookie(ctx, constant.NameCookie)
	c.clearCookie(ctx, constant.RoleCookie)

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Logged out successfully",
		"data":    nil,
	})
}

func (c *authController) setCookie(ctx *fiber.Ctx, name, value string, httpOnly bool) {
	ctx.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.tokenTTL.Seconds()),
		Expires:  time.Now().Add(c.tokenTTL),
		HTTPOnly: httpOnly,
		Secure:   c.secureEnv,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (c *authController) clearCookie(ctx *fiber.Ctx, name string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: name == constant.AuthTokenCookie,
		Secure:   c.secureEnv,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
