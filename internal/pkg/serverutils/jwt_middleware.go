package serverutils

import (
	"os"

	"nec-chat-be/internal/constant"
	"nec-chat-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return []byte(secret)
}

// JwtMiddleware admits requests carrying a valid token either as an
// httpOnly cookie (the browser flow) or a Bearer header (API clients).
func JwtMiddleware(ctx *fiber.Ctx) error {
	tokenStr := ctx.Cookies(constant.AuthTokenCookie)
	if tokenStr == "" {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) >= 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Missing token"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid claims"})
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("username", claims["username"])
	ctx.Locals("role", claims["role"])
	return ctx.Next()
}

// AdminOnly runs after JwtMiddleware and rejects non-admin roles.
func AdminOnly(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	if entity.UserRole(role) != entity.UserRoleAdmin {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Admins only"})
	}
	return ctx.Next()
}

// LocalUsername reads the authenticated username set by JwtMiddleware.
func LocalUsername(ctx *fiber.Ctx) string {
	username, _ := ctx.Locals("username").(string)
	return username
}
