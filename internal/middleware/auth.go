// internal/middleware/auth.go
package middleware

import (
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/utils"
)

// Protected ensures the request carries a valid JWT before any handler that
// needs an authenticated user runs. Valid claims are stored in
// c.Locals("user") for the handlers downstream.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := utils.ExtractToken(c)
		if tokenString == "" {
			zlog.Warn().Str("path", c.Path()).Str("ip", c.IP()).Msg("Protected route access attempt without token")
			return c.Status(fiber.StatusUnauthorized).JSON(models.Response{
				Success: false, Code: "UNAUTHORIZED", Message: "Unauthorized: Missing token",
			})
		}

		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			zlog.Warn().Err(err).Str("path", c.Path()).Str("ip", c.IP()).Msg("Protected route access attempt with invalid token")
			return c.Status(fiber.StatusUnauthorized).JSON(models.Response{
				Success: false, Code: "UNAUTHORIZED", Message: "Unauthorized: Invalid token",
			})
		}

		c.Locals("user", claims)

		zlog.Debug().Str("username", claims.Username).Int("user_id", claims.UserID).Msg("JWT authenticated, proceeding")
		return c.Next()
	}
}
