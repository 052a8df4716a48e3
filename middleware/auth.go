package middleware

import (
	"strings"

	"inventory-api/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RequireAuth only lets requests carrying a valid bearer token through.
// The verified user id lands in Locals("userID") and the claims in Locals("claims").
func RequireAuth(verifier auth.TokenVerifier) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// Ambil token dari "Bearer <token>"
		parts := strings.SplitN(ctx.Get(fiber.HeaderAuthorization), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			return unauthenticated(ctx)
		}

		claims, err := verifier.Verify(parts[1])
		if err != nil {
			log.Debug().Err(err).Str("path", ctx.Path()).Msg("bearer token rejected")
			return unauthenticated(ctx)
		}

		ctx.Locals("userID", claims.UserID)
		ctx.Locals("claims", claims)
		return ctx.Next()
	}
}

func unauthenticated(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Unauthenticated.",
	})
}
