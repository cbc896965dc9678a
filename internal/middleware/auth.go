package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/softcorner-studio/storefront-api/internal/config"
	"github.com/softcorner-studio/storefront-api/internal/dto"

	jwtware "github.com/gofiber/contrib/jwt"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// SessionVerifier validates a storefront session token and returns the
// shopper's provider user id.
type SessionVerifier interface {
	VerifySession(token string) (string, error)
}

const shopperIDKey = "shopper_id"

// ShopperProtected guards storefront routes with the identity provider's
// session token and stores the verified shopper id in locals.
func ShopperProtected(verifier SessionVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" || token == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: missing session token",
			})
		}

		userID, err := verifier.VerifySession(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid session",
			})
		}

		c.Locals(shopperIDKey, userID)
		return c.Next()
	}
}

// ShopperID returns the user id stored by ShopperProtected, or "".
func ShopperID(c *fiber.Ctx) string {
	id, _ := c.Locals(shopperIDKey).(string)
	return id
}
