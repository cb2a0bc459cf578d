package middleware

import (
	"errors"
	"strings"

	"go-stock-sales/internal/repository"
	"go-stock-sales/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the session token and sets user info in context.
// The token travels in the session cookie; an Authorization bearer header
// is accepted as a fallback. The active flag embedded in the token is
// re-checked against the store so a deactivated account loses access
// before its token expires.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("token")
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			return c.Status(401).JSON(fiber.Map{"error": "missing authorization token"})
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrMissingSecret) {
				return c.Status(500).JSON(fiber.Map{"error": "signing secret is not configured"})
			}
			return c.Status(401).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		// Re-check the active flag against the store; the claim alone
		// would keep a deactivated account alive for up to two days.
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "user not found"})
		}
		if !user.Active {
			return c.Status(401).JSON(fiber.Map{"error": "this account is not active"})
		}

		c.Locals("user_id", user.ID.String())
		c.Locals("user_email", user.Email)
		c.Locals("user_role", user.Role)

		return c.Next()
	}
}
