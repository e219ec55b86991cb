package middleware

import (
	"errors"
	"strconv"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"leadhub/config"
	"leadhub/models"
	"leadhub/scope"
	"leadhub/utils"
)

// Protected authenticates the request and resolves the caller into a scoped
// identity before any handler runs. Handlers read back "user" and
// "identity" from locals.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Try to get token from Authorization header first
		var token string
		authHeader := c.Get("Authorization")
		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid authorization format",
				})
			}
			token = tokenParts[1]
		} else {
			// Fall back to cookie if header not present
			token = c.Cookies("access_token")
			if token == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Authorization required",
				})
			}
		}

		// Parse and validate JWT
		claims, err := utils.ParseJWTToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		// Find user
		var user models.User
		if err := config.DB.First(&user, claims.UserID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Account is not active",
			})
		}

		// Tokens issued before the last logout carry a stale version
		if claims.TokenVersion != user.TokenVersion {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token version",
			})
		}

		// Resolve role and workspace up front so handlers never touch an
		// unscoped user
		identity, err := scope.Resolve(config.DB, &user)
		if err != nil {
			if errors.Is(err, scope.ErrUnscopedPrincipal) {
				sentry.WithScope(func(s *sentry.Scope) {
					s.SetTag("user_id", strconv.Itoa(int(user.ID)))
					sentry.CaptureException(err)
				})
			}
			return utils.ScopeErrorResponse(c, err)
		}

		c.Locals("user", &user)
		c.Locals("identity", identity)

		return c.Next()
	}
}
