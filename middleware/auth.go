// middleware/auth.go
package middleware

import (
	"sports-community-system/models"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// UserContextMiddleware turns the verified user context set by the
// Gateway (X-User-ID, X-User-Role) into an Identity on the request.
// Routes wrapped with it are authenticated routes: a missing user id
// is rejected outright.
func UserContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		role := c.Get("X-User-Role")

		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing X-User-ID — request must come through gateway with auth context",
			})
		}
		if role == "" {
			role = models.RolePlayer
		}

		c.Locals(identityKey, models.Identity{UserID: userID, Role: role})
		return c.Next()
	}
}

// IdentityFrom returns the request identity, or a zero Identity for
// routes that did not pass through UserContextMiddleware (anonymous
// access).
func IdentityFrom(c *fiber.Ctx) models.Identity {
	if id, ok := c.Locals(identityKey).(models.Identity); ok {
		return id
	}
	return models.Identity{}
}

// OptionalUserContext attaches an identity when the gateway forwarded
// one, but lets anonymous requests through. Used on listings whose
// visibility rules depend on who is asking.
func OptionalUserContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID != "" {
			role := c.Get("X-User-Role")
			if role == "" {
				role = models.RolePlayer
			}
			c.Locals(identityKey, models.Identity{UserID: userID, Role: role})
		}
		return c.Next()
	}
}
