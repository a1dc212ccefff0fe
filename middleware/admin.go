package middleware

import (
	"github.com/sadang101/MalkarsMarketing/models"

	"github.com/gofiber/fiber/v2"
)

// AdminOnly guards admin routes. It must run after JWTMiddleware, which
// resolves the user into the request context.
func AdminOnly(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Unauthorized: user not resolved",
			"data":    nil,
		})
	}

	if !user.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  false,
			"message": "Access denied! Admin only.",
			"data":    nil,
		})
	}

	return c.Next()
}
