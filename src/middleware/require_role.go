package middleware

import (
	"Backend-WMS-ROI/src/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole allows only the listed roles through. Must run after AuthJWT.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
		}
		if !allowed[role] {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient permissions"})
		}
		return c.Next()
	}
}

// RequireWriter blocks the read-only viewer role from mutating routes.
func RequireWriter(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
	}
	if role == models.RoleViewer {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Viewer role is read-only"})
	}
	return c.Next()
}
