package middleware

import (
	"fmt"

	"squadtrack/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// Authorize decides whether a verified identity's role satisfies a route's
// requirement. An empty requirement is an authentication-only gate; otherwise
// the check is flat equality, with no role hierarchy. A mismatch is reported
// as apperrors.ErrForbidden.
func Authorize(role, required string) error {
	if required != "" && role != required {
		return fmt.Errorf("role %q does not satisfy %q: %w", role, required, apperrors.ErrForbidden)
	}
	return nil
}

// RoleRequired is a Fiber middleware gating a route to one role. It must run
// after AuthRequired, which stores the verified role claim in the context.
func RoleRequired(required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if err := Authorize(role, required); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   "Forbidden",
				"message": fmt.Sprintf("This action requires the %s role", required),
			})
		}
		return c.Next()
	}
}
