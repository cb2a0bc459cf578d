package handler

import (
	"go-stock-sales/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// writeError maps a service error to the response envelope.
// Validation errors carry their field+message list alongside the summary.
func writeError(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": err.Error()}
	if fields := apperr.FieldsOf(err); len(fields) > 0 {
		body["fields"] = fields
	}
	return c.Status(apperr.StatusOf(err)).JSON(body)
}

// currentUserID reads the authenticated user's id set by RequireAuth.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}
