package handler

import (
	"go-stock-sales/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe returns the authenticated user's account
// GET /user
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// UpdateMe updates the authenticated user's account
// PUT /user/update
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	user, err := h.userService.Update(userID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// DeactivateMe disables the authenticated user's own account
// DELETE /user/deactive
func (h *UserHandler) DeactivateMe(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
	}

	user, err := h.userService.Deactivate(userID, userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// targetRequest carries the id of the account an admin acts on
type targetRequest struct {
	ID uuid.UUID `json:"id"`
}

// Approve activates a pending account
// POST /user/approved
func (h *UserHandler) Approve(c *fiber.Ctx) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req targetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	user, err := h.userService.Approve(req.ID, actorID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// Disapprove deactivates an account
// POST /user/disapproved
func (h *UserHandler) Disapprove(c *fiber.Ctx) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req targetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	user, err := h.userService.Deactivate(req.ID, actorID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}
