package handler

import (
	"os"
	"time"

	"go-stock-sales/internal/service"
	"go-stock-sales/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles account creation
// POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(201).JSON(user)
}

// Login authenticates a user and sets the session cookie
// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "email and password are required"})
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    response.Token,
		Expires:  time.Now().Add(jwt.SessionTTL),
		HTTPOnly: true,
		SameSite: "Strict",
		Secure:   os.Getenv("APP_ENV") == "production",
	})

	return c.JSON(fiber.Map{"message": "login successful", "token": response.Token})
}

// Logout clears the session cookie
// GET /auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Strict",
	})

	return c.JSON(fiber.Map{"message": "logout successful"})
}
