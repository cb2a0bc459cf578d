package handler

import (
	"go-stock-sales/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type categoryRequest struct {
	Name string `json:"name"`
}

// List returns all categories
// GET /category
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch categories"})
	}
	return c.JSON(categories)
}

// Create registers a new category
// POST /category/create
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	category, err := h.categoryService.Create(req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(category)
}

// Update renames a category
// PUT /category/update/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid category ID"})
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	category, err := h.categoryService.Update(id, req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(category)
}

// Delete removes a category with no products
// DELETE /category/delete/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid category ID"})
	}

	if err := h.categoryService.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "category deleted"})
}
