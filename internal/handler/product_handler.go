package handler

import (
	"go-stock-sales/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Get returns one product by id, or the whole catalog without one
// GET /product?id=
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	rawID := c.Query("id")
	if rawID == "" {
		products, err := h.productService.List()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "failed to fetch products"})
		}
		return c.JSON(products)
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid product ID"})
	}

	product, err := h.productService.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

// Register creates a product owned by the authenticated user
// POST /product/register
func (h *ProductHandler) Register(c *fiber.Ctx) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req service.RegisterProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	product, err := h.productService.Register(&req, ownerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(product)
}

type updateProductRequest struct {
	ID uuid.UUID `json:"id"`
	service.UpdateProductRequest
}

// Update changes a product's catalog fields (never its stock)
// PUT /product/update
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var req updateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if req.ID == uuid.Nil {
		return c.Status(400).JSON(fiber.Map{"error": "product ID is required"})
	}

	product, err := h.productService.Update(req.ID, &req.UpdateProductRequest)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

// Delete removes a product with zero stock
// DELETE /product/delete?id=
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid product ID"})
	}

	if err := h.productService.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "product deleted"})
}
