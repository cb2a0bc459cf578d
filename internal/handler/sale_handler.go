package handler

import (
	"go-stock-sales/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SaleHandler struct {
	saleService service.SaleService
}

func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List returns a page of sales joined with product and seller
// GET /sale?take=&skip=&order=
func (h *SaleHandler) List(c *fiber.Ctx) error {
	take := c.QueryInt("take")
	skip := c.QueryInt("skip")
	order := c.Query("order")

	sales, err := h.saleService.List(take, skip, order)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sales)
}

// Register records a sale for the authenticated user
// POST /sale/add
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req service.RegisterSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	sale, err := h.saleService.Register(&req, userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(sale)
}

// Delete removes a sale and restores the product's stock
// DELETE /sale/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid sale ID"})
	}

	if err := h.saleService.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "sale deleted"})
}
