package handler

import (
	"go-stock-sales/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StockHandler struct {
	stockService service.StockService
}

func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

type stockRequest struct {
	ID       uuid.UUID `json:"id"`
	Quantity int       `json:"quantity"`
}

// List returns a page of products with their stock levels
// GET /stock?take=&skip=&order=
func (h *StockHandler) List(c *fiber.Ctx) error {
	take := c.QueryInt("take")
	skip := c.QueryInt("skip")
	order := c.Query("order")

	products, err := h.stockService.List(take, skip, order)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch stock"})
	}
	return c.JSON(products)
}

// Add raises a product's stock level
// PUT /stock/add
func (h *StockHandler) Add(c *fiber.Ctx) error {
	var req stockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	product, err := h.stockService.Add(req.ID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

// Remove lowers a product's stock level
// PUT /stock/remove
func (h *StockHandler) Remove(c *fiber.Ctx) error {
	var req stockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	product, err := h.stockService.Remove(req.ID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}
