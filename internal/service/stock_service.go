package service

import (
	"go-stock-sales/internal/apperr"
	"go-stock-sales/internal/model"
	"go-stock-sales/internal/repository"
	"go-stock-sales/internal/ws"
	"go-stock-sales/pkg/validator"

	"github.com/google/uuid"
)

const defaultPageSize = 20

type StockService interface {
	List(take, skip int, order string) ([]model.Product, error)
	Add(id uuid.UUID, amount int) (*model.Product, error)
	Remove(id uuid.UUID, amount int) (*model.Product, error)
}

type stockAdjustment struct {
	Amount int `validate:"required,min=1"`
}

type stockService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewStockService(productRepo repository.ProductRepository, hub *ws.Hub) StockService {
	return &stockService{
		productRepo: productRepo,
		wsHub:       hub,
	}
}

// normalizePage applies the paging defaults shared by the stock and
// sale listings: 20 rows, newest first.
func normalizePage(take, skip int, order string) (int, int, string) {
	if take <= 0 {
		take = defaultPageSize
	}
	if skip < 0 {
		skip = 0
	}
	if order != "asc" {
		order = "desc"
	}
	return take, skip, order
}

func (s *stockService) List(take, skip int, order string) ([]model.Product, error) {
	take, skip, order = normalizePage(take, skip, order)
	return s.productRepo.FindPage(take, skip, order)
}

func (s *stockService) Add(id uuid.UUID, amount int) (*model.Product, error) {
	if fields := validator.ValidateStruct(&stockAdjustment{Amount: amount}); len(fields) > 0 {
		return nil, apperr.NewValidation(fields)
	}

	product, err := s.productRepo.AddQuantity(id, amount)
	if err != nil {
		return nil, err
	}

	s.broadcastStock(product, amount)
	return product, nil
}

// Remove lowers the stock level. The repository performs the decrement
// as one conditional update, so a failing removal never alters the
// stored quantity.
func (s *stockService) Remove(id uuid.UUID, amount int) (*model.Product, error) {
	if fields := validator.ValidateStruct(&stockAdjustment{Amount: amount}); len(fields) > 0 {
		return nil, apperr.NewValidation(fields)
	}

	product, err := s.productRepo.RemoveQuantity(id, amount)
	if err != nil {
		return nil, err
	}

	s.broadcastStock(product, -amount)
	return product, nil
}

func (s *stockService) broadcastStock(product *model.Product, delta int) {
	go s.wsHub.Publish(map[string]interface{}{
		"type": "stock_update",
		"product": map[string]interface{}{
			"id":       product.ID,
			"name":     product.Name,
			"quantity": product.Quantity,
		},
		"delta": delta,
	})
}
