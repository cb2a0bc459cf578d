package service

import (
	"go-stock-sales/internal/apperr"
	"go-stock-sales/internal/model"
	"go-stock-sales/internal/repository"
	"go-stock-sales/internal/ws"
	"go-stock-sales/pkg/validator"

	"github.com/google/uuid"
)

type SaleService interface {
	Register(req *RegisterSaleRequest, userID uuid.UUID) (*model.SaleResponse, error)
	List(take, skip int, order string) ([]model.SaleResponse, error)
	Delete(id uuid.UUID) error
}

type RegisterSaleRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	Price     float64   `json:"price" validate:"required,gt=0"`
}

type saleService struct {
	saleRepo repository.SaleRepository
	wsHub    *ws.Hub
}

func NewSaleService(saleRepo repository.SaleRepository, hub *ws.Hub) SaleService {
	return &saleService{
		saleRepo: saleRepo,
		wsHub:    hub,
	}
}

// Register records a sale. Stock is validated and decremented before the
// sale row is inserted, all inside one transaction in the repository, so
// an insufficient-stock failure leaves neither a sale row nor a changed
// quantity behind.
func (s *saleService) Register(req *RegisterSaleRequest, userID uuid.UUID) (*model.SaleResponse, error) {
	if fields := validator.ValidateStruct(req); len(fields) > 0 {
		return nil, apperr.NewValidation(fields)
	}

	sale := &model.Sale{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     req.Price,
		UserID:    userID,
	}
	// The repository hands the sale back with product and seller already
	// loaded, so no read happens outside its transaction.
	if err := s.saleRepo.Register(sale); err != nil {
		return nil, err
	}

	response := sale.ToResponse()

	go s.wsHub.Publish(map[string]interface{}{
		"type": "sale_recorded",
		"sale": response,
	})

	return &response, nil
}

func (s *saleService) List(take, skip int, order string) ([]model.SaleResponse, error) {
	take, skip, order = normalizePage(take, skip, order)

	sales, err := s.saleRepo.FindPage(take, skip, order)
	if err != nil {
		return nil, apperr.NewInternal("failed to list sales", err)
	}

	responses := make([]model.SaleResponse, len(sales))
	for i := range sales {
		responses[i] = sales[i].ToResponse()
	}
	return responses, nil
}

// Delete removes a sale and hands the sold quantity back to the product.
func (s *saleService) Delete(id uuid.UUID) error {
	return s.saleRepo.Delete(id)
}
