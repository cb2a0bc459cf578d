package service

import (
	"go-stock-sales/internal/apperr"
	"go-stock-sales/internal/model"
	"go-stock-sales/internal/repository"
	"go-stock-sales/pkg/validator"

	"github.com/google/uuid"
)

type ProductService interface {
	GetByID(id uuid.UUID) (*model.Product, error)
	List() ([]model.Product, error)
	Register(req *RegisterProductRequest, ownerID uuid.UUID) (*model.Product, error)
	Update(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error)
	Delete(id uuid.UUID) error
}

type RegisterProductRequest struct {
	Name       string    `json:"name" validate:"required,min=3"`
	Price      float64   `json:"price" validate:"required,gt=0"`
	CategoryID uuid.UUID `json:"category_id" validate:"uuid_required"`
}

// UpdateProductRequest enumerates the mutable product fields. Zero
// values keep the stored ones. Quantity is deliberately absent: stock
// only moves through the stock and sale workflows.
type UpdateProductRequest struct {
	Name       string    `json:"name" validate:"omitempty,min=3"`
	Price      float64   `json:"price" validate:"omitempty,gt=0"`
	CategoryID uuid.UUID `json:"category_id"`
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *productService) GetByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, apperr.NewNotFound("product not found")
	}
	return product, nil
}

func (s *productService) List() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

// Register creates a product with stock fixed at zero.
func (s *productService) Register(req *RegisterProductRequest, ownerID uuid.UUID) (*model.Product, error) {
	if fields := validator.ValidateStruct(req); len(fields) > 0 {
		return nil, apperr.NewValidation(fields)
	}

	if existing, _ := s.productRepo.FindByName(req.Name); existing != nil {
		return nil, apperr.NewConflict("product already registered")
	}

	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		return nil, apperr.NewNotFound("category not found")
	}

	product := &model.Product{
		Name:        req.Name,
		Price:       req.Price,
		Quantity:    0,
		CategoryID:  req.CategoryID,
		OwnerUserID: ownerID,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, apperr.NewInternal("failed to create product", err)
	}
	return product, nil
}

func (s *productService) Update(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error) {
	if fields := validator.ValidateStruct(req); len(fields) > 0 {
		return nil, apperr.NewValidation(fields)
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, apperr.NewNotFound("product not found")
	}

	if req.Name != "" && req.Name != product.Name {
		if existing, _ := s.productRepo.FindByName(req.Name); existing != nil {
			return nil, apperr.NewConflict("product already registered")
		}
		product.Name = req.Name
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.CategoryID != uuid.Nil {
		if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
			return nil, apperr.NewNotFound("category not found")
		}
		product.CategoryID = req.CategoryID
		product.Category = nil
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, apperr.NewInternal("failed to update product", err)
	}
	return product, nil
}

// Delete refuses to remove a product while it still has stock.
func (s *productService) Delete(id uuid.UUID) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return apperr.NewNotFound("product not found")
	}

	if product.Quantity > 0 {
		return apperr.NewConflict("cannot delete a product with remaining stock")
	}

	if err := s.productRepo.Delete(id); err != nil {
		return apperr.NewInternal("failed to delete product", err)
	}
	return nil
}
