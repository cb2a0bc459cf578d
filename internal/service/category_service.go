package service

import (
	"go-stock-sales/internal/apperr"
	"go-stock-sales/internal/model"
	"go-stock-sales/internal/repository"
	"go-stock-sales/pkg/validator"

	"github.com/google/uuid"
)

type CategoryService interface {
	List() ([]model.Category, error)
	Create(name string) (*model.Category, error)
	Update(id uuid.UUID, name string) (*model.Category, error)
	Delete(id uuid.UUID) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (s *categoryService) List() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryService) Create(name string) (*model.Category, error) {
	category := &model.Category{Name: name}
	if fields := validator.ValidateStruct(category); len(fields) > 0 {
		return nil, apperr.NewValidation(fields)
	}

	if existing, _ := s.categoryRepo.FindByName(name); existing != nil {
		return nil, apperr.NewConflict("category already registered")
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, apperr.NewInternal("failed to create category", err)
	}
	return category, nil
}

func (s *categoryService) Update(id uuid.UUID, name string) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, apperr.NewNotFound("category not found")
	}

	category.Name = name
	if fields := validator.ValidateStruct(category); len(fields) > 0 {
		return nil, apperr.NewValidation(fields)
	}

	if existing, _ := s.categoryRepo.FindByName(name); existing != nil && existing.ID != id {
		return nil, apperr.NewConflict("category already registered")
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, apperr.NewInternal("failed to update category", err)
	}
	return category, nil
}

// Delete refuses to remove a category that any product still references.
func (s *categoryService) Delete(id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		return apperr.NewNotFound("category not found")
	}

	count, err := s.productRepo.CountByCategory(id)
	if err != nil {
		return apperr.NewInternal("failed to count products", err)
	}
	if count > 0 {
		return apperr.NewConflict("category is still referenced by products")
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return apperr.NewInternal("failed to delete category", err)
	}
	return nil
}
