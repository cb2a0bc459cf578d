package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"go-stock-sales/internal/apperr"
	"go-stock-sales/internal/model"
	"go-stock-sales/internal/service"
)

// MockCategoryRepository is a mock implementation of repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *model.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindAll() ([]model.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(id uuid.UUID) (*model.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(name string) (*model.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(category *model.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestCreateCategory_Success(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockProducts := new(MockProductRepository)
	svc := service.NewCategoryService(mockCategories, mockProducts)

	mockCategories.On("FindByName", "Peripherals").Return(nil, gorm.ErrRecordNotFound)
	mockCategories.On("Create", mock.MatchedBy(func(c *model.Category) bool {
		return c.Name == "Peripherals"
	})).Return(nil)

	category, err := svc.Create("Peripherals")

	assert.NoError(t, err)
	assert.Equal(t, "Peripherals", category.Name)
	mockCategories.AssertExpectations(t)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockProducts := new(MockProductRepository)
	svc := service.NewCategoryService(mockCategories, mockProducts)

	mockCategories.On("FindByName", "Peripherals").Return(&model.Category{Name: "Peripherals"}, nil)

	_, err := svc.Create("Peripherals")

	assert.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	mockCategories.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDeleteCategory_StillReferenced(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockProducts := new(MockProductRepository)
	svc := service.NewCategoryService(mockCategories, mockProducts)

	id := uuid.New()
	mockCategories.On("FindByID", id).Return(&model.Category{Name: "Peripherals"}, nil)
	mockProducts.On("CountByCategory", id).Return(int64(2), nil)

	err := svc.Delete(id)

	assert.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	mockCategories.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteCategory_NoProducts(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockProducts := new(MockProductRepository)
	svc := service.NewCategoryService(mockCategories, mockProducts)

	id := uuid.New()
	mockCategories.On("FindByID", id).Return(&model.Category{Name: "Peripherals"}, nil)
	mockProducts.On("CountByCategory", id).Return(int64(0), nil)
	mockCategories.On("Delete", id).Return(nil)

	err := svc.Delete(id)

	assert.NoError(t, err)
	mockCategories.AssertExpectations(t)
}

func TestDeleteCategory_Missing(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockProducts := new(MockProductRepository)
	svc := service.NewCategoryService(mockCategories, mockProducts)

	id := uuid.New()
	mockCategories.On("FindByID", id).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(id)

	assert.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
