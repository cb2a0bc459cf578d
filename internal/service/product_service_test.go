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

// MockProductRepository is a mock implementation of repository.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *model.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) FindAll() ([]model.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) FindPage(take, skip int, order string) ([]model.Product, error) {
	args := m.Called(take, skip, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(id uuid.UUID) (*model.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(name string) (*model.Product, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Update(product *model.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) CountByCategory(categoryID uuid.UUID) (int64, error) {
	args := m.Called(categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) AddQuantity(id uuid.UUID, amount int) (*model.Product, error) {
	args := m.Called(id, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) RemoveQuantity(id uuid.UUID, amount int) (*model.Product, error) {
	args := m.Called(id, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func TestRegisterProduct_StartsWithZeroStock(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := service.NewProductService(mockProducts, mockCategories)

	ownerID := uuid.New()
	categoryID := uuid.New()

	mockProducts.On("FindByName", "Keyboard").Return(nil, gorm.ErrRecordNotFound)
	mockCategories.On("FindByID", categoryID).Return(&model.Category{Name: "Peripherals"}, nil)
	mockProducts.On("Create", mock.MatchedBy(func(p *model.Product) bool {
		return p.Quantity == 0 && p.OwnerUserID == ownerID && p.CategoryID == categoryID
	})).Return(nil)

	product, err := svc.Register(&service.RegisterProductRequest{
		Name:       "Keyboard",
		Price:      199.90,
		CategoryID: categoryID,
	}, ownerID)

	assert.NoError(t, err)
	assert.Equal(t, 0, product.Quantity)
	mockProducts.AssertExpectations(t)
}

func TestRegisterProduct_DuplicateName(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := service.NewProductService(mockProducts, mockCategories)

	mockProducts.On("FindByName", "Keyboard").Return(&model.Product{Name: "Keyboard"}, nil)

	_, err := svc.Register(&service.RegisterProductRequest{
		Name:       "Keyboard",
		Price:      199.90,
		CategoryID: uuid.New(),
	}, uuid.New())

	assert.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	mockProducts.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegisterProduct_MissingCategory(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := service.NewProductService(mockProducts, mockCategories)

	categoryID := uuid.New()
	mockProducts.On("FindByName", "Keyboard").Return(nil, gorm.ErrRecordNotFound)
	mockCategories.On("FindByID", categoryID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Register(&service.RegisterProductRequest{
		Name:       "Keyboard",
		Price:      199.90,
		CategoryID: categoryID,
	}, uuid.New())

	assert.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUpdateProduct_EmptyFieldsKeepStoredValues(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := service.NewProductService(mockProducts, mockCategories)

	id := uuid.New()
	categoryID := uuid.New()
	existing := &model.Product{Name: "Keyboard", Price: 199.90, Quantity: 7, CategoryID: categoryID}
	existing.ID = id

	mockProducts.On("FindByID", id).Return(existing, nil)
	mockProducts.On("Update", mock.AnythingOfType("*model.Product")).Return(nil)

	product, err := svc.Update(id, &service.UpdateProductRequest{Price: 149.90})

	assert.NoError(t, err)
	assert.Equal(t, "Keyboard", product.Name)
	assert.Equal(t, 149.90, product.Price)
	assert.Equal(t, categoryID, product.CategoryID)
	assert.Equal(t, 7, product.Quantity)
}

func TestDeleteProduct_WithStockIsRefused(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := service.NewProductService(mockProducts, mockCategories)

	id := uuid.New()
	mockProducts.On("FindByID", id).Return(&model.Product{Name: "Keyboard", Quantity: 3}, nil)

	err := svc.Delete(id)

	assert.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	mockProducts.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteProduct_WithZeroStock(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := service.NewProductService(mockProducts, mockCategories)

	id := uuid.New()
	mockProducts.On("FindByID", id).Return(&model.Product{Name: "Keyboard", Quantity: 0}, nil)
	mockProducts.On("Delete", id).Return(nil)

	err := svc.Delete(id)

	assert.NoError(t, err)
	mockProducts.AssertExpectations(t)
}
