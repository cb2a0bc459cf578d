package repository

import (
	"errors"

	"go-stock-sales/internal/apperr"
	"go-stock-sales/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindPage(take, skip int, order string) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByName(name string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	CountByCategory(categoryID uuid.UUID) (int64, error)
	AddQuantity(id uuid.UUID, amount int) (*model.Product, error)
	RemoveQuantity(id uuid.UUID, amount int) (*model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Find(&products).Error
	return products, err
}

func (r *productRepo) FindPage(take, skip int, order string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").
		Order("created_at " + order).
		Limit(take).
		Offset(skip).
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByName(name string) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Update writes the catalog columns only. Quantity is deliberately
// excluded: stock moves exclusively through AddQuantity, RemoveQuantity
// and the sale workflow, and writing it here would overwrite a
// concurrent decrement with a stale value.
func (r *productRepo) Update(product *model.Product) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"price":       product.Price,
			"category_id": product.CategoryID,
		}).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) CountByCategory(categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// AddQuantity raises the stock level with a single atomic update.
func (r *productRepo) AddQuantity(id uuid.UUID, amount int) (*model.Product, error) {
	res := r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NewNotFound("product not found")
	}
	return r.FindByID(id)
}

// RemoveQuantity lowers the stock level with a single conditional update.
// The quantity >= amount guard makes concurrent decrements race-free:
// a losing writer affects zero rows and the stock stays untouched.
func (r *productRepo) RemoveQuantity(id uuid.UUID, amount int) (*model.Product, error) {
	res := r.db.Model(&model.Product{}).
		Where("id = ? AND quantity >= ?", id, amount).
		Update("quantity", gorm.Expr("quantity - ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		product, err := r.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NewNotFound("product not found")
			}
			return nil, err
		}
		return nil, apperr.NewInsufficientStock(product.Name, product.Quantity)
	}
	return r.FindByID(id)
}
