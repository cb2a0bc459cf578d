package repository

import (
	"errors"

	"go-stock-sales/internal/apperr"
	"go-stock-sales/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Register(sale *model.Sale) error
	FindPage(take, skip int, order string) ([]model.Sale, error)
	Delete(id uuid.UUID) error
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// Register validates stock and persists the sale inside one transaction.
// The conditional decrement runs first: when it affects zero rows the
// whole transaction rolls back, so no sale row ever outlives a failed
// stock check.
func (r *saleRepo) Register(sale *model.Sale) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Product{}).
			Where("id = ? AND quantity >= ?", sale.ProductID, sale.Quantity).
			Update("quantity", gorm.Expr("quantity - ?", sale.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var product model.Product
			if err := tx.First(&product, "id = ?", sale.ProductID).Error; err != nil {
				return apperr.NewNotFound("product not found")
			}
			return apperr.NewInsufficientStock(product.Name, product.Quantity)
		}
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		// Load product and seller for the response while still inside
		// the transaction, so the sale cannot vanish between commit
		// and read.
		return tx.Preload("Product").Preload("User").First(sale, "id = ?", sale.ID).Error
	})
}

func (r *saleRepo) FindPage(take, skip int, order string) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Product").Preload("User").
		Order("created_at " + order).
		Limit(take).
		Offset(skip).
		Find(&sales).Error
	return sales, err
}

// Delete removes a sale and restores the sold quantity to the product
// in the same transaction.
func (r *saleRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var sale model.Sale
		if err := tx.First(&sale, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NewNotFound("sale not found")
			}
			return err
		}
		if err := tx.Model(&model.Product{}).
			Where("id = ?", sale.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", sale.Quantity)).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Sale{}, "id = ?", id).Error
	})
}
