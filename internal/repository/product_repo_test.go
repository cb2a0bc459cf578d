package repository_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-stock-sales/internal/model"
	"go-stock-sales/internal/repository"
)

// newMockDB opens a gorm handle over a sqlmock connection so tests can
// assert the exact statements the repositories emit.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

func TestProductUpdate_NeverWritesQuantity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewProductRepo(db)

	// Only the catalog columns may appear in the SET list; a quantity
	// assignment would let a catalog edit overwrite a concurrent
	// stock or sale decrement.
	mock.ExpectExec(`^UPDATE "products" SET (?:"(?:category_id|name|price|updated_at)"=\$\d+,?)+ WHERE id = \$\d+$`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	product := &model.Product{Name: "Keyboard", Price: 199.90, Quantity: 7, CategoryID: uuid.New()}
	product.ID = uuid.New()

	err := repo.Update(product)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
