package repository

import (
	"go-stock-sales/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByCPF(cpf string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
	SetActive(id uuid.UUID, active bool) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByCPF(cpf string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("cpf = ?", cpf).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create persists the user, promoting the first account ever to an
// active admin. The emptiness check and the insert share one
// transaction with the table locked, so two concurrent first
// registrations cannot both bootstrap.
func (r *userRepo) Create(user *model.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("LOCK TABLE users IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&model.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			user.Role = model.RoleAdmin
			user.Active = true
		}
		return tx.Create(user).Error
	})
}

// Update writes the profile columns only. Role and active are managed
// through Create and SetActive, so a profile save racing an approval
// cannot clobber either side.
func (r *userRepo) Update(user *model.User) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":     user.Name,
			"email":    user.Email,
			"password": user.Password,
		}).Error
}

func (r *userRepo) SetActive(id uuid.UUID, active bool) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Update("active", active).Error
}
