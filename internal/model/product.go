package model

import "github.com/google/uuid"

// Product is a catalog entry with its sellable stock level.
// Quantity only moves through the stock and sale workflows, never
// through a plain product update.
type Product struct {
	BaseModel
	Name       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required,min=3"`
	Price      float64   `gorm:"not null" json:"price" validate:"required,gt=0"`
	Quantity   int       `gorm:"default:0" json:"quantity"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id" validate:"uuid_required"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	OwnerUserID uuid.UUID `gorm:"type:uuid;not null" json:"owner_user_id"`
}
