package model

import (
	"time"

	"github.com/google/uuid"
)

// Sale records a single sell operation against a product's stock.
type Sale struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// SaleProductInfo is the product projection embedded in sale listings
type SaleProductInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

// SaleUserInfo is the seller projection embedded in sale listings
type SaleUserInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// SaleResponse is the API shape for a sale joined with its product and seller
type SaleResponse struct {
	ID        uuid.UUID       `json:"id"`
	Product   SaleProductInfo `json:"product"`
	User      SaleUserInfo    `json:"user"`
	Quantity  int             `json:"quantity"`
	Price     float64         `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToResponse converts Sale to SaleResponse
func (s *Sale) ToResponse() SaleResponse {
	response := SaleResponse{
		ID:        s.ID,
		Quantity:  s.Quantity,
		Price:     s.Price,
		CreatedAt: s.CreatedAt,
	}

	if s.Product != nil {
		response.Product = SaleProductInfo{
			ID:    s.Product.ID,
			Name:  s.Product.Name,
			Price: s.Product.Price,
		}
	}
	if s.User != nil {
		response.User = SaleUserInfo{
			ID:   s.User.ID,
			Name: s.User.Name,
		}
	}

	return response
}
