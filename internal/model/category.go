package model

// Category groups products. Cannot be deleted while any product references it.
type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required,min=3"`
}
