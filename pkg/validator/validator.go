package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError reports a single failed field as a field+message pair
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = validator.New()

func init() {
	// Register custom validation for UUID
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

func ValidateStruct(data interface{}) []FieldError {
	var fields []FieldError
	err := validate.Struct(data)
	if err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: messageFor(fe),
			})
		}
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "uuid_required":
		return "must be a valid id"
	default:
		return "is invalid"
	}
}
