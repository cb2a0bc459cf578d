package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-stock-sales/pkg/validator"
)

type sample struct {
	Email    string    `validate:"required,email"`
	Password string    `validate:"required,min=6"`
	CPF      string    `validate:"required,len=11"`
	ID       uuid.UUID `validate:"uuid_required"`
}

func TestValidateStruct_ReportsEachFailedField(t *testing.T) {
	fields := validator.ValidateStruct(&sample{
		Email:    "not-an-email",
		Password: "short",
		CPF:      "123",
		ID:       uuid.Nil,
	})

	assert.Len(t, fields, 4)

	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Message
	}
	assert.Contains(t, byField["email"], "valid email")
	assert.Contains(t, byField["password"], "at least 6")
	assert.Contains(t, byField["cpf"], "exactly 11")
	assert.Contains(t, byField["id"], "valid id")
}

func TestValidateStruct_ValidInput(t *testing.T) {
	fields := validator.ValidateStruct(&sample{
		Email:    "maria@example.com",
		Password: "secret123",
		CPF:      "12345678901",
		ID:       uuid.New(),
	})

	assert.Empty(t, fields)
}
