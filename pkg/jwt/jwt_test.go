package jwt_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-stock-sales/pkg/jwt"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	userID := uuid.New()
	token, err := jwt.GenerateToken(userID, "maria@example.com", 1, true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwt.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "maria@example.com", claims.Email)
	assert.Equal(t, 1, claims.Role)
	assert.True(t, claims.Active)
}

func TestGenerate_MissingSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := jwt.GenerateToken(uuid.New(), "maria@example.com", 0, true)
	assert.ErrorIs(t, err, jwt.ErrMissingSecret)
}

func TestValidate_TamperedToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	token, err := jwt.GenerateToken(uuid.New(), "maria@example.com", 0, true)
	assert.NoError(t, err)

	_, err = jwt.ValidateToken(token + "x")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	token, err := jwt.GenerateToken(uuid.New(), "maria@example.com", 0, true)
	assert.NoError(t, err)

	t.Setenv("SECRET_KEY", "other-secret")
	_, err = jwt.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
