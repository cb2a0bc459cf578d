package service

import (
	"errors"

	"go-stock-sales/internal/apperr"
	"go-stock-sales/internal/model"
	"go-stock-sales/internal/repository"
	"go-stock-sales/pkg/jwt"
	"go-stock-sales/pkg/validator"
)

type AuthService interface {
	Register(req *RegisterRequest) (*model.UserResponse, error)
	Login(email, password string) (*LoginResponse, error)
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	CPF      string `json:"cpf" validate:"required,len=11"`
	Role     int    `json:"role"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register creates an account. The very first account is bootstrapped as
// an active admin; every later one starts inactive with the standard role
// and waits for admin approval. The role field of the payload is only
// shape-checked, it never decides the stored role.
func (s *authService) Register(req *RegisterRequest) (*model.UserResponse, error) {
	if fields := validator.ValidateStruct(req); len(fields) > 0 {
		return nil, apperr.NewValidation(fields)
	}

	if existing, _ := s.userRepo.FindByCPF(req.CPF); existing != nil {
		return nil, apperr.NewConflict("this cpf is already in use")
	}
	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, apperr.NewConflict("this email is already in use")
	}

	user := &model.User{
		Name:   req.Name,
		Email:  req.Email,
		CPF:    req.CPF,
		Role:   model.RoleStandard,
		Active: false,
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperr.NewInternal("failed to hash password", err)
	}

	// The repository promotes the first account ever to an active admin
	// atomically, so two concurrent first registrations cannot both win.
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.NewInternal("failed to create user", err)
	}

	response := user.ToResponse()
	return &response, nil
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, apperr.NewNotFound("this email is not registered")
	}

	if !user.CheckPassword(password) {
		return nil, apperr.NewInvalidCredentials()
	}

	if !user.Active {
		return nil, apperr.NewInactiveAccount()
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Role, user.Active)
	if err != nil {
		if errors.Is(err, jwt.ErrMissingSecret) {
			return nil, apperr.NewInternal("signing secret is not configured", err)
		}
		return nil, apperr.NewInternal("failed to generate token", err)
	}

	return &LoginResponse{Token: token, User: user.ToResponse()}, nil
}
