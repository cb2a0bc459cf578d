package service

import (
	"go-stock-sales/internal/apperr"
	"go-stock-sales/internal/model"
	"go-stock-sales/internal/repository"
	"go-stock-sales/pkg/validator"

	"github.com/google/uuid"
)

type UserService interface {
	GetByID(id uuid.UUID) (*model.UserResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*model.UserResponse, error)
	Approve(targetID, actorID uuid.UUID) (*model.UserResponse, error)
	Deactivate(targetID, actorID uuid.UUID) (*model.UserResponse, error)
}

// UpdateUserRequest enumerates the mutable fields of an account.
// Empty fields keep their stored values; anything else in the payload
// is ignored.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"omitempty,min=3"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperr.NewNotFound("user not found")
	}
	response := user.ToResponse()
	return &response, nil
}

func (s *userService) Update(id uuid.UUID, req *UpdateUserRequest) (*model.UserResponse, error) {
	if fields := validator.ValidateStruct(req); len(fields) > 0 {
		return nil, apperr.NewValidation(fields)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperr.NewNotFound("user not found")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" && req.Email != user.Email {
		if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
			return nil, apperr.NewConflict("this email is already in use")
		}
		user.Email = req.Email
	}
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return nil, apperr.NewInternal("failed to hash password", err)
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperr.NewInternal("failed to update user", err)
	}

	response := user.ToResponse()
	return &response, nil
}

// Approve activates a pending account. Only admins may approve.
func (s *userService) Approve(targetID, actorID uuid.UUID) (*model.UserResponse, error) {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return nil, apperr.NewNotFound("acting user not found")
	}
	if !actor.IsAdmin() {
		return nil, apperr.NewForbidden("only admins can approve accounts")
	}

	return s.setActive(targetID, true)
}

// Deactivate disables an account. Admins can deactivate anyone;
// any user can deactivate their own account.
func (s *userService) Deactivate(targetID, actorID uuid.UUID) (*model.UserResponse, error) {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return nil, apperr.NewNotFound("acting user not found")
	}
	if !actor.IsAdmin() && actorID != targetID {
		return nil, apperr.NewForbidden("only admins can deactivate other accounts")
	}

	return s.setActive(targetID, false)
}

func (s *userService) setActive(targetID uuid.UUID, active bool) (*model.UserResponse, error) {
	target, err := s.userRepo.FindByID(targetID)
	if err != nil {
		return nil, apperr.NewNotFound("user not found")
	}

	// Single-column write: racing profile updates must not be clobbered.
	if err := s.userRepo.SetActive(targetID, active); err != nil {
		return nil, apperr.NewInternal("failed to update user", err)
	}

	target.Active = active
	response := target.ToResponse()
	return &response, nil
}
