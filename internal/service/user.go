package service

import (
	"errors"
	"fmt"

	"calyx-crm-backend/internal/database/models"
	apperrors "calyx-crm-backend/internal/errors"
	"calyx-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for user accounts
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, validator: validator}
}

// UpdateUserRequest represents a partial profile update; nil fields are preserved
type UpdateUserRequest struct {
	Name   *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone  *string    `json:"phone,omitempty" validate:"omitempty,max=30"`
	Avatar *string    `json:"avatar,omitempty" validate:"omitempty,max=500"`
	Role   *string    `json:"role,omitempty" validate:"omitempty,oneof=admin manager user"`
	TeamID *uuid.UUID `json:"teamId,omitempty"`
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListActive retrieves all active users with their teams
func (s *UserService) ListActive() ([]models.User, error) {
	users, err := s.repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Update applies a partial update to a user profile
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}
	if req.TeamID != nil {
		user.TeamID = req.TeamID
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Deactivate soft-deletes a user account
func (s *UserService) Deactivate(id uuid.UUID) error {
	if err := s.repo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}
