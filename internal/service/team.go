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

// TeamService handles business logic for teams and their membership
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{repo: repo, userRepo: userRepo, validator: validator}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name          string     `json:"name" validate:"required,max=100"`
	Description   string     `json:"description,omitempty" validate:"max=500"`
	ManagerID     *uuid.UUID `json:"managerId,omitempty"`
	TargetRevenue float64    `json:"targetRevenue,omitempty" validate:"min=0"`
}

// UpdateTeamRequest represents a partial update; nil fields are preserved
type UpdateTeamRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	ManagerID     *uuid.UUID `json:"managerId,omitempty"`
	TargetRevenue *float64   `json:"targetRevenue,omitempty" validate:"omitempty,min=0"`
	IsActive      *bool      `json:"isActive,omitempty"`
}

// AddMemberRequest represents the request to add a user to a team
type AddMemberRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	Role   string    `json:"role,omitempty" validate:"omitempty,oneof=member senior lead"`
}

// Create creates a new team, managed by the caller unless a manager is given
func (s *TeamService) Create(req *CreateTeamRequest, callerID uuid.UUID) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	managerID := callerID
	if req.ManagerID != nil {
		managerID = *req.ManagerID
	}

	team := &models.Team{
		Name:          req.Name,
		Description:   req.Description,
		ManagerID:     managerID,
		TargetRevenue: req.TargetRevenue,
		IsActive:      true,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

// GetByID retrieves a team with its manager and members
func (s *TeamService) GetByID(id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// List retrieves teams with pagination
func (s *TeamService) List(isActive bool, page, limit int) ([]models.Team, *Pagination, error) {
	teams, total, err := s.repo.List(isActive, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, NewPagination(page, limit, total), nil
}

// Update applies a partial update to a team
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.ManagerID != nil {
		team.ManagerID = *req.ManagerID
	}
	if req.TargetRevenue != nil {
		team.TargetRevenue = *req.TargetRevenue
	}
	if req.IsActive != nil {
		team.IsActive = *req.IsActive
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return team, nil
}

// Delete soft-deletes a team by clearing its active flag
func (s *TeamService) Delete(id uuid.UUID) error {
	if err := s.repo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// AddMember adds a user to a team; a user may appear in a team only once
func (s *TeamService) AddMember(teamID uuid.UUID, req *AddMemberRequest) (*models.TeamMember, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	user, err := s.userRepo.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	exists, err := s.repo.HasMember(teamID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamMemberExists
	}

	role := models.TeamMemberRole(req.Role)
	if role == "" {
		role = models.TeamMemberRoleMember
	}

	member := &models.TeamMember{
		TeamID: teamID,
		UserID: req.UserID,
		Role:   role,
	}
	if err := s.repo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}

	user.TeamID = &teamID
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user team: %w", err)
	}

	member.User = user
	return member, nil
}

// RemoveMember removes a membership row from a team
func (s *TeamService) RemoveMember(teamID, memberID uuid.UUID) error {
	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.RemoveMember(teamID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	return nil
}
