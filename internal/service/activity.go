package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"calyx-crm-backend/internal/database/models"
	apperrors "calyx-crm-backend/internal/errors"
	"calyx-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityService handles business logic for activities
type ActivityService struct {
	repo      repository.ActivityRepositoryInterface
	validator *validator.Validate
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityRepositoryInterface, validator *validator.Validate) *ActivityService {
	return &ActivityService{repo: repo, validator: validator}
}

// CreateActivityRequest represents the request to create an activity
type CreateActivityRequest struct {
	Type             string          `json:"type" validate:"required,oneof=call email meeting task note demo proposal follow_up"`
	Subject          string          `json:"subject" validate:"required,max=200"`
	Description      string          `json:"description,omitempty" validate:"max=2000"`
	CustomerID       *uuid.UUID      `json:"customerId,omitempty"`
	OpportunityID    *uuid.UUID      `json:"opportunityId,omitempty"`
	AssignedToID     *uuid.UUID      `json:"assignedTo,omitempty"`
	TeamID           *uuid.UUID      `json:"teamId,omitempty"`
	Status           string          `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority         string          `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	DueDate          *time.Time      `json:"dueDate,omitempty"`
	Duration         int             `json:"duration,omitempty" validate:"min=0"`
	Location         string          `json:"location,omitempty" validate:"max=200"`
	Tags             json.RawMessage `json:"tags,omitempty"`
	IsRecurring      bool            `json:"isRecurring,omitempty"`
	RecurringPattern json.RawMessage `json:"recurringPattern,omitempty"`
}

// UpdateActivityRequest represents a partial update; nil fields are preserved
type UpdateActivityRequest struct {
	Type             *string         `json:"type,omitempty" validate:"omitempty,oneof=call email meeting task note demo proposal follow_up"`
	Subject          *string         `json:"subject,omitempty" validate:"omitempty,min=1,max=200"`
	Description      *string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	CustomerID       *uuid.UUID      `json:"customerId,omitempty"`
	OpportunityID    *uuid.UUID      `json:"opportunityId,omitempty"`
	AssignedToID     *uuid.UUID      `json:"assignedTo,omitempty"`
	TeamID           *uuid.UUID      `json:"teamId,omitempty"`
	Status           *string         `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority         *string         `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	DueDate          *time.Time      `json:"dueDate,omitempty"`
	Duration         *int            `json:"duration,omitempty" validate:"omitempty,min=0"`
	Location         *string         `json:"location,omitempty" validate:"omitempty,max=200"`
	Outcome          *string         `json:"outcome,omitempty" validate:"omitempty,max=1000"`
	NextAction       *string         `json:"nextAction,omitempty" validate:"omitempty,max=500"`
	NextActionDate   *time.Time      `json:"nextActionDate,omitempty"`
	Tags             json.RawMessage `json:"tags,omitempty"`
	IsRecurring      *bool           `json:"isRecurring,omitempty"`
	RecurringPattern json.RawMessage `json:"recurringPattern,omitempty"`
}

// Create creates a new activity assigned to the caller by default
func (s *ActivityService) Create(req *CreateActivityRequest, callerID uuid.UUID) (*models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.ActivityStatus(req.Status)
	if status == "" {
		status = models.ActivityStatusPending
	}
	priority := models.ActivityPriority(req.Priority)
	if priority == "" {
		priority = models.ActivityPriorityMedium
	}
	assignedTo := callerID
	if req.AssignedToID != nil {
		assignedTo = *req.AssignedToID
	}

	activity := &models.Activity{
		Type:             models.ActivityType(req.Type),
		Subject:          req.Subject,
		Description:      req.Description,
		CustomerID:       req.CustomerID,
		OpportunityID:    req.OpportunityID,
		AssignedToID:     assignedTo,
		TeamID:           req.TeamID,
		Status:           status,
		Priority:         priority,
		DueDate:          req.DueDate,
		Duration:         req.Duration,
		Location:         req.Location,
		Tags:             req.Tags,
		IsRecurring:      req.IsRecurring,
		RecurringPattern: req.RecurringPattern,
		CreatedBy:        callerID,
		IsActive:         true,
	}

	if err := s.repo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return activity, nil
}

// GetByID retrieves an activity by ID
func (s *ActivityService) GetByID(id uuid.UUID) (*models.Activity, error) {
	activity, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return activity, nil
}

// List retrieves activities matching the filter with pagination
func (s *ActivityService) List(filter repository.ActivityFilter, page, limit int) ([]models.Activity, *Pagination, error) {
	filter.Limit = limit
	filter.Offset = (page - 1) * limit
	activities, total, err := s.repo.List(filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, NewPagination(page, limit, total), nil
}

// Update applies a partial update. Completing an activity stamps the
// completion date once, on the first completing transition.
func (s *ActivityService) Update(id uuid.UUID, req *UpdateActivityRequest) (*models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	activity, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	if req.Type != nil {
		activity.Type = models.ActivityType(*req.Type)
	}
	if req.Subject != nil {
		activity.Subject = *req.Subject
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.CustomerID != nil {
		activity.CustomerID = req.CustomerID
	}
	if req.OpportunityID != nil {
		activity.OpportunityID = req.OpportunityID
	}
	if req.AssignedToID != nil {
		activity.AssignedToID = *req.AssignedToID
	}
	if req.TeamID != nil {
		activity.TeamID = req.TeamID
	}
	if req.Priority != nil {
		activity.Priority = models.ActivityPriority(*req.Priority)
	}
	if req.DueDate != nil {
		activity.DueDate = req.DueDate
	}
	if req.Duration != nil {
		activity.Duration = *req.Duration
	}
	if req.Location != nil {
		activity.Location = *req.Location
	}
	if req.Outcome != nil {
		activity.Outcome = *req.Outcome
	}
	if req.NextAction != nil {
		activity.NextAction = *req.NextAction
	}
	if req.NextActionDate != nil {
		activity.NextActionDate = req.NextActionDate
	}
	if req.Tags != nil {
		activity.Tags = req.Tags
	}
	if req.IsRecurring != nil {
		activity.IsRecurring = *req.IsRecurring
	}
	if req.RecurringPattern != nil {
		activity.RecurringPattern = req.RecurringPattern
	}

	if req.Status != nil {
		status := models.ActivityStatus(*req.Status)
		if status == models.ActivityStatusCompleted && activity.CompletedDate == nil {
			now := time.Now()
			activity.CompletedDate = &now
		}
		activity.Status = status
	}

	if err := s.repo.Update(activity); err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}
	return activity, nil
}

// Delete soft-deletes an activity by clearing its active flag
func (s *ActivityService) Delete(id uuid.UUID) error {
	if err := s.repo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrActivityNotFound
		}
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}
