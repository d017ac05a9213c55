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

// OpportunityService handles business logic for the opportunity lifecycle
type OpportunityService struct {
	repo         repository.OpportunityRepositoryInterface
	pipelineRepo repository.PipelineRepositoryInterface
	customerRepo repository.CustomerRepositoryInterface
	validator    *validator.Validate
}

// NewOpportunityService creates a new opportunity service
func NewOpportunityService(
	repo repository.OpportunityRepositoryInterface,
	pipelineRepo repository.PipelineRepositoryInterface,
	customerRepo repository.CustomerRepositoryInterface,
	validator *validator.Validate,
) *OpportunityService {
	return &OpportunityService{
		repo:         repo,
		pipelineRepo: pipelineRepo,
		customerRepo: customerRepo,
		validator:    validator,
	}
}

// CreateOpportunityRequest represents the request to create an opportunity
type CreateOpportunityRequest struct {
	Title             string          `json:"title" validate:"required,max=200"`
	CustomerID        uuid.UUID       `json:"customerId" validate:"required"`
	PipelineID        uuid.UUID       `json:"pipelineId" validate:"required"`
	Stage             string          `json:"stage" validate:"required,max=100"`
	Value             float64         `json:"value" validate:"min=0"`
	Currency          string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	ExpectedCloseDate *time.Time      `json:"expectedCloseDate,omitempty"`
	SalespersonID     *uuid.UUID      `json:"salespersonId,omitempty"`
	TeamID            *uuid.UUID      `json:"teamId,omitempty"`
	Source            string          `json:"source,omitempty"`
	Tags              json.RawMessage `json:"tags,omitempty"`
	Description       string          `json:"description,omitempty" validate:"max=2000"`
	Notes             string          `json:"notes,omitempty" validate:"max=2000"`
}

// UpdateOpportunityRequest represents a partial update; nil fields are preserved
type UpdateOpportunityRequest struct {
	Title             *string         `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Stage             *string         `json:"stage,omitempty" validate:"omitempty,min=1,max=100"`
	PipelineID        *uuid.UUID      `json:"pipelineId,omitempty"`
	Value             *float64        `json:"value,omitempty" validate:"omitempty,min=0"`
	Currency          *string         `json:"currency,omitempty" validate:"omitempty,len=3"`
	ExpectedCloseDate *time.Time      `json:"expectedCloseDate,omitempty"`
	SalespersonID     *uuid.UUID      `json:"salespersonId,omitempty"`
	TeamID            *uuid.UUID      `json:"teamId,omitempty"`
	Source            *string         `json:"source,omitempty"`
	Tags              json.RawMessage `json:"tags,omitempty"`
	Description       *string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status            *string         `json:"status,omitempty" validate:"omitempty,oneof=open won lost cancelled"`
	LostReason        *string         `json:"lostReason,omitempty" validate:"omitempty,max=500"`
	Notes             *string         `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// OpportunityStatsOverview summarizes opportunities grouped by status
type OpportunityStatsOverview struct {
	StatusStats        []repository.StatusStat `json:"statusStats"`
	TotalOpportunities int64                   `json:"totalOpportunities"`
	TotalValue         float64                 `json:"totalValue"`
	WeightedValue      float64                 `json:"weightedValue"`
}

func (s *OpportunityService) stagesOf(pipelineID uuid.UUID) ([]models.PipelineStage, error) {
	pipeline, err := s.pipelineRepo.GetByID(pipelineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPipelineNotFound
		}
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}
	return pipeline.Stages, nil
}

// Create creates a new opportunity. The stage's probability is resolved from
// the pipeline configuration; an unknown stage resolves to 0.
func (s *OpportunityService) Create(req *CreateOpportunityRequest, callerID uuid.UUID) (*models.Opportunity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	stages, err := s.stagesOf(req.PipelineID)
	if err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.GetByID(req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	source := models.Source(req.Source)
	if source == "" {
		source = models.SourceOther
	}
	tags := req.Tags
	if tags == nil {
		tags = json.RawMessage("[]")
	}
	salespersonID := callerID
	if req.SalespersonID != nil {
		salespersonID = *req.SalespersonID
	}

	opportunity := &models.Opportunity{
		Title:             req.Title,
		CustomerID:        req.CustomerID,
		PipelineID:        req.PipelineID,
		Stage:             req.Stage,
		Value:             req.Value,
		Currency:          currency,
		Probability:       ResolveStageProbability(stages, req.Stage),
		ExpectedCloseDate: req.ExpectedCloseDate,
		SalespersonID:     salespersonID,
		TeamID:            req.TeamID,
		Source:            source,
		Tags:              tags,
		Description:       req.Description,
		Status:            models.OpportunityStatusOpen,
		Notes:             req.Notes,
		CreatedBy:         callerID,
		IsActive:          true,
	}

	if err := s.repo.Create(opportunity); err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}

	return s.repo.GetWithRelations(opportunity.ID)
}

// GetByID retrieves an opportunity with its customer, pipeline and salesperson
func (s *OpportunityService) GetByID(id uuid.UUID) (*models.Opportunity, error) {
	opportunity, err := s.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("failed to get opportunity: %w", err)
	}
	return opportunity, nil
}

// List retrieves opportunities matching the filter with pagination
func (s *OpportunityService) List(filter repository.OpportunityFilter, page, limit int) ([]models.Opportunity, *Pagination, error) {
	filter.Limit = limit
	filter.Offset = (page - 1) * limit
	opportunities, total, err := s.repo.List(filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	return opportunities, NewPagination(page, limit, total), nil
}

// Update applies a partial update. Only the salesperson or the creator may
// update an opportunity. A stage change re-resolves the probability from the
// pipeline; closing to won or lost stamps the actual close date once, on the
// first closing transition.
func (s *OpportunityService) Update(id uuid.UUID, req *UpdateOpportunityRequest, callerID uuid.UUID) (*models.Opportunity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	opportunity, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("failed to get opportunity: %w", err)
	}

	if !opportunity.IsOwnedBy(callerID) {
		return nil, apperrors.ErrNotOpportunityOwner
	}

	if req.PipelineID != nil {
		if _, err := s.stagesOf(*req.PipelineID); err != nil {
			return nil, err
		}
		opportunity.PipelineID = *req.PipelineID
	}

	if req.Title != nil {
		opportunity.Title = *req.Title
	}
	if req.Value != nil {
		opportunity.Value = *req.Value
	}
	if req.Currency != nil {
		opportunity.Currency = *req.Currency
	}
	if req.ExpectedCloseDate != nil {
		opportunity.ExpectedCloseDate = req.ExpectedCloseDate
	}
	if req.SalespersonID != nil {
		opportunity.SalespersonID = *req.SalespersonID
	}
	if req.TeamID != nil {
		opportunity.TeamID = req.TeamID
	}
	if req.Source != nil {
		opportunity.Source = models.Source(*req.Source)
	}
	if req.Tags != nil {
		opportunity.Tags = req.Tags
	}
	if req.Description != nil {
		opportunity.Description = *req.Description
	}
	if req.LostReason != nil {
		opportunity.LostReason = *req.LostReason
	}
	if req.Notes != nil {
		opportunity.Notes = *req.Notes
	}

	if req.Stage != nil && *req.Stage != opportunity.Stage {
		stages, err := s.stagesOf(opportunity.PipelineID)
		if err != nil {
			return nil, err
		}
		opportunity.Stage = *req.Stage
		opportunity.Probability = ResolveStageProbability(stages, *req.Stage)
	}

	if req.Status != nil {
		status := models.OpportunityStatus(*req.Status)
		closing := status == models.OpportunityStatusWon || status == models.OpportunityStatusLost
		if closing && opportunity.ActualCloseDate == nil {
			now := time.Now()
			opportunity.ActualCloseDate = &now
		}
		opportunity.Status = status
	}

	if err := s.repo.Update(opportunity); err != nil {
		return nil, fmt.Errorf("failed to update opportunity: %w", err)
	}

	return s.repo.GetWithRelations(id)
}

// Delete hard-deletes an opportunity; only the salesperson or creator may
func (s *OpportunityService) Delete(id uuid.UUID, callerID uuid.UUID) error {
	opportunity, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOpportunityNotFound
		}
		return fmt.Errorf("failed to get opportunity: %w", err)
	}

	if !opportunity.IsOwnedBy(callerID) {
		return apperrors.ErrNotOpportunityOwner
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete opportunity: %w", err)
	}
	return nil
}

// StatsOverview summarizes the caller's opportunities by status, optionally
// narrowed to a team or a salesperson. The caller scope covers records where
// the caller is the salesperson or the creator.
func (s *OpportunityService) StatsOverview(callerID uuid.UUID, teamID, salespersonID *uuid.UUID) (*OpportunityStatsOverview, error) {
	filter := repository.OpportunityFilter{
		OwnerID:       &callerID,
		TeamID:        teamID,
		SalespersonID: salespersonID,
	}

	stats, err := s.repo.StatusStats(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to compute status stats: %w", err)
	}
	total, err := s.repo.Count(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count opportunities: %w", err)
	}
	totalValue, weightedValue, err := s.repo.SumValues(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to sum opportunity values: %w", err)
	}

	return &OpportunityStatsOverview{
		StatusStats:        stats,
		TotalOpportunities: total,
		TotalValue:         roundSum(totalValue),
		WeightedValue:      roundSum(weightedValue),
	}, nil
}
