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

// PipelineService handles business logic for pipelines and stage probabilities
type PipelineService struct {
	repo      repository.PipelineRepositoryInterface
	oppRepo   repository.OpportunityRepositoryInterface
	validator *validator.Validate
}

// NewPipelineService creates a new pipeline service
func NewPipelineService(repo repository.PipelineRepositoryInterface, oppRepo repository.OpportunityRepositoryInterface, validator *validator.Validate) *PipelineService {
	return &PipelineService{
		repo:      repo,
		oppRepo:   oppRepo,
		validator: validator,
	}
}

// StageInput describes one stage of a create/update pipeline request
type StageInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Probability int    `json:"probability" validate:"min=0,max=100"`
	Color       string `json:"color,omitempty"`
	Order       int    `json:"order,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// CreatePipelineRequest represents the request to create a pipeline
type CreatePipelineRequest struct {
	Name        string       `json:"name" validate:"required,max=100"`
	Description string       `json:"description" validate:"max=500"`
	Stages      []StageInput `json:"stages" validate:"required,min=1,dive"`
	TeamID      *uuid.UUID   `json:"teamId,omitempty"`
	IsDefault   bool         `json:"isDefault"`
}

// UpdatePipelineRequest represents a partial pipeline update; nil fields are preserved
type UpdatePipelineRequest struct {
	Name        *string      `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string      `json:"description,omitempty" validate:"omitempty,max=500"`
	Stages      []StageInput `json:"stages,omitempty" validate:"omitempty,min=1,dive"`
	IsDefault   *bool        `json:"isDefault,omitempty"`
	IsActive    *bool        `json:"isActive,omitempty"`
}

// StageOpportunities is one column of the stage-grouped pipeline board
type StageOpportunities struct {
	Stage         models.PipelineStage `json:"stage"`
	Opportunities []models.Opportunity `json:"opportunities"`
}

// PipelineDetail is a pipeline with its open opportunities grouped by stage
type PipelineDetail struct {
	Pipeline           *models.Pipeline     `json:"pipeline"`
	StageData          []StageOpportunities `json:"stageData"`
	TotalOpportunities int                  `json:"totalOpportunities"`
}

// PipelineStatsOverview summarizes open opportunities grouped by stage
type PipelineStatsOverview struct {
	StageStats         []repository.StageStat `json:"stageStats"`
	TotalOpportunities int64                  `json:"totalOpportunities"`
	TotalValue         float64                `json:"totalValue"`
}

// ResolveStageProbability returns the win-probability configured on the stage
// with the given name. Matching is case-sensitive, a linear scan in stage
// order, first match wins. An unknown stage name silently resolves to 0;
// pipeline existence is the caller's concern.
func ResolveStageProbability(stages []models.PipelineStage, stageName string) int {
	for _, stage := range stages {
		if stage.Name == stageName {
			return stage.Probability
		}
	}
	return 0
}

func buildStages(inputs []StageInput) []models.PipelineStage {
	stages := make([]models.PipelineStage, 0, len(inputs))
	for i, in := range inputs {
		color := in.Color
		if color == "" {
			color = "#2196F3"
		}
		order := in.Order
		if order == 0 {
			order = i + 1
		}
		active := true
		if in.IsActive != nil {
			active = *in.IsActive
		}
		stages = append(stages, models.PipelineStage{
			Name:        in.Name,
			Probability: in.Probability,
			Color:       color,
			SortOrder:   order,
			IsActive:    active,
		})
	}
	return stages
}

// Create creates a new pipeline with its stages
func (s *PipelineService) Create(req *CreatePipelineRequest, callerID uuid.UUID) (*models.Pipeline, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	pipeline := &models.Pipeline{
		Name:        req.Name,
		Description: req.Description,
		TeamID:      req.TeamID,
		CreatedBy:   callerID,
		IsDefault:   req.IsDefault,
		IsActive:    true,
		Stages:      buildStages(req.Stages),
	}

	if err := s.repo.Create(pipeline); err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	return pipeline, nil
}

// GetByID retrieves a pipeline with its open opportunities grouped by stage
func (s *PipelineService) GetByID(id uuid.UUID) (*PipelineDetail, error) {
	pipeline, err := s.repo.GetWithCreator(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPipelineNotFound
		}
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}

	open, _, err := s.oppRepo.List(repository.OpportunityFilter{
		PipelineID: &id,
		Status:     string(models.OpportunityStatusOpen),
		Limit:      -1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pipeline opportunities: %w", err)
	}

	byStage := make(map[string][]models.Opportunity, len(pipeline.Stages))
	for _, opp := range open {
		byStage[opp.Stage] = append(byStage[opp.Stage], opp)
	}

	stageData := make([]StageOpportunities, 0, len(pipeline.Stages))
	for _, stage := range pipeline.Stages {
		opps := byStage[stage.Name]
		if opps == nil {
			opps = []models.Opportunity{}
		}
		stageData = append(stageData, StageOpportunities{Stage: stage, Opportunities: opps})
	}

	return &PipelineDetail{
		Pipeline:           pipeline,
		StageData:          stageData,
		TotalOpportunities: len(open),
	}, nil
}

// List retrieves pipelines with pagination
func (s *PipelineService) List(isActive bool, page, limit int) ([]models.Pipeline, *Pagination, error) {
	pipelines, total, err := s.repo.List(isActive, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list pipelines: %w", err)
	}
	return pipelines, NewPagination(page, limit, total), nil
}

// Update applies a partial update; supplied fields override, omitted fields
// are preserved. A supplied stage list replaces the previous one entirely.
func (s *PipelineService) Update(id uuid.UUID, req *UpdatePipelineRequest) (*models.Pipeline, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	pipeline, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPipelineNotFound
		}
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}

	if req.Name != nil {
		pipeline.Name = *req.Name
	}
	if req.Description != nil {
		pipeline.Description = *req.Description
	}
	if req.IsDefault != nil {
		pipeline.IsDefault = *req.IsDefault
	}
	if req.IsActive != nil {
		pipeline.IsActive = *req.IsActive
	}

	if err := s.repo.Update(pipeline); err != nil {
		return nil, fmt.Errorf("failed to update pipeline: %w", err)
	}

	if req.Stages != nil {
		if err := s.repo.ReplaceStages(id, buildStages(req.Stages)); err != nil {
			return nil, fmt.Errorf("failed to replace stages: %w", err)
		}
	}

	return s.repo.GetByID(id)
}

// ListOpportunities retrieves the opportunities on a pipeline with
// pagination, optionally narrowed to a stage and a status.
func (s *PipelineService) ListOpportunities(id uuid.UUID, stage, status string, page, limit int) ([]models.Opportunity, *Pagination, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrPipelineNotFound
		}
		return nil, nil, fmt.Errorf("failed to get pipeline: %w", err)
	}

	opps, total, err := s.oppRepo.List(repository.OpportunityFilter{
		PipelineID: &id,
		Stage:      stage,
		Status:     status,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list pipeline opportunities: %w", err)
	}

	return opps, NewPagination(page, limit, total), nil
}

// Delete hard-deletes a pipeline unless opportunities still reference it
func (s *PipelineService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPipelineNotFound
		}
		return fmt.Errorf("failed to get pipeline: %w", err)
	}

	count, err := s.oppRepo.CountByPipeline(id)
	if err != nil {
		return fmt.Errorf("failed to count pipeline opportunities: %w", err)
	}
	if count > 0 {
		return apperrors.ErrPipelineHasOpportunities
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete pipeline: %w", err)
	}
	return nil
}

// StatsOverview summarizes open opportunities by stage, optionally narrowed
// to a team or a salesperson.
func (s *PipelineService) StatsOverview(teamID, salespersonID *uuid.UUID) (*PipelineStatsOverview, error) {
	filter := repository.OpportunityFilter{
		Status:        string(models.OpportunityStatusOpen),
		TeamID:        teamID,
		SalespersonID: salespersonID,
	}

	stats, err := s.oppRepo.StageStats(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stage stats: %w", err)
	}
	total, err := s.oppRepo.Count(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count opportunities: %w", err)
	}
	totalValue, _, err := s.oppRepo.SumValues(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to sum opportunity values: %w", err)
	}

	return &PipelineStatsOverview{
		StageStats:         stats,
		TotalOpportunities: total,
		TotalValue:         totalValue,
	}, nil
}
