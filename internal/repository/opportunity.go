package repository

import (
	"time"

	"calyx-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpportunityFilter narrows opportunity queries. OwnerID scopes results to
// rows where the user is either the salesperson or the creator.
type OpportunityFilter struct {
	OwnerID       *uuid.UUID
	Status        string
	Stage         string
	PipelineID    *uuid.UUID
	TeamID        *uuid.UUID
	SalespersonID *uuid.UUID
	Limit         int
	Offset        int
}

// StageStat is one row of a stage grouping over open opportunities
type StageStat struct {
	Stage         string  `json:"stage"`
	Count         int64   `json:"count"`
	TotalValue    float64 `json:"totalValue"`
	WeightedValue float64 `json:"weightedValue"`
}

// StatusStat is one row of a status grouping
type StatusStat struct {
	Status        string  `json:"status"`
	Count         int64   `json:"count"`
	TotalValue    float64 `json:"totalValue"`
	WeightedValue float64 `json:"weightedValue"`
}

// OpportunityRepository handles database operations for opportunities,
// including the dashboard and forecast aggregation queries.
type OpportunityRepository struct {
	db *gorm.DB
}

// NewOpportunityRepository creates a new opportunity repository
func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

func (r *OpportunityRepository) scoped(f OpportunityFilter) *gorm.DB {
	query := r.db.Model(&models.Opportunity{})
	if f.OwnerID != nil {
		query = query.Where("(salesperson_id = ? OR created_by = ?)", *f.OwnerID, *f.OwnerID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Stage != "" {
		query = query.Where("stage = ?", f.Stage)
	}
	if f.PipelineID != nil {
		query = query.Where("pipeline_id = ?", *f.PipelineID)
	}
	if f.TeamID != nil {
		query = query.Where("team_id = ?", *f.TeamID)
	}
	if f.SalespersonID != nil {
		query = query.Where("salesperson_id = ?", *f.SalespersonID)
	}
	return query
}

// Create creates a new opportunity
func (r *OpportunityRepository) Create(opp *models.Opportunity) error {
	return r.db.Create(opp).Error
}

// GetByID retrieves an opportunity by ID
func (r *OpportunityRepository) GetByID(id uuid.UUID) (*models.Opportunity, error) {
	var opp models.Opportunity
	err := r.db.First(&opp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &opp, nil
}

// GetWithRelations retrieves an opportunity with customer, pipeline (and its
// stages), salesperson and team preloaded.
func (r *OpportunityRepository) GetWithRelations(id uuid.UUID) (*models.Opportunity, error) {
	var opp models.Opportunity
	err := r.db.Preload("Customer").
		Preload("Pipeline").
		Preload("Pipeline.Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("pipeline_stages.sort_order ASC")
		}).
		Preload("Salesperson").
		Preload("Team").
		First(&opp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &opp, nil
}

// List retrieves opportunities matching a filter with pagination, most
// distant expected close date first.
func (r *OpportunityRepository) List(f OpportunityFilter) ([]models.Opportunity, int64, error) {
	var opps []models.Opportunity
	var total int64

	if err := r.scoped(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.scoped(f).
		Preload("Customer").Preload("Salesperson").Preload("Pipeline").Preload("Team").
		Order("expected_close_date DESC NULLS LAST").
		Limit(f.Limit).Offset(f.Offset).
		Find(&opps).Error
	if err != nil {
		return nil, 0, err
	}

	return opps, total, nil
}

// ListOpenByCloseDate retrieves all open opportunities matching a filter,
// soonest expected close date first. Used by the forecast overview.
func (r *OpportunityRepository) ListOpenByCloseDate(f OpportunityFilter) ([]models.Opportunity, error) {
	f.Status = string(models.OpportunityStatusOpen)
	var opps []models.Opportunity
	err := r.scoped(f).
		Preload("Customer").Preload("Salesperson").
		Order("expected_close_date ASC NULLS LAST").
		Find(&opps).Error
	return opps, err
}

// Update saves all fields of an opportunity
func (r *OpportunityRepository) Update(opp *models.Opportunity) error {
	return r.db.Save(opp).Error
}

// Delete hard-deletes an opportunity
func (r *OpportunityRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Opportunity{}, "id = ?", id).Error
}

// Count returns the number of opportunities matching a filter
func (r *OpportunityRepository) Count(f OpportunityFilter) (int64, error) {
	var count int64
	err := r.scoped(f).Count(&count).Error
	return count, err
}

// CountByPipeline returns how many opportunities reference a pipeline.
// Guards pipeline deletion.
func (r *OpportunityRepository) CountByPipeline(pipelineID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Opportunity{}).Where("pipeline_id = ?", pipelineID).Count(&count).Error
	return count, err
}

// CountClosingBetween counts opportunities matching a filter whose expected
// close date falls within [from, to].
func (r *OpportunityRepository) CountClosingBetween(f OpportunityFilter, from, to time.Time) (int64, error) {
	var count int64
	err := r.scoped(f).
		Where("expected_close_date >= ? AND expected_close_date <= ?", from, to).
		Count(&count).Error
	return count, err
}

// SumValues returns the value sum and exact weighted-value sum
// (value * probability / 100) over opportunities matching a filter.
func (r *OpportunityRepository) SumValues(f OpportunityFilter) (totalValue, weightedValue float64, err error) {
	row := struct {
		TotalValue    float64
		WeightedValue float64
	}{}
	err = r.scoped(f).
		Select("COALESCE(SUM(value), 0) AS total_value, COALESCE(SUM(value * probability / 100.0), 0) AS weighted_value").
		Scan(&row).Error
	return row.TotalValue, row.WeightedValue, err
}

// StageStats groups opportunities matching a filter by stage, largest group first
func (r *OpportunityRepository) StageStats(f OpportunityFilter) ([]StageStat, error) {
	var stats []StageStat
	err := r.scoped(f).
		Select("stage, COUNT(*) AS count, COALESCE(SUM(value), 0) AS total_value, COALESCE(SUM(value * probability / 100.0), 0) AS weighted_value").
		Group("stage").
		Order("count DESC").
		Scan(&stats).Error
	return stats, err
}

// StatusStats groups opportunities matching a filter by status
func (r *OpportunityRepository) StatusStats(f OpportunityFilter) ([]StatusStat, error) {
	var stats []StatusStat
	err := r.scoped(f).
		Select("status, COUNT(*) AS count, COALESCE(SUM(value), 0) AS total_value, COALESCE(SUM(value * probability / 100.0), 0) AS weighted_value").
		Group("status").
		Scan(&stats).Error
	return stats, err
}
