package repository

import (
	"calyx-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PipelineRepository handles database operations for pipelines and their stages
type PipelineRepository struct {
	db *gorm.DB
}

// NewPipelineRepository creates a new pipeline repository
func NewPipelineRepository(db *gorm.DB) *PipelineRepository {
	return &PipelineRepository{db: db}
}

// Create creates a pipeline together with its stage rows
func (r *PipelineRepository) Create(pipeline *models.Pipeline) error {
	return r.db.Create(pipeline).Error
}

// GetByID retrieves a pipeline with its stages ordered by sort order
func (r *PipelineRepository) GetByID(id uuid.UUID) (*models.Pipeline, error) {
	var pipeline models.Pipeline
	err := r.db.Preload("Stages", func(db *gorm.DB) *gorm.DB {
		return db.Order("pipeline_stages.sort_order ASC")
	}).First(&pipeline, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// GetWithCreator retrieves a pipeline with stages and creator preloaded
func (r *PipelineRepository) GetWithCreator(id uuid.UUID) (*models.Pipeline, error) {
	var pipeline models.Pipeline
	err := r.db.Preload("Stages", func(db *gorm.DB) *gorm.DB {
		return db.Order("pipeline_stages.sort_order ASC")
	}).Preload("Creator").First(&pipeline, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// List retrieves pipelines filtered by active flag with pagination, newest first
func (r *PipelineRepository) List(isActive bool, limit, offset int) ([]models.Pipeline, int64, error) {
	var pipelines []models.Pipeline
	var total int64

	if err := r.db.Model(&models.Pipeline{}).Where("is_active = ?", isActive).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Stages", func(db *gorm.DB) *gorm.DB {
		return db.Order("pipeline_stages.sort_order ASC")
	}).Preload("Creator").
		Where("is_active = ?", isActive).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&pipelines).Error
	if err != nil {
		return nil, 0, err
	}

	return pipelines, total, nil
}

// Update saves the pipeline's own fields (not its stages)
func (r *PipelineRepository) Update(pipeline *models.Pipeline) error {
	return r.db.Omit("Stages").Save(pipeline).Error
}

// ReplaceStages swaps a pipeline's stage list atomically
func (r *PipelineRepository) ReplaceStages(pipelineID uuid.UUID, stages []models.PipelineStage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PipelineStage{}, "pipeline_id = ?", pipelineID).Error; err != nil {
			return err
		}
		for i := range stages {
			stages[i].PipelineID = pipelineID
		}
		if len(stages) == 0 {
			return nil
		}
		return tx.Create(&stages).Error
	})
}

// Delete hard-deletes a pipeline; stage rows cascade
func (r *PipelineRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PipelineStage{}, "pipeline_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Pipeline{}, "id = ?", id).Error
	})
}
