package repository

import (
	"calyx-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadFilter narrows lead list queries
type LeadFilter struct {
	Search       string
	Status       string
	Source       string
	AssignedToID *uuid.UUID
	TeamID       *uuid.UUID
	SortBy       string
	SortOrder    string
	Limit        int
	Offset       int
}

var leadSortColumns = map[string]string{
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
	"firstName":      "first_name",
	"lastName":       "last_name",
	"email":          "email",
	"company":        "company",
	"status":         "status",
	"score":          "score",
	"estimatedValue": "estimated_value",
}

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// GetByID retrieves a lead with assignee and team preloaded
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.Preload("AssignedTo").Preload("Team").Preload("ConvertedTo").
		First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// List retrieves active leads matching a filter, with pagination.
// Search matches first name, last name, email or company case-insensitively.
func (r *LeadRepository) List(f LeadFilter) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	query := r.db.Model(&models.Lead{}).Where("is_active = ?", true)
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Source != "" {
		query = query.Where("source = ?", f.Source)
	}
	if f.AssignedToID != nil {
		query = query.Where("assigned_to_id = ?", *f.AssignedToID)
	}
	if f.TeamID != nil {
		query = query.Where("team_id = ?", *f.TeamID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR company ILIKE ?",
			like, like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := leadSortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if f.SortOrder == "asc" {
		direction = "ASC"
	}

	err := query.Preload("AssignedTo").Preload("Team").
		Order(column + " " + direction).
		Limit(f.Limit).Offset(f.Offset).
		Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// Update saves all fields of a lead
func (r *LeadRepository) Update(lead *models.Lead) error {
	return r.db.Save(lead).Error
}

// Deactivate soft-deletes a lead by flipping its active flag
func (r *LeadRepository) Deactivate(id uuid.UUID) error {
	res := r.db.Model(&models.Lead{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
