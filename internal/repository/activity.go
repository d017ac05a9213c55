package repository

import (
	"time"

	"calyx-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityFilter narrows activity list queries
type ActivityFilter struct {
	Type         string
	Status       string
	AssignedToID *uuid.UUID
	CustomerID   *uuid.UUID
	TeamID       *uuid.UUID
	DueDate      *time.Time
	Overdue      bool
	Limit        int
	Offset       int
}

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create creates a new activity
func (r *ActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// GetByID retrieves an activity with its relations preloaded
func (r *ActivityRepository) GetByID(id uuid.UUID) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.Preload("AssignedTo").Preload("Customer").Preload("Opportunity").
		First(&activity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// List retrieves active activities matching a filter, due soonest first
func (r *ActivityRepository) List(f ActivityFilter) ([]models.Activity, int64, error) {
	var activities []models.Activity
	var total int64

	query := r.db.Model(&models.Activity{}).Where("is_active = ?", true)
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.AssignedToID != nil {
		query = query.Where("assigned_to_id = ?", *f.AssignedToID)
	}
	if f.CustomerID != nil {
		query = query.Where("customer_id = ?", *f.CustomerID)
	}
	if f.TeamID != nil {
		query = query.Where("team_id = ?", *f.TeamID)
	}
	if f.Overdue {
		query = query.Where("due_date < ? AND status = ?", time.Now(), models.ActivityStatusPending)
	} else if f.DueDate != nil {
		dayStart := f.DueDate.Truncate(24 * time.Hour)
		query = query.Where("due_date >= ? AND due_date < ?", dayStart, dayStart.Add(24*time.Hour))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("AssignedTo").Preload("Customer").Preload("Opportunity").
		Order("due_date ASC NULLS LAST, created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&activities).Error
	if err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}

// CountPendingForUser counts a user's pending or in-progress activities
func (r *ActivityRepository) CountPendingForUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Activity{}).
		Where("assigned_to_id = ? AND status IN ?", userID,
			[]models.ActivityStatus{models.ActivityStatusPending, models.ActivityStatusInProgress}).
		Count(&count).Error
	return count, err
}

// RecentForUser retrieves the most recently created activities assigned to
// or created by a user.
func (r *ActivityRepository) RecentForUser(userID uuid.UUID, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Preload("Customer").Preload("AssignedTo").
		Where("(assigned_to_id = ? OR created_by = ?) AND is_active = ?", userID, userID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

// Update saves all fields of an activity
func (r *ActivityRepository) Update(activity *models.Activity) error {
	return r.db.Save(activity).Error
}

// Deactivate soft-deletes an activity by flipping its active flag
func (r *ActivityRepository) Deactivate(id uuid.UUID) error {
	res := r.db.Model(&models.Activity{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
