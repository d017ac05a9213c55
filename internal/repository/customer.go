package repository

import (
	"calyx-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerFilter narrows customer list queries
type CustomerFilter struct {
	Search        string
	Status        string
	TeamID        *uuid.UUID
	SalespersonID *uuid.UUID
	SortBy        string
	SortOrder     string
	Limit         int
	Offset        int
}

// sortColumns whitelists user-supplied sort fields against real columns
var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
	"name":       "name",
	"email":      "email",
	"company":    "company",
	"status":     "status",
	"totalValue": "total_value",
}

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// GetByID retrieves a customer with salesperson and team preloaded
func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Preload("Salesperson").Preload("Team").First(&customer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// List retrieves active customers matching a filter, with pagination.
// Search matches name, email or company case-insensitively.
func (r *CustomerRepository) List(f CustomerFilter) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64

	query := r.db.Model(&models.Customer{}).Where("is_active = ?", true)
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.TeamID != nil {
		query = query.Where("team_id = ?", *f.TeamID)
	}
	if f.SalespersonID != nil {
		query = query.Where("salesperson_id = ?", *f.SalespersonID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR company ILIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if f.SortOrder == "asc" {
		direction = "ASC"
	}

	err := query.Preload("Salesperson").Preload("Team").
		Order(column + " " + direction).
		Limit(f.Limit).Offset(f.Offset).
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// Update saves all fields of a customer
func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// Deactivate soft-deletes a customer by flipping its active flag
func (r *CustomerRepository) Deactivate(id uuid.UUID) error {
	res := r.db.Model(&models.Customer{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
