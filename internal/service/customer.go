package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"calyx-crm-backend/internal/database/models"
	apperrors "calyx-crm-backend/internal/errors"
	"calyx-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerService handles business logic for customers
type CustomerService struct {
	repo      repository.CustomerRepositoryInterface
	validator *validator.Validate
}

// NewCustomerService creates a new customer service
func NewCustomerService(repo repository.CustomerRepositoryInterface, validator *validator.Validate) *CustomerService {
	return &CustomerService{repo: repo, validator: validator}
}

// CreateCustomerRequest represents the request to create a customer
type CreateCustomerRequest struct {
	Name          string          `json:"name" validate:"required,max=200"`
	Email         string          `json:"email" validate:"required,email"`
	Phone         string          `json:"phone" validate:"required,max=30"`
	Company       string          `json:"company,omitempty" validate:"max=200"`
	Address       json.RawMessage `json:"address,omitempty"`
	SalespersonID *uuid.UUID      `json:"salespersonId,omitempty"`
	TeamID        *uuid.UUID      `json:"teamId,omitempty"`
	Status        string          `json:"status,omitempty" validate:"omitempty,oneof=lead prospect active inactive"`
	Source        string          `json:"source,omitempty"`
	Tags          json.RawMessage `json:"tags,omitempty"`
	CustomFields  json.RawMessage `json:"customFields,omitempty"`
	Notes         string          `json:"notes,omitempty" validate:"max=2000"`
}

// UpdateCustomerRequest represents a partial update; nil fields are preserved
type UpdateCustomerRequest struct {
	Name          *string         `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email         *string         `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string         `json:"phone,omitempty" validate:"omitempty,max=30"`
	Company       *string         `json:"company,omitempty" validate:"omitempty,max=200"`
	Address       json.RawMessage `json:"address,omitempty"`
	SalespersonID *uuid.UUID      `json:"salespersonId,omitempty"`
	TeamID        *uuid.UUID      `json:"teamId,omitempty"`
	Status        *string         `json:"status,omitempty" validate:"omitempty,oneof=lead prospect active inactive"`
	Source        *string         `json:"source,omitempty"`
	Tags          json.RawMessage `json:"tags,omitempty"`
	CustomFields  json.RawMessage `json:"customFields,omitempty"`
	Notes         *string         `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// Create creates a new customer
func (s *CustomerService) Create(req *CreateCustomerRequest, callerID uuid.UUID) (*models.Customer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.CustomerStatus(req.Status)
	if status == "" {
		status = models.CustomerStatusLead
	}
	source := models.Source(req.Source)
	if source == "" {
		source = models.SourceOther
	}
	salespersonID := req.SalespersonID
	if salespersonID == nil {
		salespersonID = &callerID
	}

	customer := &models.Customer{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		Address:       req.Address,
		SalespersonID: salespersonID,
		TeamID:        req.TeamID,
		Status:        status,
		Source:        source,
		Tags:          req.Tags,
		CustomFields:  req.CustomFields,
		Notes:         req.Notes,
		IsActive:      true,
	}

	if err := s.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(id uuid.UUID) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// List retrieves customers matching the filter with pagination
func (s *CustomerService) List(filter repository.CustomerFilter, page, limit int) ([]models.Customer, *Pagination, error) {
	filter.Limit = limit
	filter.Offset = (page - 1) * limit
	customers, total, err := s.repo.List(filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, NewPagination(page, limit, total), nil
}

// Update applies a partial update to a customer
func (s *CustomerService) Update(id uuid.UUID, req *UpdateCustomerRequest) (*models.Customer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	customer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Company != nil {
		customer.Company = *req.Company
	}
	if req.Address != nil {
		customer.Address = req.Address
	}
	if req.SalespersonID != nil {
		customer.SalespersonID = req.SalespersonID
	}
	if req.TeamID != nil {
		customer.TeamID = req.TeamID
	}
	if req.Status != nil {
		customer.Status = models.CustomerStatus(*req.Status)
	}
	if req.Source != nil {
		customer.Source = models.Source(*req.Source)
	}
	if req.Tags != nil {
		customer.Tags = req.Tags
	}
	if req.CustomFields != nil {
		customer.CustomFields = req.CustomFields
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if err := s.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

// Delete soft-deletes a customer by clearing its active flag
func (s *CustomerService) Delete(id uuid.UUID) error {
	if err := s.repo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
