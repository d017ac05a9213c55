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

// LeadService handles business logic for leads, including conversion
type LeadService struct {
	repo         repository.LeadRepositoryInterface
	customerRepo repository.CustomerRepositoryInterface
	validator    *validator.Validate
}

// NewLeadService creates a new lead service
func NewLeadService(repo repository.LeadRepositoryInterface, customerRepo repository.CustomerRepositoryInterface, validator *validator.Validate) *LeadService {
	return &LeadService{repo: repo, customerRepo: customerRepo, validator: validator}
}

// CreateLeadRequest represents the request to create a lead
type CreateLeadRequest struct {
	FirstName       string          `json:"firstName" validate:"required,max=100"`
	LastName        string          `json:"lastName" validate:"required,max=100"`
	Email           string          `json:"email" validate:"required,email"`
	Phone           string          `json:"phone,omitempty" validate:"max=30"`
	Company         string          `json:"company,omitempty" validate:"max=200"`
	JobTitle        string          `json:"jobTitle,omitempty" validate:"max=100"`
	Source          string          `json:"source,omitempty"`
	Status          string          `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified unqualified converted lost"`
	Score           int             `json:"score,omitempty" validate:"min=0,max=100"`
	AssignedToID    *uuid.UUID      `json:"assignedTo,omitempty"`
	TeamID          *uuid.UUID      `json:"teamId,omitempty"`
	Tags            json.RawMessage `json:"tags,omitempty"`
	CustomFields    json.RawMessage `json:"customFields,omitempty"`
	NextFollowUp    *time.Time      `json:"nextFollowUp,omitempty"`
	EstimatedValue  float64         `json:"estimatedValue,omitempty" validate:"min=0"`
	Currency        string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	Notes           string          `json:"notes,omitempty" validate:"max=2000"`
}

// UpdateLeadRequest represents a partial update; nil fields are preserved
type UpdateLeadRequest struct {
	FirstName      *string         `json:"firstName,omitempty" validate:"omitempty,min=1,max=100"`
	LastName       *string         `json:"lastName,omitempty" validate:"omitempty,min=1,max=100"`
	Email          *string         `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string         `json:"phone,omitempty" validate:"omitempty,max=30"`
	Company        *string         `json:"company,omitempty" validate:"omitempty,max=200"`
	JobTitle       *string         `json:"jobTitle,omitempty" validate:"omitempty,max=100"`
	Source         *string         `json:"source,omitempty"`
	Status         *string         `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified unqualified converted lost"`
	Score          *int            `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
	AssignedToID   *uuid.UUID      `json:"assignedTo,omitempty"`
	TeamID         *uuid.UUID      `json:"teamId,omitempty"`
	Tags           json.RawMessage `json:"tags,omitempty"`
	CustomFields   json.RawMessage `json:"customFields,omitempty"`
	LastContact    *time.Time      `json:"lastContactDate,omitempty"`
	NextFollowUp   *time.Time      `json:"nextFollowUp,omitempty"`
	EstimatedValue *float64        `json:"estimatedValue,omitempty" validate:"omitempty,min=0"`
	Currency       *string         `json:"currency,omitempty" validate:"omitempty,len=3"`
	Notes          *string         `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ConvertLeadResponse carries both sides of a lead conversion
type ConvertLeadResponse struct {
	Lead     *models.Lead     `json:"lead"`
	Customer *models.Customer `json:"customer"`
}

// Create creates a new lead
func (s *LeadService) Create(req *CreateLeadRequest, callerID uuid.UUID) (*models.Lead, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.LeadStatus(req.Status)
	if status == "" {
		status = models.LeadStatusNew
	}
	source := models.Source(req.Source)
	if source == "" {
		source = models.SourceOther
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	assignedTo := req.AssignedToID
	if assignedTo == nil {
		assignedTo = &callerID
	}

	lead := &models.Lead{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Company:          req.Company,
		JobTitle:         req.JobTitle,
		Source:           source,
		Status:           status,
		Score:            req.Score,
		AssignedToID:     assignedTo,
		TeamID:           req.TeamID,
		Tags:             req.Tags,
		CustomFields:     req.CustomFields,
		NextFollowUpDate: req.NextFollowUp,
		EstimatedValue:   req.EstimatedValue,
		Currency:         currency,
		Notes:            req.Notes,
		IsActive:         true,
	}

	if err := s.repo.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

// GetByID retrieves a lead by ID
func (s *LeadService) GetByID(id uuid.UUID) (*models.Lead, error) {
	lead, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return lead, nil
}

// List retrieves leads matching the filter with pagination
func (s *LeadService) List(filter repository.LeadFilter, page, limit int) ([]models.Lead, *Pagination, error) {
	filter.Limit = limit
	filter.Offset = (page - 1) * limit
	leads, total, err := s.repo.List(filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, NewPagination(page, limit, total), nil
}

// Update applies a partial update to a lead
func (s *LeadService) Update(id uuid.UUID, req *UpdateLeadRequest) (*models.Lead, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	lead, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	if req.FirstName != nil {
		lead.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		lead.LastName = *req.LastName
	}
	if req.Email != nil {
		lead.Email = *req.Email
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Company != nil {
		lead.Company = *req.Company
	}
	if req.JobTitle != nil {
		lead.JobTitle = *req.JobTitle
	}
	if req.Source != nil {
		lead.Source = models.Source(*req.Source)
	}
	if req.Status != nil {
		lead.Status = models.LeadStatus(*req.Status)
	}
	if req.Score != nil {
		lead.Score = *req.Score
	}
	if req.AssignedToID != nil {
		lead.AssignedToID = req.AssignedToID
	}
	if req.TeamID != nil {
		lead.TeamID = req.TeamID
	}
	if req.Tags != nil {
		lead.Tags = req.Tags
	}
	if req.CustomFields != nil {
		lead.CustomFields = req.CustomFields
	}
	if req.LastContact != nil {
		lead.LastContactDate = req.LastContact
	}
	if req.NextFollowUp != nil {
		lead.NextFollowUpDate = req.NextFollowUp
	}
	if req.EstimatedValue != nil {
		lead.EstimatedValue = *req.EstimatedValue
	}
	if req.Currency != nil {
		lead.Currency = *req.Currency
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
	}

	if err := s.repo.Update(lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return lead, nil
}

// Convert turns a lead into a customer. The lead keeps a reference to the
// created customer and cannot be converted twice.
func (s *LeadService) Convert(id uuid.UUID, callerID uuid.UUID) (*ConvertLeadResponse, error) {
	lead, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	if lead.Status == models.LeadStatusConverted || lead.ConvertedToID != nil {
		return nil, apperrors.ErrLeadAlreadyConverted
	}

	salespersonID := lead.AssignedToID
	if salespersonID == nil {
		salespersonID = &callerID
	}

	customer := &models.Customer{
		Name:          lead.FullName(),
		Email:         lead.Email,
		Phone:         lead.Phone,
		Company:       lead.Company,
		SalespersonID: salespersonID,
		TeamID:        lead.TeamID,
		Status:        models.CustomerStatusActive,
		Source:        lead.Source,
		Tags:          lead.Tags,
		CustomFields:  lead.CustomFields,
		Notes:         lead.Notes,
		IsActive:      true,
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer from lead: %w", err)
	}

	now := time.Now()
	lead.Status = models.LeadStatusConverted
	lead.ConversionDate = &now
	lead.ConvertedToID = &customer.ID

	if err := s.repo.Update(lead); err != nil {
		return nil, fmt.Errorf("failed to mark lead converted: %w", err)
	}

	return &ConvertLeadResponse{Lead: lead, Customer: customer}, nil
}

// Delete soft-deletes a lead by clearing its active flag
func (s *LeadService) Delete(id uuid.UUID) error {
	if err := s.repo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeadNotFound
		}
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return nil
}
