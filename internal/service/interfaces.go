package service

import (
	"calyx-crm-backend/internal/database/models"
	"calyx-crm-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the contract for user operations
type UserServiceInterface interface {
	GetByID(id uuid.UUID) (*models.User, error)
	ListActive() ([]models.User, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*models.User, error)
	Deactivate(id uuid.UUID) error
}

// TeamServiceInterface defines the contract for team operations
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest, callerID uuid.UUID) (*models.Team, error)
	GetByID(id uuid.UUID) (*models.Team, error)
	List(isActive bool, page, limit int) ([]models.Team, *Pagination, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*models.Team, error)
	Delete(id uuid.UUID) error
	AddMember(teamID uuid.UUID, req *AddMemberRequest) (*models.TeamMember, error)
	RemoveMember(teamID, memberID uuid.UUID) error
}

// PipelineServiceInterface defines the contract for pipeline operations
type PipelineServiceInterface interface {
	Create(req *CreatePipelineRequest, callerID uuid.UUID) (*models.Pipeline, error)
	GetByID(id uuid.UUID) (*PipelineDetail, error)
	List(isActive bool, page, limit int) ([]models.Pipeline, *Pagination, error)
	Update(id uuid.UUID, req *UpdatePipelineRequest) (*models.Pipeline, error)
	ListOpportunities(id uuid.UUID, stage, status string, page, limit int) ([]models.Opportunity, *Pagination, error)
	Delete(id uuid.UUID) error
	StatsOverview(teamID, salespersonID *uuid.UUID) (*PipelineStatsOverview, error)
}

// CustomerServiceInterface defines the contract for customer operations
type CustomerServiceInterface interface {
	Create(req *CreateCustomerRequest, callerID uuid.UUID) (*models.Customer, error)
	GetByID(id uuid.UUID) (*models.Customer, error)
	List(filter repository.CustomerFilter, page, limit int) ([]models.Customer, *Pagination, error)
	Update(id uuid.UUID, req *UpdateCustomerRequest) (*models.Customer, error)
	Delete(id uuid.UUID) error
}

// LeadServiceInterface defines the contract for lead operations
type LeadServiceInterface interface {
	Create(req *CreateLeadRequest, callerID uuid.UUID) (*models.Lead, error)
	GetByID(id uuid.UUID) (*models.Lead, error)
	List(filter repository.LeadFilter, page, limit int) ([]models.Lead, *Pagination, error)
	Update(id uuid.UUID, req *UpdateLeadRequest) (*models.Lead, error)
	Convert(id uuid.UUID, callerID uuid.UUID) (*ConvertLeadResponse, error)
	Delete(id uuid.UUID) error
}

// OpportunityServiceInterface defines the contract for opportunity operations
type OpportunityServiceInterface interface {
	Create(req *CreateOpportunityRequest, callerID uuid.UUID) (*models.Opportunity, error)
	GetByID(id uuid.UUID) (*models.Opportunity, error)
	List(filter repository.OpportunityFilter, page, limit int) ([]models.Opportunity, *Pagination, error)
	Update(id uuid.UUID, req *UpdateOpportunityRequest, callerID uuid.UUID) (*models.Opportunity, error)
	Delete(id uuid.UUID, callerID uuid.UUID) error
	StatsOverview(callerID uuid.UUID, teamID, salespersonID *uuid.UUID) (*OpportunityStatsOverview, error)
}

// ActivityServiceInterface defines the contract for activity operations
type ActivityServiceInterface interface {
	Create(req *CreateActivityRequest, callerID uuid.UUID) (*models.Activity, error)
	GetByID(id uuid.UUID) (*models.Activity, error)
	List(filter repository.ActivityFilter, page, limit int) ([]models.Activity, *Pagination, error)
	Update(id uuid.UUID, req *UpdateActivityRequest) (*models.Activity, error)
	Delete(id uuid.UUID) error
}

// DashboardServiceInterface defines the contract for dashboard aggregation
type DashboardServiceInterface interface {
	Overview(userID uuid.UUID) (*DashboardOverview, error)
	RecentActivities(userID uuid.UUID, limit int) ([]models.Activity, error)
}

// ForecastServiceInterface defines the contract for revenue forecasting
type ForecastServiceInterface interface {
	Overview(teamID, salespersonID *uuid.UUID) (*ForecastOverview, error)
}

// SettingsServiceInterface defines the contract for user settings
type SettingsServiceInterface interface {
	Get(userID uuid.UUID) (*models.UserSettings, error)
	Update(userID uuid.UUID, req *UpdateSettingsRequest) (*models.UserSettings, error)
	UpdateTheme(userID uuid.UUID, req *UpdateThemeRequest) (*models.UserSettings, error)
	UpdateNotifications(userID uuid.UUID, req *UpdateNotificationsRequest) (*models.UserSettings, error)
}
