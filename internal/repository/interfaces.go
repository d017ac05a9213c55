package repository

import (
	"time"

	"calyx-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetActive() ([]models.User, error)
	Update(user *models.User) error
	Deactivate(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	List(isActive bool, limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Deactivate(id uuid.UUID) error
	AddMember(member *models.TeamMember) error
	RemoveMember(teamID, memberID uuid.UUID) error
	HasMember(teamID, userID uuid.UUID) (bool, error)
}

// PipelineRepositoryInterface defines the interface for pipeline repository operations
type PipelineRepositoryInterface interface {
	Create(pipeline *models.Pipeline) error
	GetByID(id uuid.UUID) (*models.Pipeline, error)
	GetWithCreator(id uuid.UUID) (*models.Pipeline, error)
	List(isActive bool, limit, offset int) ([]models.Pipeline, int64, error)
	Update(pipeline *models.Pipeline) error
	ReplaceStages(pipelineID uuid.UUID, stages []models.PipelineStage) error
	Delete(id uuid.UUID) error
}

// CustomerRepositoryInterface defines the interface for customer repository operations
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByID(id uuid.UUID) (*models.Customer, error)
	List(f CustomerFilter) ([]models.Customer, int64, error)
	Update(customer *models.Customer) error
	Deactivate(id uuid.UUID) error
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	GetByID(id uuid.UUID) (*models.Lead, error)
	List(f LeadFilter) ([]models.Lead, int64, error)
	Update(lead *models.Lead) error
	Deactivate(id uuid.UUID) error
}

// OpportunityRepositoryInterface defines the interface for opportunity repository operations
type OpportunityRepositoryInterface interface {
	Create(opp *models.Opportunity) error
	GetByID(id uuid.UUID) (*models.Opportunity, error)
	GetWithRelations(id uuid.UUID) (*models.Opportunity, error)
	List(f OpportunityFilter) ([]models.Opportunity, int64, error)
	ListOpenByCloseDate(f OpportunityFilter) ([]models.Opportunity, error)
	Update(opp *models.Opportunity) error
	Delete(id uuid.UUID) error
	Count(f OpportunityFilter) (int64, error)
	CountByPipeline(pipelineID uuid.UUID) (int64, error)
	CountClosingBetween(f OpportunityFilter, from, to time.Time) (int64, error)
	SumValues(f OpportunityFilter) (totalValue, weightedValue float64, err error)
	StageStats(f OpportunityFilter) ([]StageStat, error)
	StatusStats(f OpportunityFilter) ([]StatusStat, error)
}

// ActivityRepositoryInterface defines the interface for activity repository operations
type ActivityRepositoryInterface interface {
	Create(activity *models.Activity) error
	GetByID(id uuid.UUID) (*models.Activity, error)
	List(f ActivityFilter) ([]models.Activity, int64, error)
	CountPendingForUser(userID uuid.UUID) (int64, error)
	RecentForUser(userID uuid.UUID, limit int) ([]models.Activity, error)
	Update(activity *models.Activity) error
	Deactivate(id uuid.UUID) error
}
