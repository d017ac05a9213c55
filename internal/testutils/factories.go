package testutils

import (
	"time"

	"calyx-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "Jordan Reyes",
		Email: "jordan." + id.String()[:8] + "@test.com",
		// bcrypt hash of "password123"
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMye1J9GJb6cHpVvJ0sU8rM0nS3f9G06W6a",
		Role:         models.UserRoleUser,
		IsActive:     true,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithTeam sets the team ID for the user
func (f *UserFactory) WithTeam(teamID uuid.UUID) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team managed by the given user
func (f *TeamFactory) Create(managerID uuid.UUID) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:          "West Coast Sales",
		Description:   "Test sales team",
		ManagerID:     managerID,
		TargetRevenue: 500000,
		IsActive:      true,
	}
}

// PipelineFactory provides methods to create test Pipeline data
type PipelineFactory struct{}

// NewPipelineFactory creates a new PipelineFactory
func NewPipelineFactory() *PipelineFactory {
	return &PipelineFactory{}
}

// Create creates a test Pipeline with the standard five stages
func (f *PipelineFactory) Create(createdBy uuid.UUID) *models.Pipeline {
	return &models.Pipeline{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Standard Sales Pipeline",
		CreatedBy: createdBy,
		IsDefault: true,
		IsActive:  true,
		Stages: []models.PipelineStage{
			{Name: "Prospecting", Probability: 10, Color: "#9E9E9E", SortOrder: 1, IsActive: true},
			{Name: "Qualification", Probability: 25, Color: "#2196F3", SortOrder: 2, IsActive: true},
			{Name: "Proposal", Probability: 50, Color: "#FF9800", SortOrder: 3, IsActive: true},
			{Name: "Negotiation", Probability: 75, Color: "#FFC107", SortOrder: 4, IsActive: true},
			{Name: "Closed Won", Probability: 100, Color: "#4CAF50", SortOrder: 5, IsActive: true},
		},
	}
}

// CustomerFactory provides methods to create test Customer data
type CustomerFactory struct{}

// NewCustomerFactory creates a new CustomerFactory
func NewCustomerFactory() *CustomerFactory {
	return &CustomerFactory{}
}

// Create creates a test Customer with default values
func (f *CustomerFactory) Create() *models.Customer {
	id := uuid.New()
	return &models.Customer{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Acme Industries",
		Email:    "contact." + id.String()[:8] + "@acme.test",
		Phone:    "+1-555-0100",
		Company:  "Acme Industries",
		Status:   models.CustomerStatusActive,
		Source:   models.SourceReferral,
		IsActive: true,
	}
}

// WithSalesperson sets the salesperson for the customer
func (f *CustomerFactory) WithSalesperson(userID uuid.UUID) *models.Customer {
	customer := f.Create()
	customer.SalespersonID = &userID
	return customer
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values
func (f *LeadFactory) Create() *models.Lead {
	id := uuid.New()
	return &models.Lead{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:      "Dana",
		LastName:       "Whitfield",
		Email:          "dana." + id.String()[:8] + "@lead.test",
		Company:        "Whitfield Logistics",
		Source:         models.SourceWebsite,
		Status:         models.LeadStatusNew,
		Score:          40,
		EstimatedValue: 25000,
		Currency:       "USD",
		IsActive:       true,
	}
}

// OpportunityFactory provides methods to create test Opportunity data
type OpportunityFactory struct{}

// NewOpportunityFactory creates a new OpportunityFactory
func NewOpportunityFactory() *OpportunityFactory {
	return &OpportunityFactory{}
}

// Create creates a test Opportunity in the given pipeline
func (f *OpportunityFactory) Create(customerID, pipelineID, salespersonID uuid.UUID) *models.Opportunity {
	closeDate := time.Now().AddDate(0, 0, 14)
	return &models.Opportunity{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:             "Annual license renewal",
		CustomerID:        customerID,
		PipelineID:        pipelineID,
		Stage:             "Qualification",
		Value:             1000,
		Currency:          "USD",
		Probability:       25,
		ExpectedCloseDate: &closeDate,
		SalespersonID:     salespersonID,
		Source:            models.SourceReferral,
		Status:            models.OpportunityStatusOpen,
		CreatedBy:         salespersonID,
		IsActive:          true,
	}
}

// ActivityFactory provides methods to create test Activity data
type ActivityFactory struct{}

// NewActivityFactory creates a new ActivityFactory
func NewActivityFactory() *ActivityFactory {
	return &ActivityFactory{}
}

// Create creates a test Activity assigned to the given user
func (f *ActivityFactory) Create(assignedTo uuid.UUID) *models.Activity {
	due := time.Now().AddDate(0, 0, 2)
	return &models.Activity{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Type:         models.ActivityTypeCall,
		Subject:      "Intro call",
		AssignedToID: assignedTo,
		Status:       models.ActivityStatusPending,
		Priority:     models.ActivityPriorityMedium,
		DueDate:      &due,
		CreatedBy:    assignedTo,
		IsActive:     true,
	}
}
