package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Activity is a typed task or interaction scheduled against a customer,
// opportunity or team.
type Activity struct {
	BaseModel
	Type           ActivityType     `json:"type" gorm:"type:varchar(20);not null;index" validate:"required"`
	Subject        string           `json:"subject" gorm:"not null;size:200" validate:"required,max=200"`
	Description    string           `json:"description"`
	CustomerID     *uuid.UUID       `json:"customerId,omitempty" gorm:"type:uuid;index"`
	OpportunityID  *uuid.UUID       `json:"opportunityId,omitempty" gorm:"type:uuid;index"`
	AssignedToID   uuid.UUID        `json:"assignedToId" gorm:"type:uuid;not null;index" validate:"required"`
	TeamID         *uuid.UUID       `json:"teamId,omitempty" gorm:"type:uuid;index"`
	Status         ActivityStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Priority       ActivityPriority `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`
	DueDate        *time.Time       `json:"dueDate,omitempty" gorm:"index"`
	CompletedDate  *time.Time       `json:"completedDate,omitempty"`
	Duration       int              `json:"duration"` // minutes
	Location       string           `json:"location" gorm:"size:200"`
	Outcome        string           `json:"outcome" gorm:"size:500"`
	NextAction     string           `json:"nextAction" gorm:"size:500"`
	NextActionDate *time.Time       `json:"nextActionDate,omitempty"`
	Tags           json.RawMessage  `json:"tags,omitempty" gorm:"type:jsonb"`
	IsRecurring    bool             `json:"isRecurring" gorm:"default:false"`
	RecurringPattern json.RawMessage `json:"recurringPattern,omitempty" gorm:"type:jsonb"`
	CreatedBy      uuid.UUID        `json:"createdBy" gorm:"type:uuid;not null;index"`
	IsActive       bool             `json:"isActive" gorm:"default:true"`

	Customer    *Customer    `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	Opportunity *Opportunity `json:"opportunity,omitempty" gorm:"foreignKey:OpportunityID;constraint:OnDelete:SET NULL"`
	AssignedTo  *User        `json:"assignedTo,omitempty" gorm:"foreignKey:AssignedToID"`
	Team        *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "activities"
}

// RecurringPattern is the typed shape stored in Activity.RecurringPattern
type RecurringPattern struct {
	Frequency string     `json:"frequency"` // daily, weekly, monthly, yearly
	Interval  int        `json:"interval"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// IsOverdue reports whether a pending activity is past its due date
func (a *Activity) IsOverdue() bool {
	return a.Status == ActivityStatusPending && a.DueDate != nil && time.Now().After(*a.DueDate)
}
