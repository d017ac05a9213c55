package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Lead represents a pre-qualification prospect, distinct from a Customer
type Lead struct {
	BaseModel
	FirstName        string          `json:"firstName" gorm:"not null;size:50" validate:"required,max=50"`
	LastName         string          `json:"lastName" gorm:"not null;size:50" validate:"required,max=50"`
	Email            string          `json:"email" gorm:"not null;size:255;index" validate:"required,email,max=255"`
	Phone            string          `json:"phone" gorm:"size:30"`
	Company          string          `json:"company" gorm:"size:200"`
	JobTitle         string          `json:"jobTitle" gorm:"size:100"`
	Source           Source          `json:"source" gorm:"type:varchar(30);not null;default:'other';index"`
	Status           LeadStatus      `json:"status" gorm:"type:varchar(20);not null;default:'new';index"`
	Score            int             `json:"score" gorm:"default:0" validate:"min=0,max=100"`
	AssignedToID     *uuid.UUID      `json:"assignedToId,omitempty" gorm:"type:uuid;index"`
	TeamID           *uuid.UUID      `json:"teamId,omitempty" gorm:"type:uuid;index"`
	Tags             json.RawMessage `json:"tags,omitempty" gorm:"type:jsonb"`
	CustomFields     json.RawMessage `json:"customFields,omitempty" gorm:"type:jsonb"`
	Notes            string          `json:"notes"`
	LastContactDate  *time.Time      `json:"lastContactDate,omitempty"`
	NextFollowUpDate *time.Time      `json:"nextFollowUpDate,omitempty"`
	ExpectedCloseDate *time.Time     `json:"expectedCloseDate,omitempty"`
	EstimatedValue   float64         `json:"estimatedValue" gorm:"default:0"`
	Currency         string          `json:"currency" gorm:"size:10;default:'USD'"`
	ConversionDate   *time.Time      `json:"conversionDate,omitempty"`
	ConvertedToID    *uuid.UUID      `json:"convertedToId,omitempty" gorm:"type:uuid"`
	IsActive         bool            `json:"isActive" gorm:"default:true"`

	AssignedTo  *User     `json:"assignedTo,omitempty" gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
	Team        *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	ConvertedTo *Customer `json:"convertedTo,omitempty" gorm:"foreignKey:ConvertedToID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

// FullName returns the lead's first and last name joined
func (l *Lead) FullName() string {
	return l.FirstName + " " + l.LastName
}
