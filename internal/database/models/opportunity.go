package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Opportunity is a tracked potential sale with monetary value and a
// probability of closing cached from its pipeline stage.
type Opportunity struct {
	BaseModel
	Title             string            `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	CustomerID        uuid.UUID         `json:"customerId" gorm:"type:uuid;not null;index" validate:"required"`
	PipelineID        uuid.UUID         `json:"pipelineId" gorm:"type:uuid;not null;index:idx_opportunities_pipeline_stage" validate:"required"`
	Stage             string            `json:"stage" gorm:"not null;size:100;index:idx_opportunities_pipeline_stage" validate:"required"`
	Value             float64           `json:"value" gorm:"not null" validate:"min=0"`
	Currency          string            `json:"currency" gorm:"size:10;default:'USD'"`
	Probability       int               `json:"probability" gorm:"not null;default:0" validate:"min=0,max=100"`
	ExpectedCloseDate *time.Time        `json:"expectedCloseDate,omitempty" gorm:"index"`
	ActualCloseDate   *time.Time        `json:"actualCloseDate,omitempty"`
	SalespersonID     uuid.UUID         `json:"salespersonId" gorm:"type:uuid;not null;index" validate:"required"`
	TeamID            *uuid.UUID        `json:"teamId,omitempty" gorm:"type:uuid;index"`
	Source            Source            `json:"source" gorm:"type:varchar(30);not null;default:'other'"`
	Tags              json.RawMessage   `json:"tags,omitempty" gorm:"type:jsonb"`
	Description       string            `json:"description"`
	Status            OpportunityStatus `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	LostReason        string            `json:"lostReason,omitempty" gorm:"size:500"`
	Notes             string            `json:"notes"`
	CreatedBy         uuid.UUID         `json:"createdBy" gorm:"type:uuid;not null;index"`
	IsActive          bool              `json:"isActive" gorm:"default:true"`

	Customer    *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Pipeline    *Pipeline `json:"pipeline,omitempty" gorm:"foreignKey:PipelineID"`
	Salesperson *User     `json:"salesperson,omitempty" gorm:"foreignKey:SalespersonID"`
	Team        *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Opportunity
func (Opportunity) TableName() string {
	return "opportunities"
}

// WeightedValue returns value * probability / 100, the expected-revenue
// estimate. Exact rational result; rounding happens at the response boundary.
func (o *Opportunity) WeightedValue() float64 {
	return o.Value * float64(o.Probability) / 100
}

// IsOwnedBy reports whether the given user may mutate this opportunity
func (o *Opportunity) IsOwnedBy(userID uuid.UUID) bool {
	return o.SalespersonID == userID || o.CreatedBy == userID
}
