package models

import (
	"github.com/google/uuid"
)

// Pipeline is a named, ordered sequence of stages tracking opportunity progress
type Pipeline struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Description string     `json:"description" gorm:"size:500" validate:"max=500"`
	TeamID      *uuid.UUID `json:"teamId,omitempty" gorm:"type:uuid;index"`
	CreatedBy   uuid.UUID  `json:"createdBy" gorm:"type:uuid;not null;index"`
	IsDefault   bool       `json:"isDefault" gorm:"default:false"`
	IsActive    bool       `json:"isActive" gorm:"default:true"`

	Stages  []PipelineStage `json:"stages,omitempty" gorm:"foreignKey:PipelineID;constraint:OnDelete:CASCADE"`
	Team    *Team           `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Creator *User           `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
}

// TableName returns the table name for Pipeline
func (Pipeline) TableName() string {
	return "pipelines"
}

// PipelineStage is a named step within a pipeline carrying a win-probability
type PipelineStage struct {
	BaseModel
	PipelineID  uuid.UUID `json:"pipelineId" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Probability int       `json:"probability" gorm:"not null" validate:"min=0,max=100"`
	Color       string    `json:"color" gorm:"size:20;default:'#2196F3'"`
	SortOrder   int       `json:"order" gorm:"not null"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
}

// TableName returns the table name for PipelineStage
func (PipelineStage) TableName() string {
	return "pipeline_stages"
}
