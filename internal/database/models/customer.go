package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Customer represents a company or contact owned by a salesperson
type Customer struct {
	BaseModel
	Name          string          `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email         string          `json:"email" gorm:"not null;size:255;index" validate:"required,email,max=255"`
	Phone         string          `json:"phone" gorm:"not null;size:30" validate:"required,max=30"`
	Company       string          `json:"company" gorm:"size:200"`
	Address       json.RawMessage `json:"address,omitempty" gorm:"type:jsonb"`
	SalespersonID *uuid.UUID      `json:"salespersonId,omitempty" gorm:"type:uuid;index"`
	TeamID        *uuid.UUID      `json:"teamId,omitempty" gorm:"type:uuid;index"`
	Status        CustomerStatus  `json:"status" gorm:"type:varchar(20);not null;default:'lead';index"`
	Source        Source          `json:"source" gorm:"type:varchar(30);not null;default:'other'"`
	TotalValue    float64         `json:"totalValue" gorm:"default:0"`
	LastActivity  *time.Time      `json:"lastActivity,omitempty"`
	Tags          json.RawMessage `json:"tags,omitempty" gorm:"type:jsonb"`
	CustomFields  json.RawMessage `json:"customFields,omitempty" gorm:"type:jsonb"`
	Notes         string          `json:"notes"`
	IsActive      bool            `json:"isActive" gorm:"default:true"`

	Salesperson *User `json:"salesperson,omitempty" gorm:"foreignKey:SalespersonID;constraint:OnDelete:SET NULL"`
	Team        *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Customer
func (Customer) TableName() string {
	return "customers"
}

// Address is the typed shape stored in Customer.Address
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

// CustomField is one entry of the jsonb custom field list
type CustomField struct {
	FieldName  string `json:"fieldName"`
	FieldValue string `json:"fieldValue"`
	FieldType  string `json:"fieldType"`
}
