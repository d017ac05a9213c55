package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// User represents a CRM user (salesperson, manager or admin)
type User struct {
	BaseModel
	Name         string          `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string          `json:"email" gorm:"uniqueIndex:idx_users_email_active,where:is_active;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string          `json:"-" gorm:"not null;size:100"`
	Role         UserRole        `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	TeamID       *uuid.UUID      `json:"teamId,omitempty" gorm:"type:uuid;index"`
	Phone        string          `json:"phone" gorm:"size:30"`
	Avatar       string          `json:"avatar" gorm:"size:500"`
	Settings     json.RawMessage `json:"settings,omitempty" gorm:"type:jsonb"`
	IsActive     bool            `json:"isActive" gorm:"default:true"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// UserSettings is the typed shape stored in User.Settings
type UserSettings struct {
	Theme         string               `json:"theme"`
	Language      string               `json:"language"`
	Notifications NotificationSettings `json:"notifications"`
}

// NotificationSettings holds per-channel notification preferences
type NotificationSettings struct {
	Push  bool `json:"push"`
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// DefaultUserSettings returns the settings applied to users who never saved any
func DefaultUserSettings() UserSettings {
	return UserSettings{
		Theme:    "light",
		Language: "en",
		Notifications: NotificationSettings{
			Push:  true,
			Email: true,
			SMS:   false,
		},
	}
}
