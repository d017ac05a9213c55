package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a sales team with a manager and a revenue target
type Team struct {
	BaseModel
	Name           string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Description    string    `json:"description" gorm:"size:500" validate:"max=500"`
	ManagerID      uuid.UUID `json:"managerId" gorm:"type:uuid;not null;index" validate:"required"`
	TargetRevenue  float64   `json:"targetRevenue" gorm:"default:0"`
	CurrentRevenue float64   `json:"currentRevenue" gorm:"default:0"`
	IsActive       bool      `json:"isActive" gorm:"default:true"`

	Manager *User        `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember links a user to a team with a team-level role
type TeamMember struct {
	BaseModel
	TeamID   uuid.UUID      `json:"teamId" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_members_team_user" validate:"required"`
	UserID   uuid.UUID      `json:"userId" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_members_team_user" validate:"required"`
	Role     TeamMemberRole `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	JoinedAt time.Time      `json:"joinedAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// TargetCompletion returns the percentage of the revenue target reached
func (t *Team) TargetCompletion() int {
	if t.TargetRevenue == 0 {
		return 0
	}
	return int(t.CurrentRevenue/t.TargetRevenue*100 + 0.5)
}
