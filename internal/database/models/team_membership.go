package models

import (
	"github.com/google/uuid"
)

// MembershipRole represents the role a user holds inside a team,
// independently of their platform-wide role
type MembershipRole string

const (
	MembershipRoleManager MembershipRole = "MANAGER"
	MembershipRoleMember  MembershipRole = "MEMBER"
)

// TeamMembership joins users to teams. A team conventionally has at most
// one manager membership; this is not enforced at the database level.
type TeamMembership struct {
	BaseModel
	TeamID uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_user" validate:"required"`
	UserID uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_user" validate:"required"`
	Role   MembershipRole `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}
