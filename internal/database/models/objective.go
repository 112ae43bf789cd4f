package models

import (
	"time"

	"github.com/google/uuid"
)

// ObjectiveStatus is the stored, denormalized status of an objective.
// It is set by explicit updates and is not recomputed when key results
// change; derived views report a computed status alongside it.
type ObjectiveStatus string

const (
	ObjectiveStatusActive    ObjectiveStatus = "ACTIVE"
	ObjectiveStatusCompleted ObjectiveStatus = "COMPLETED"
	ObjectiveStatusArchived  ObjectiveStatus = "ARCHIVED"
)

// Objective is a goal owned by exactly one team, tracked via key results
type Objective struct {
	BaseModel
	Title       string          `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string          `json:"description" gorm:"size:1000" validate:"max=1000"`
	TeamID      uuid.UUID       `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status      ObjectiveStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	DueDate     time.Time       `json:"due_date"`

	// Relationships
	Team       Team        `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	KeyResults []KeyResult `json:"key_results,omitempty" gorm:"foreignKey:ObjectiveID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Objective
func (Objective) TableName() string {
	return "objectives"
}
