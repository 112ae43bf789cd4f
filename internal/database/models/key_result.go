package models

import (
	"time"

	"github.com/google/uuid"
)

// KeyResult is a measurable target contributing progress to an objective.
// Progress is stored in [0,100] and kept in sync with CurrentValue/TargetValue
// by the update paths; it is also re-derivable via okr.KeyResultProgress.
type KeyResult struct {
	BaseModel
	Title        string    `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	ObjectiveID  uuid.UUID `json:"objective_id" gorm:"type:uuid;not null;index" validate:"required"`
	TargetValue  float64   `json:"target_value" gorm:"not null" validate:"required"`
	CurrentValue float64   `json:"current_value" gorm:"default:0"`
	Progress     int       `json:"progress" gorm:"default:0"`
	DueDate      time.Time `json:"due_date"`

	// Relationships
	Objective       Objective        `json:"objective,omitempty" gorm:"foreignKey:ObjectiveID;constraint:OnDelete:CASCADE"`
	ProgressUpdates []ProgressUpdate `json:"progress_updates,omitempty" gorm:"foreignKey:KeyResultID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for KeyResult
func (KeyResult) TableName() string {
	return "key_results"
}
