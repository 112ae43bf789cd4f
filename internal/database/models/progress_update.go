package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressUpdate is an append-only log entry recording a single change to a
// key result's current value. Rows are never updated or deleted; the key
// result itself is mutated separately by the caller.
type ProgressUpdate struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	KeyResultID uuid.UUID `json:"key_result_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	NewValue    float64   `json:"new_value" gorm:"not null"`
	Comment     string    `json:"comment" gorm:"size:500" validate:"max=500"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`

	// Relationships
	KeyResult KeyResult `json:"key_result,omitempty" gorm:"foreignKey:KeyResultID;constraint:OnDelete:CASCADE"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets the UUID if not already set
func (p *ProgressUpdate) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for ProgressUpdate
func (ProgressUpdate) TableName() string {
	return "progress_updates"
}
