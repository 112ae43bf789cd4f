package repository

import (
	"okr-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KeyResultRepository handles database operations for key results
type KeyResultRepository struct {
	db *gorm.DB
}

// NewKeyResultRepository creates a new key result repository
func NewKeyResultRepository(db *gorm.DB) *KeyResultRepository {
	return &KeyResultRepository{db: db}
}

// Create creates a new key result
func (r *KeyResultRepository) Create(keyResult *models.KeyResult) error {
	return r.db.Create(keyResult).Error
}

// GetByID retrieves a key result by ID
func (r *KeyResultRepository) GetByID(id uuid.UUID) (*models.KeyResult, error) {
	var keyResult models.KeyResult
	err := r.db.First(&keyResult, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &keyResult, nil
}

// GetWithObjective retrieves a key result with its objective preloaded
func (r *KeyResultRepository) GetWithObjective(id uuid.UUID) (*models.KeyResult, error) {
	var keyResult models.KeyResult
	err := r.db.Preload("Objective").First(&keyResult, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &keyResult, nil
}

// GetByObjectiveID retrieves all key results of an objective
func (r *KeyResultRepository) GetByObjectiveID(objectiveID uuid.UUID) ([]models.KeyResult, error) {
	var keyResults []models.KeyResult
	err := r.db.Where("objective_id = ?", objectiveID).Order("due_date").Find(&keyResults).Error
	return keyResults, err
}

// Update updates a key result
func (r *KeyResultRepository) Update(keyResult *models.KeyResult) error {
	return r.db.Save(keyResult).Error
}

// Delete deletes a key result
func (r *KeyResultRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.KeyResult{}, "id = ?", id).Error
}

// GetAllProgress returns the progress value of every key result system-wide,
// feeding the dashboard's overall average and health score
func (r *KeyResultRepository) GetAllProgress() ([]int, error) {
	var values []int
	err := r.db.Model(&models.KeyResult{}).Pluck("progress", &values).Error
	return values, err
}
