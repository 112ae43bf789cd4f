package repository

import (
	"okr-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ObjectiveRepository handles database operations for objectives
type ObjectiveRepository struct {
	db *gorm.DB
}

// NewObjectiveRepository creates a new objective repository
func NewObjectiveRepository(db *gorm.DB) *ObjectiveRepository {
	return &ObjectiveRepository{db: db}
}

// Create creates a new objective
func (r *ObjectiveRepository) Create(objective *models.Objective) error {
	return r.db.Create(objective).Error
}

// GetByID retrieves an objective by ID
func (r *ObjectiveRepository) GetByID(id uuid.UUID) (*models.Objective, error) {
	var objective models.Objective
	err := r.db.First(&objective, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &objective, nil
}

// GetWithKeyResults retrieves an objective with key results, its team and
// the team's memberships preloaded
func (r *ObjectiveRepository) GetWithKeyResults(id uuid.UUID) (*models.Objective, error) {
	var objective models.Objective
	err := r.db.
		Preload("KeyResults").
		Preload("Team").
		Preload("Team.Memberships").
		Preload("Team.Memberships.User").
		First(&objective, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &objective, nil
}

// GetByTeamID retrieves all objectives of a team with key results preloaded
func (r *ObjectiveRepository) GetByTeamID(teamID uuid.UUID) ([]models.Objective, error) {
	var objectives []models.Objective
	err := r.db.Preload("KeyResults").
		Where("team_id = ?", teamID).
		Order("due_date").
		Find(&objectives).Error
	return objectives, err
}

// GetByTeamIDs retrieves objectives across several teams with key results and
// team preloaded
func (r *ObjectiveRepository) GetByTeamIDs(teamIDs []uuid.UUID) ([]models.Objective, error) {
	if len(teamIDs) == 0 {
		return []models.Objective{}, nil
	}
	var objectives []models.Objective
	err := r.db.Preload("KeyResults").Preload("Team").
		Where("team_id IN ?", teamIDs).
		Order("due_date").
		Find(&objectives).Error
	return objectives, err
}

// Update updates an objective
func (r *ObjectiveRepository) Update(objective *models.Objective) error {
	return r.db.Save(objective).Error
}

// Delete deletes an objective; its key results follow via cascade rules
func (r *ObjectiveRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Objective{}, "id = ?", id).Error
}

// CountByStatus returns the number of objectives in a given stored status
func (r *ObjectiveRepository) CountByStatus(status models.ObjectiveStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Objective{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
