package repository

import (
	"time"

	"okr-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressUpdateRepository handles the append-only progress update log.
// Rows are only ever inserted and read.
type ProgressUpdateRepository struct {
	db *gorm.DB
}

// NewProgressUpdateRepository creates a new progress update repository
func NewProgressUpdateRepository(db *gorm.DB) *ProgressUpdateRepository {
	return &ProgressUpdateRepository{db: db}
}

// Create appends a progress update row
func (r *ProgressUpdateRepository) Create(update *models.ProgressUpdate) error {
	return r.db.Create(update).Error
}

// CountSince returns the number of updates created after the given instant
func (r *ProgressUpdateRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProgressUpdate{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

// CountDistinctUsersSince returns how many distinct users logged an update
// after the given instant
func (r *ProgressUpdateRepository) CountDistinctUsersSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProgressUpdate{}).
		Where("created_at >= ?", since).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

// GetRecentByUser returns the newest updates logged by a user, with the key
// result preloaded
func (r *ProgressUpdateRepository) GetRecentByUser(userID uuid.UUID, limit int) ([]models.ProgressUpdate, error) {
	var updates []models.ProgressUpdate
	err := r.db.Preload("KeyResult").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&updates).Error
	return updates, err
}

// CountForTeamsSince returns the number of updates against key results
// belonging to the given teams after the given instant
func (r *ProgressUpdateRepository) CountForTeamsSince(teamIDs []uuid.UUID, since time.Time) (int64, error) {
	if len(teamIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.ProgressUpdate{}).
		Joins("JOIN key_results ON key_results.id = progress_updates.key_result_id").
		Joins("JOIN objectives ON objectives.id = key_results.objective_id").
		Where("objectives.team_id IN ? AND progress_updates.created_at >= ?", teamIDs, since).
		Count(&count).Error
	return count, err
}

// GetRecentForTeams returns the newest updates against key results belonging
// to the given teams, with key result and author preloaded
func (r *ProgressUpdateRepository) GetRecentForTeams(teamIDs []uuid.UUID, limit int) ([]models.ProgressUpdate, error) {
	if len(teamIDs) == 0 {
		return []models.ProgressUpdate{}, nil
	}
	var updates []models.ProgressUpdate
	err := r.db.Preload("KeyResult").Preload("User").
		Joins("JOIN key_results ON key_results.id = progress_updates.key_result_id").
		Joins("JOIN objectives ON objectives.id = key_results.objective_id").
		Where("objectives.team_id IN ?", teamIDs).
		Order("progress_updates.created_at DESC").
		Limit(limit).
		Find(&updates).Error
	return updates, err
}
