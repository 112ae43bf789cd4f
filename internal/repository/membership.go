package repository

import (
	"okr-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for team memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.TeamMembership) error {
	return r.db.Create(membership).Error
}

// GetByTeamAndUser retrieves the membership joining a user to a team
func (r *MembershipRepository) GetByTeamAndUser(teamID, userID uuid.UUID) (*models.TeamMembership, error) {
	var membership models.TeamMembership
	err := r.db.First(&membership, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// Delete removes a user from a team
func (r *MembershipRepository) Delete(teamID, userID uuid.UUID) error {
	return r.db.Delete(&models.TeamMembership{}, "team_id = ? AND user_id = ?", teamID, userID).Error
}

// GetTeamIDsForUser returns the IDs of every team the user belongs to
func (r *MembershipRepository) GetTeamIDsForUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.TeamMembership{}).
		Where("user_id = ?", userID).
		Pluck("team_id", &ids).Error
	return ids, err
}

// HasManagedTeamWithActiveObjectives reports whether the user holds a manager
// membership on a team that still has active objectives. Used by the admin
// user-delete guard.
func (r *MembershipRepository) HasManagedTeamWithActiveObjectives(userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMembership{}).
		Joins("JOIN objectives ON objectives.team_id = team_memberships.team_id").
		Where("team_memberships.user_id = ? AND team_memberships.role = ? AND objectives.status = ?",
			userID, models.MembershipRoleManager, models.ObjectiveStatusActive).
		Count(&count).Error
	return count > 0, err
}
