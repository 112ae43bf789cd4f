package repository

import (
	"okr-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with pagination
func (r *TeamRepository) GetAll(limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	if err := r.db.Model(&models.Team{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team; memberships, objectives and their key results
// follow via cascade rules
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// GetWithObjectives retrieves a team with objectives and their key results
func (r *TeamRepository) GetWithObjectives(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Objectives").Preload("Objectives.KeyResults").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAllWithObjectives retrieves every team with objectives and key results
// preloaded, for the overview and dashboard aggregations
func (r *TeamRepository) GetAllWithObjectives() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Objectives").Preload("Objectives.KeyResults").Order("name").Find(&teams).Error
	return teams, err
}

// GetWithMembers retrieves a team with its memberships and user records
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Memberships").Preload("Memberships.User").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetManager returns the user holding the manager membership of a team
func (r *TeamRepository) GetManager(teamID uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.
		Joins("JOIN team_memberships ON team_memberships.user_id = users.id").
		Where("team_memberships.team_id = ? AND team_memberships.role = ?", teamID, models.MembershipRoleManager).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CountMembers returns the number of memberships in a team
func (r *TeamRepository) CountMembers(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMembership{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// CountActiveObjectives returns the number of active objectives owned by a team
func (r *TeamRepository) CountActiveObjectives(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Objective{}).
		Where("team_id = ? AND status = ?", teamID, models.ObjectiveStatusActive).
		Count(&count).Error
	return count, err
}

// GetManagedBy returns the teams where the user holds the manager membership,
// with objectives and key results preloaded
func (r *TeamRepository) GetManagedBy(userID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Preload("Objectives").Preload("Objectives.KeyResults").
		Joins("JOIN team_memberships ON team_memberships.team_id = teams.id").
		Where("team_memberships.user_id = ? AND team_memberships.role = ?", userID, models.MembershipRoleManager).
		Order("teams.name").
		Find(&teams).Error
	return teams, err
}

// GetForUser returns every team the user belongs to, with objectives and key
// results preloaded
func (r *TeamRepository) GetForUser(userID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Preload("Objectives").Preload("Objectives.KeyResults").
		Joins("JOIN team_memberships ON team_memberships.team_id = teams.id").
		Where("team_memberships.user_id = ?", userID).
		Order("teams.name").
		Find(&teams).Error
	return teams, err
}

// CountAll returns the total number of teams
func (r *TeamRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Count(&count).Error
	return count, err
}
