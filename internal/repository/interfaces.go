package repository

import (
	"time"

	"okr-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	UpdateRole(id uuid.UUID, role models.UserRole) error
	Delete(id uuid.UUID) error
	CountByRole(role models.UserRole) (int64, error)
	CountAll() (int64, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	GetWithObjectives(id uuid.UUID) (*models.Team, error)
	GetAllWithObjectives() ([]models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetManager(teamID uuid.UUID) (*models.User, error)
	CountMembers(teamID uuid.UUID) (int64, error)
	CountActiveObjectives(teamID uuid.UUID) (int64, error)
	GetManagedBy(userID uuid.UUID) ([]models.Team, error)
	GetForUser(userID uuid.UUID) ([]models.Team, error)
	CountAll() (int64, error)
}

// MembershipRepositoryInterface defines the interface for team membership operations
type MembershipRepositoryInterface interface {
	Create(membership *models.TeamMembership) error
	GetByTeamAndUser(teamID, userID uuid.UUID) (*models.TeamMembership, error)
	Delete(teamID, userID uuid.UUID) error
	GetTeamIDsForUser(userID uuid.UUID) ([]uuid.UUID, error)
	HasManagedTeamWithActiveObjectives(userID uuid.UUID) (bool, error)
}

// ObjectiveRepositoryInterface defines the interface for objective repository operations
type ObjectiveRepositoryInterface interface {
	Create(objective *models.Objective) error
	GetByID(id uuid.UUID) (*models.Objective, error)
	GetWithKeyResults(id uuid.UUID) (*models.Objective, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Objective, error)
	GetByTeamIDs(teamIDs []uuid.UUID) ([]models.Objective, error)
	Update(objective *models.Objective) error
	Delete(id uuid.UUID) error
	CountByStatus(status models.ObjectiveStatus) (int64, error)
}

// KeyResultRepositoryInterface defines the interface for key result repository operations
type KeyResultRepositoryInterface interface {
	Create(keyResult *models.KeyResult) error
	GetByID(id uuid.UUID) (*models.KeyResult, error)
	GetWithObjective(id uuid.UUID) (*models.KeyResult, error)
	GetByObjectiveID(objectiveID uuid.UUID) ([]models.KeyResult, error)
	Update(keyResult *models.KeyResult) error
	Delete(id uuid.UUID) error
	GetAllProgress() ([]int, error)
}

// ProgressUpdateRepositoryInterface defines the interface for the append-only update log
type ProgressUpdateRepositoryInterface interface {
	Create(update *models.ProgressUpdate) error
	CountSince(since time.Time) (int64, error)
	CountDistinctUsersSince(since time.Time) (int64, error)
	CountForTeamsSince(teamIDs []uuid.UUID, since time.Time) (int64, error)
	GetRecentByUser(userID uuid.UUID, limit int) ([]models.ProgressUpdate, error)
	GetRecentForTeams(teamIDs []uuid.UUID, limit int) ([]models.ProgressUpdate, error)
}
