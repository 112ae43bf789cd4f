package testutils

import (
	"time"

	"okr-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName: "Jane Doe",
		// Unique email per user so the unique index never trips across fixtures
		Email:        "jane." + id.String()[:8] + "@test.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         models.UserRoleMember,
		IsActive:     true,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Team " + id.String()[:8],
		Description: "A test team",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// MembershipFactory provides methods to create test TeamMembership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a membership joining the given user to the given team
func (f *MembershipFactory) Create(teamID, userID uuid.UUID, role models.MembershipRole) *models.TeamMembership {
	return &models.TeamMembership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: teamID,
		UserID: userID,
		Role:   role,
	}
}

// ObjectiveFactory provides methods to create test Objective data
type ObjectiveFactory struct{}

// NewObjectiveFactory creates a new ObjectiveFactory
func NewObjectiveFactory() *ObjectiveFactory {
	return &ObjectiveFactory{}
}

// Create creates a test Objective on the given team
func (f *ObjectiveFactory) Create(teamID uuid.UUID) *models.Objective {
	now := time.Now()
	return &models.Objective{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       "Improve reliability",
		Description: "A test objective",
		TeamID:      teamID,
		Status:      models.ObjectiveStatusActive,
		StartDate:   now,
		EndDate:     now.Add(90 * 24 * time.Hour),
		DueDate:     now.Add(90 * 24 * time.Hour),
	}
}

// WithStatus sets a custom status for the objective
func (f *ObjectiveFactory) WithStatus(teamID uuid.UUID, status models.ObjectiveStatus) *models.Objective {
	obj := f.Create(teamID)
	obj.Status = status
	return obj
}

// KeyResultFactory provides methods to create test KeyResult data
type KeyResultFactory struct{}

// NewKeyResultFactory creates a new KeyResultFactory
func NewKeyResultFactory() *KeyResultFactory {
	return &KeyResultFactory{}
}

// Create creates a test KeyResult on the given objective
func (f *KeyResultFactory) Create(objectiveID uuid.UUID) *models.KeyResult {
	now := time.Now()
	return &models.KeyResult{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       "Reduce error rate",
		ObjectiveID: objectiveID,
		TargetValue: 100,
		DueDate:     now.Add(60 * 24 * time.Hour),
	}
}

// WithProgress sets current value and the matching stored progress
func (f *KeyResultFactory) WithProgress(objectiveID uuid.UUID, current float64, progress int) *models.KeyResult {
	kr := f.Create(objectiveID)
	kr.CurrentValue = current
	kr.Progress = progress
	return kr
}

// ProgressUpdateFactory provides methods to create test ProgressUpdate data
type ProgressUpdateFactory struct{}

// NewProgressUpdateFactory creates a new ProgressUpdateFactory
func NewProgressUpdateFactory() *ProgressUpdateFactory {
	return &ProgressUpdateFactory{}
}

// Create creates a test ProgressUpdate for the given key result and author
func (f *ProgressUpdateFactory) Create(keyResultID, userID uuid.UUID, newValue float64) *models.ProgressUpdate {
	return &models.ProgressUpdate{
		ID:          uuid.New(),
		KeyResultID: keyResultID,
		UserID:      userID,
		NewValue:    newValue,
		Comment:     "Weekly check-in",
		CreatedAt:   time.Now(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User           *UserFactory
	Team           *TeamFactory
	Membership     *MembershipFactory
	Objective      *ObjectiveFactory
	KeyResult      *KeyResultFactory
	ProgressUpdate *ProgressUpdateFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:           NewUserFactory(),
		Team:           NewTeamFactory(),
		Membership:     NewMembershipFactory(),
		Objective:      NewObjectiveFactory(),
		KeyResult:      NewKeyResultFactory(),
		ProgressUpdate: NewProgressUpdateFactory(),
	}
}

// CreateTeamWithObjective seeds a team with a manager, a member, one active
// objective and one key result, returning all of them for further use.
func (fs *FactorySet) CreateTeamWithObjective() (*models.Team, *models.User, *models.User, *models.Objective, *models.KeyResult) {
	team := fs.Team.Create()
	manager := fs.User.WithRole(models.UserRoleManager)
	member := fs.User.Create()
	objective := fs.Objective.Create(team.ID)
	keyResult := fs.KeyResult.Create(objective.ID)
	return team, manager, member, objective, keyResult
}
