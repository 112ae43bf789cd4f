//go:build integration
// +build integration

package repository

import (
	"testing"

	"okr-tracker-backend/internal/database/models"
	"okr-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *TeamRepository
	userRepo       *UserRepository
	membershipRepo *MembershipRepository
	objectiveRepo  *ObjectiveRepository
	keyResultRepo  *KeyResultRepository
	factories      *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.membershipRepo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.objectiveRepo = NewObjectiveRepository(suite.baseTestSuite.DB)
	suite.keyResultRepo = NewKeyResultRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedTeam creates a team with a manager and a member joined to it
func (suite *TeamRepositoryTestSuite) seedTeam() (*models.Team, *models.User, *models.User) {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	manager := suite.factories.User.WithRole(models.UserRoleManager)
	suite.NoError(suite.userRepo.Create(manager))
	member := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(member))

	suite.NoError(suite.membershipRepo.Create(suite.factories.Membership.Create(team.ID, manager.ID, models.MembershipRoleManager)))
	suite.NoError(suite.membershipRepo.Create(suite.factories.Membership.Create(team.ID, member.ID, models.MembershipRoleMember)))

	return team, manager, member
}

// TestCreateDuplicateName tests the unique name index
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	team1 := suite.factories.Team.WithName("Platform")
	suite.NoError(suite.repo.Create(team1))

	team2 := suite.factories.Team.WithName("Platform")
	err := suite.repo.Create(team2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByName tests retrieving a team by its unique name
func (suite *TeamRepositoryTestSuite) TestGetByName() {
	team := suite.factories.Team.WithName("Growth")
	suite.NoError(suite.repo.Create(team))

	retrieved, err := suite.repo.GetByName("Growth")
	suite.NoError(err)
	suite.Equal(team.ID, retrieved.ID)

	_, err = suite.repo.GetByName("missing")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetManager tests resolving the manager membership to a user
func (suite *TeamRepositoryTestSuite) TestGetManager() {
	team, manager, _ := suite.seedTeam()

	user, err := suite.repo.GetManager(team.ID)

	suite.NoError(err)
	suite.Equal(manager.ID, user.ID)
}

// TestGetManagerNone tests a team without a manager membership
func (suite *TeamRepositoryTestSuite) TestGetManagerNone() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	user, err := suite.repo.GetManager(team.ID)

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(user)
}

// TestCountMembers tests the membership counter
func (suite *TeamRepositoryTestSuite) TestCountMembers() {
	team, _, _ := suite.seedTeam()

	count, err := suite.repo.CountMembers(team.ID)

	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestCountActiveObjectives tests that only ACTIVE objectives count
func (suite *TeamRepositoryTestSuite) TestCountActiveObjectives() {
	team, _, _ := suite.seedTeam()

	suite.NoError(suite.objectiveRepo.Create(suite.factories.Objective.Create(team.ID)))
	suite.NoError(suite.objectiveRepo.Create(suite.factories.Objective.WithStatus(team.ID, models.ObjectiveStatusCompleted)))
	suite.NoError(suite.objectiveRepo.Create(suite.factories.Objective.WithStatus(team.ID, models.ObjectiveStatusArchived)))

	count, err := suite.repo.CountActiveObjectives(team.ID)

	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestGetManagedBy tests that only manager memberships qualify and that
// objectives come preloaded with key results
func (suite *TeamRepositoryTestSuite) TestGetManagedBy() {
	team, manager, member := suite.seedTeam()

	objective := suite.factories.Objective.Create(team.ID)
	suite.NoError(suite.objectiveRepo.Create(objective))
	suite.NoError(suite.keyResultRepo.Create(suite.factories.KeyResult.Create(objective.ID)))

	managed, err := suite.repo.GetManagedBy(manager.ID)
	suite.NoError(err)
	suite.Len(managed, 1)
	suite.Equal(team.ID, managed[0].ID)
	suite.Len(managed[0].Objectives, 1)
	suite.Len(managed[0].Objectives[0].KeyResults, 1)

	managed, err = suite.repo.GetManagedBy(member.ID)
	suite.NoError(err)
	suite.Empty(managed)
}

// TestGetForUser tests that any membership role qualifies
func (suite *TeamRepositoryTestSuite) TestGetForUser() {
	team, _, member := suite.seedTeam()

	teams, err := suite.repo.GetForUser(member.ID)

	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(team.ID, teams[0].ID)

	teams, err = suite.repo.GetForUser(uuid.New())
	suite.NoError(err)
	suite.Empty(teams)
}

// TestDeleteCascades tests that deleting a team removes its memberships,
// objectives and key results
func (suite *TeamRepositoryTestSuite) TestDeleteCascades() {
	team, _, _ := suite.seedTeam()

	objective := suite.factories.Objective.Create(team.ID)
	suite.NoError(suite.objectiveRepo.Create(objective))
	keyResult := suite.factories.KeyResult.Create(objective.ID)
	suite.NoError(suite.keyResultRepo.Create(keyResult))

	suite.NoError(suite.repo.Delete(team.ID))

	_, err := suite.repo.GetByID(team.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	count, err := suite.repo.CountMembers(team.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	_, err = suite.objectiveRepo.GetByID(objective.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	_, err = suite.keyResultRepo.GetByID(keyResult.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
