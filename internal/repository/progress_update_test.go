//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"okr-tracker-backend/internal/database/models"
	"okr-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ProgressUpdateRepositoryTestSuite tests the ProgressUpdateRepository
type ProgressUpdateRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProgressUpdateRepository
	teamRepo      *TeamRepository
	userRepo      *UserRepository
	objectiveRepo *ObjectiveRepository
	keyResultRepo *KeyResultRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProgressUpdateRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProgressUpdateRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.objectiveRepo = NewObjectiveRepository(suite.baseTestSuite.DB)
	suite.keyResultRepo = NewKeyResultRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProgressUpdateRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProgressUpdateRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProgressUpdateRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedKeyResult creates a team, user, objective and key result to log against
func (suite *ProgressUpdateRepositoryTestSuite) seedKeyResult() (*models.KeyResult, *models.User, *models.Team) {
	team := suite.factories.Team.Create()
	suite.NoError(suite.teamRepo.Create(team))

	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))

	objective := suite.factories.Objective.Create(team.ID)
	suite.NoError(suite.objectiveRepo.Create(objective))

	keyResult := suite.factories.KeyResult.Create(objective.ID)
	suite.NoError(suite.keyResultRepo.Create(keyResult))

	return keyResult, user, team
}

// TestGetRecentByUser tests ordering and the key result preload
func (suite *ProgressUpdateRepositoryTestSuite) TestGetRecentByUser() {
	keyResult, user, _ := suite.seedKeyResult()

	for _, v := range []float64{10, 20, 30} {
		update := suite.factories.ProgressUpdate.Create(keyResult.ID, user.ID, v)
		suite.NoError(suite.repo.Create(update))
		// Space out created_at so ordering is deterministic
		time.Sleep(5 * time.Millisecond)
	}

	updates, err := suite.repo.GetRecentByUser(user.ID, 2)

	suite.NoError(err)
	suite.Len(updates, 2)
	suite.Equal(30.0, updates[0].NewValue)
	suite.Equal(20.0, updates[1].NewValue)
	suite.Equal(keyResult.Title, updates[0].KeyResult.Title)
}

// TestCountSince tests the activity window counter
func (suite *ProgressUpdateRepositoryTestSuite) TestCountSince() {
	keyResult, user, _ := suite.seedKeyResult()

	old := suite.factories.ProgressUpdate.Create(keyResult.ID, user.ID, 10)
	old.CreatedAt = time.Now().Add(-10 * 24 * time.Hour)
	suite.NoError(suite.repo.Create(old))

	recent := suite.factories.ProgressUpdate.Create(keyResult.ID, user.ID, 20)
	suite.NoError(suite.repo.Create(recent))

	count, err := suite.repo.CountSince(time.Now().Add(-7 * 24 * time.Hour))

	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestCountDistinctUsersSince tests that repeat authors count once
func (suite *ProgressUpdateRepositoryTestSuite) TestCountDistinctUsersSince() {
	keyResult, user, _ := suite.seedKeyResult()

	other := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(other))

	suite.NoError(suite.repo.Create(suite.factories.ProgressUpdate.Create(keyResult.ID, user.ID, 10)))
	suite.NoError(suite.repo.Create(suite.factories.ProgressUpdate.Create(keyResult.ID, user.ID, 20)))
	suite.NoError(suite.repo.Create(suite.factories.ProgressUpdate.Create(keyResult.ID, other.ID, 30)))

	count, err := suite.repo.CountDistinctUsersSince(time.Now().Add(-time.Hour))

	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestCountForTeamsSince tests the team-scoped counter and its empty input
func (suite *ProgressUpdateRepositoryTestSuite) TestCountForTeamsSince() {
	keyResult, user, team := suite.seedKeyResult()
	otherKeyResult, otherUser, _ := suite.seedKeyResult()

	suite.NoError(suite.repo.Create(suite.factories.ProgressUpdate.Create(keyResult.ID, user.ID, 10)))
	suite.NoError(suite.repo.Create(suite.factories.ProgressUpdate.Create(otherKeyResult.ID, otherUser.ID, 20)))

	since := time.Now().Add(-time.Hour)

	count, err := suite.repo.CountForTeamsSince([]uuid.UUID{team.ID}, since)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	count, err = suite.repo.CountForTeamsSince([]uuid.UUID{}, since)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestGetRecentForTeams tests the team-scoped feed with preloads
func (suite *ProgressUpdateRepositoryTestSuite) TestGetRecentForTeams() {
	keyResult, user, team := suite.seedKeyResult()

	suite.NoError(suite.repo.Create(suite.factories.ProgressUpdate.Create(keyResult.ID, user.ID, 42)))

	updates, err := suite.repo.GetRecentForTeams([]uuid.UUID{team.ID}, 10)

	suite.NoError(err)
	suite.Len(updates, 1)
	suite.Equal(42.0, updates[0].NewValue)
	suite.Equal(keyResult.Title, updates[0].KeyResult.Title)
	suite.Equal(user.FullName, updates[0].User.FullName)
}

// TestProgressUpdateRepositoryTestSuite runs the test suite
func TestProgressUpdateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProgressUpdateRepositoryTestSuite))
}
