package service_test

import (
	"testing"
	"time"

	"okr-tracker-backend/internal/database/models"
	apperrors "okr-tracker-backend/internal/errors"
	"okr-tracker-backend/internal/mocks"
	"okr-tracker-backend/internal/okr"
	"okr-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ObjectiveServiceTestSuite defines the test suite for ObjectiveService
type ObjectiveServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockObjectiveRepo  *mocks.MockObjectiveRepositoryInterface
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	objectiveService   *service.ObjectiveService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ObjectiveServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockObjectiveRepo = mocks.NewMockObjectiveRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.objectiveService = service.NewObjectiveService(
		suite.mockObjectiveRepo,
		suite.mockTeamRepo,
		suite.mockMembershipRepo,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *ObjectiveServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ObjectiveServiceTestSuite) expectManager(teamID, userID uuid.UUID) {
	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, userID).
		Return(&models.TeamMembership{Role: models.MembershipRoleManager}, nil).
		Times(1)
}

// TestCreateObjective tests creating an objective on a managed team
func (suite *ObjectiveServiceTestSuite) TestCreateObjective() {
	teamID := uuid.New()
	managerID := uuid.New()
	req := &service.CreateObjectiveRequest{
		Title:     "Improve reliability",
		TeamID:    teamID,
		StartDate: time.Now(),
		EndDate:   time.Now().Add(90 * 24 * time.Hour),
		DueDate:   time.Now().Add(90 * 24 * time.Hour),
	}

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{Name: "Platform"}, nil).
		Times(1)
	suite.expectManager(teamID, managerID)
	suite.mockObjectiveRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(obj *models.Objective) error {
			assert.Equal(suite.T(), models.ObjectiveStatusActive, obj.Status)
			return nil
		}).
		Times(1)

	response, err := suite.objectiveService.Create(managerID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ACTIVE", response.Status)
	assert.Equal(suite.T(), 0, response.Progress)
}

// TestCreateObjectiveNotManager tests that a plain member cannot create
func (suite *ObjectiveServiceTestSuite) TestCreateObjectiveNotManager() {
	teamID := uuid.New()
	userID := uuid.New()
	req := &service.CreateObjectiveRequest{
		Title:   "Improve reliability",
		TeamID:  teamID,
		DueDate: time.Now().Add(90 * 24 * time.Hour),
	}

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{Name: "Platform"}, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, userID).
		Return(&models.TeamMembership{Role: models.MembershipRoleMember}, nil).
		Times(1)

	response, err := suite.objectiveService.Create(userID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotTeamManager)
}

// TestCreateObjectiveNoMembership tests a caller from outside the team
func (suite *ObjectiveServiceTestSuite) TestCreateObjectiveNoMembership() {
	teamID := uuid.New()
	userID := uuid.New()
	req := &service.CreateObjectiveRequest{
		Title:   "Improve reliability",
		TeamID:  teamID,
		DueDate: time.Now().Add(90 * 24 * time.Hour),
	}

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{Name: "Platform"}, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, userID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.objectiveService.Create(userID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotTeamManager)
}

// TestUpdateObjectiveKeepsStatus tests that a request without a status leaves
// the stored status untouched
func (suite *ObjectiveServiceTestSuite) TestUpdateObjectiveKeepsStatus() {
	teamID := uuid.New()
	managerID := uuid.New()
	id := uuid.New()

	suite.mockObjectiveRepo.EXPECT().
		GetWithKeyResults(id).
		Return(&models.Objective{
			Title:  "Improve reliability",
			TeamID: teamID,
			Status: models.ObjectiveStatusCompleted,
		}, nil).
		Times(1)
	suite.expectManager(teamID, managerID)
	suite.mockObjectiveRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.objectiveService.Update(managerID, id, &service.UpdateObjectiveRequest{
		Title:       "Improve reliability further",
		Description: "Refined scope",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "COMPLETED", response.Status)
	assert.Equal(suite.T(), "Improve reliability further", response.Title)
}

// TestUpdateObjectiveSetsStatus tests an explicit status transition
func (suite *ObjectiveServiceTestSuite) TestUpdateObjectiveSetsStatus() {
	teamID := uuid.New()
	managerID := uuid.New()
	id := uuid.New()
	status := "ARCHIVED"

	suite.mockObjectiveRepo.EXPECT().
		GetWithKeyResults(id).
		Return(&models.Objective{
			Title:  "Improve reliability",
			TeamID: teamID,
			Status: models.ObjectiveStatusActive,
		}, nil).
		Times(1)
	suite.expectManager(teamID, managerID)
	suite.mockObjectiveRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.objectiveService.Update(managerID, id, &service.UpdateObjectiveRequest{
		Title:  "Improve reliability",
		Status: &status,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ARCHIVED", response.Status)
}

// TestDeleteObjectiveNotFound tests the not-found mapping on delete
func (suite *ObjectiveServiceTestSuite) TestDeleteObjectiveNotFound() {
	id := uuid.New()

	suite.mockObjectiveRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.objectiveService.Delete(uuid.New(), id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrObjectiveNotFound)
}

// TestGetDetail tests the full detail view: derived key result progress, the
// computed status and the member roster
func (suite *ObjectiveServiceTestSuite) TestGetDetail() {
	teamID := uuid.New()
	managerID := uuid.New()
	id := uuid.New()
	due := time.Now().Add(10 * 24 * time.Hour)

	suite.mockObjectiveRepo.EXPECT().
		GetWithKeyResults(id).
		Return(&models.Objective{
			Title:   "Improve reliability",
			TeamID:  teamID,
			Status:  models.ObjectiveStatusActive,
			DueDate: due,
			KeyResults: []models.KeyResult{
				{Title: "Error budget", TargetValue: 100, CurrentValue: 80, DueDate: due},
				{Title: "Paging volume", TargetValue: 50, CurrentValue: 30, DueDate: due},
			},
		}, nil).
		Times(1)
	suite.expectManager(teamID, managerID)
	suite.mockTeamRepo.EXPECT().
		GetWithMembers(teamID).
		Return(&models.Team{
			Name: "Platform",
			Memberships: []models.TeamMembership{
				{Role: models.MembershipRoleManager, User: models.User{FullName: "Jane Doe", Email: "jane@example.com"}},
				{Role: models.MembershipRoleMember, User: models.User{FullName: "John Roe", Email: "john@example.com"}},
			},
		}, nil).
		Times(1)

	detail, err := suite.objectiveService.GetDetail(managerID, id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Platform", detail.TeamName)
	// (80 + 60) / 2
	assert.Equal(suite.T(), 70, detail.Progress)
	assert.Equal(suite.T(), okr.StatusOnTrack, detail.ComputedStatus)
	assert.Equal(suite.T(), "ACTIVE", detail.Status)
	assert.Len(suite.T(), detail.AssignedMembers, 2)
	assert.Len(suite.T(), detail.KeyResults, 2)
	assert.Equal(suite.T(), 80, detail.KeyResults[0].Progress)
	assert.False(suite.T(), detail.KeyResults[0].IsOverdue)
}

// TestListForTeamNotManager tests that listing is manager-scoped too
func (suite *ObjectiveServiceTestSuite) TestListForTeamNotManager() {
	teamID := uuid.New()
	userID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{Name: "Platform"}, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, userID).
		Return(&models.TeamMembership{Role: models.MembershipRoleMember}, nil).
		Times(1)

	responses, err := suite.objectiveService.ListForTeam(userID, teamID)

	assert.Nil(suite.T(), responses)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotTeamManager)
}

// TestObjectiveServiceTestSuite runs the test suite
func TestObjectiveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ObjectiveServiceTestSuite))
}
