package service_test

import (
	"testing"

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

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	teamService        *service.TeamService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.teamService = service.NewTeamService(
		suite.mockTeamRepo,
		suite.mockMembershipRepo,
		suite.mockUserRepo,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests creating a team
func (suite *TeamServiceTestSuite) TestCreateTeam() {
	req := &service.CreateTeamRequest{
		Name:        "Platform",
		Description: "Infra and reliability",
	}

	suite.mockTeamRepo.EXPECT().
		GetByName(req.Name).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.teamService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), req.Description, response.Description)
}

// TestCreateTeamDuplicateName tests the name conflict
func (suite *TeamServiceTestSuite) TestCreateTeamDuplicateName() {
	req := &service.CreateTeamRequest{Name: "Platform"}

	suite.mockTeamRepo.EXPECT().
		GetByName(req.Name).
		Return(&models.Team{Name: req.Name}, nil).
		Times(1)

	response, err := suite.teamService.Create(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamExists)
}

// TestDeleteTeamWithActiveObjectives tests the delete guard
func (suite *TeamServiceTestSuite) TestDeleteTeamWithActiveObjectives() {
	id := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(id).
		Return(&models.Team{Name: "Platform"}, nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		CountActiveObjectives(id).
		Return(int64(2), nil).
		Times(1)

	err := suite.teamService.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamHasActiveObjectives)
}

// TestDeleteTeam tests deleting a team without active objectives
func (suite *TeamServiceTestSuite) TestDeleteTeam() {
	id := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(id).
		Return(&models.Team{Name: "Platform"}, nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		CountActiveObjectives(id).
		Return(int64(0), nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		Delete(id).
		Return(nil).
		Times(1)

	err := suite.teamService.Delete(id)

	assert.NoError(suite.T(), err)
}

// TestAddMember tests joining a user to a team
func (suite *TeamServiceTestSuite) TestAddMember() {
	teamID := uuid.New()
	userID := uuid.New()
	req := &service.AddMemberRequest{UserID: userID, Role: "MEMBER"}

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{Name: "Platform"}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{FullName: "Jane Doe"}, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, userID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.TeamMembership) error {
			assert.Equal(suite.T(), models.MembershipRoleMember, m.Role)
			return nil
		}).
		Times(1)

	err := suite.teamService.AddMember(teamID, req)

	assert.NoError(suite.T(), err)
}

// TestAddMemberAlreadyJoined tests the duplicate membership conflict
func (suite *TeamServiceTestSuite) TestAddMemberAlreadyJoined() {
	teamID := uuid.New()
	userID := uuid.New()
	req := &service.AddMemberRequest{UserID: userID, Role: "MANAGER"}

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{Name: "Platform"}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{FullName: "Jane Doe"}, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, userID).
		Return(&models.TeamMembership{}, nil).
		Times(1)

	err := suite.teamService.AddMember(teamID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
}

// TestAddMemberInvalidRole tests that an unknown membership role never reaches
// the repository
func (suite *TeamServiceTestSuite) TestAddMemberInvalidRole() {
	req := &service.AddMemberRequest{UserID: uuid.New(), Role: "OWNER"}

	err := suite.teamService.AddMember(uuid.New(), req)

	assert.Error(suite.T(), err)
}

// TestRemoveMemberNotFound tests removing a user who is not on the team
func (suite *TeamServiceTestSuite) TestRemoveMemberNotFound() {
	teamID := uuid.New()
	userID := uuid.New()

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, userID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.teamService.RemoveMember(teamID, userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotFound)
}

// TestOverview tests the overview rows, including a team with no manager and
// the flat key-result average that weighs larger objectives more
func (suite *TeamServiceTestSuite) TestOverview() {
	teams := []models.Team{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      "Platform",
			Objectives: []models.Objective{
				{KeyResults: []models.KeyResult{{Progress: 80}, {Progress: 60}, {Progress: 70}}},
				{KeyResults: []models.KeyResult{{Progress: 90}}},
			},
		},
		{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			Name:       "Growth",
			Objectives: []models.Objective{},
		},
	}

	suite.mockTeamRepo.EXPECT().
		GetAllWithObjectives().
		Return(teams, nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		CountMembers(gomock.Any()).
		Return(int64(4), nil).
		Times(2)
	suite.mockTeamRepo.EXPECT().
		GetManager(teams[0].ID).
		Return(&models.User{FullName: "Jane Doe"}, nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		GetManager(teams[1].ID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	rows, err := suite.teamService.Overview()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), rows, 2)
	// (80 + 60 + 70 + 90) / 4
	assert.Equal(suite.T(), 75, rows[0].AverageProgress)
	assert.Equal(suite.T(), okr.StatusOnTrack, rows[0].Status)
	assert.Equal(suite.T(), "Jane Doe", rows[0].ManagerName)
	assert.Equal(suite.T(), 0, rows[1].AverageProgress)
	assert.Equal(suite.T(), okr.StatusOffTrack, rows[1].Status)
	assert.Equal(suite.T(), "", rows[1].ManagerName)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
