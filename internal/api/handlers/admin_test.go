package handlers_test

import (
	"net/http"
	"testing"

	"okr-tracker-backend/internal/api/handlers"
	"okr-tracker-backend/internal/auth"
	"okr-tracker-backend/internal/database/models"
	apperrors "okr-tracker-backend/internal/errors"
	"okr-tracker-backend/internal/mocks"
	"okr-tracker-backend/internal/okr"
	"okr-tracker-backend/internal/service"
	"okr-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AdminHandlerTestSuite defines the test suite for AdminHandler
type AdminHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockUserService      *mocks.MockUserServiceInterface
	mockTeamService      *mocks.MockTeamServiceInterface
	mockDashboardService *mocks.MockDashboardServiceInterface
	handler              *handlers.AdminHandler
	httpSuite            *testutils.HTTPTestSuite
	identity             *auth.Identity
}

// SetupTest sets up the test suite
func (suite *AdminHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.mockTeamService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.mockDashboardService = mocks.NewMockDashboardServiceInterface(suite.ctrl)

	suite.handler = handlers.NewAdminHandler(
		suite.mockUserService,
		suite.mockTeamService,
		suite.mockDashboardService,
	)

	suite.identity = &auth.Identity{
		ID:       uuid.New(),
		FullName: "Ada Admin",
		Email:    "ada@example.com",
		Role:     models.UserRoleAdmin,
	}

	suite.httpSuite = testutils.SetupHTTPTest()
	admin := suite.httpSuite.Router.Group("/api/v1/admin", testutils.IdentityMiddleware(suite.identity))
	{
		admin.GET("/dashboard", suite.handler.GetDashboard)

		users := admin.Group("/users")
		{
			users.GET("", suite.handler.ListUsers)
			users.POST("", suite.handler.CreateUser)
			users.POST("/roles", suite.handler.BulkChangeRoles)
			users.GET("/:id", suite.handler.GetUser)
			users.PUT("/:id", suite.handler.UpdateUser)
			users.DELETE("/:id", suite.handler.DeleteUser)
		}

		teams := admin.Group("/teams")
		{
			teams.GET("", suite.handler.ListTeams)
			teams.POST("", suite.handler.CreateTeam)
			teams.GET("/overview", suite.handler.GetTeamsOverview)
			teams.GET("/:id", suite.handler.GetTeam)
			teams.PUT("/:id", suite.handler.UpdateTeam)
			teams.DELETE("/:id", suite.handler.DeleteTeam)
			teams.POST("/:id/members", suite.handler.AddTeamMember)
			teams.DELETE("/:id/members/:userId", suite.handler.RemoveTeamMember)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *AdminHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetDashboard tests the GetDashboard handler
func (suite *AdminHandlerTestSuite) TestGetDashboard() {
	expected := &service.DashboardStats{
		TotalUsers:      25,
		TotalTeams:      4,
		OverallProgress: 70,
		HealthScore:     okr.HealthGood,
	}

	suite.mockDashboardService.EXPECT().
		GetStats().
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/admin/dashboard", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.DashboardStats
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(25), response.TotalUsers)
	assert.Equal(suite.T(), okr.HealthGood, response.HealthScore)
}

// TestCreateUser tests the CreateUser handler
func (suite *AdminHandlerTestSuite) TestCreateUser() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"full_name": "Jane Doe",
			"email":     "jane@example.com",
			"password":  "correct-horse",
			"role":      "MANAGER",
		}

		expected := &service.UserResponse{
			ID:       uuid.New(),
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Role:     "MANAGER",
			IsActive: true,
		}

		suite.mockUserService.EXPECT().
			CreateUser(gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/admin/users", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.UserResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "MANAGER", response.Role)
	})

	suite.T().Run("Duplicate Email", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"full_name": "Jane Doe",
			"email":     "jane@example.com",
			"password":  "correct-horse",
		}

		suite.mockUserService.EXPECT().
			CreateUser(gomock.Any()).
			Return(nil, apperrors.ErrUserExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/admin/users", requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestListUsers tests that pagination query params reach the service
func (suite *AdminHandlerTestSuite) TestListUsers() {
	suite.mockUserService.EXPECT().
		ListUsers(2, 10).
		Return(&service.UserListResponse{Page: 2, PageSize: 10}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/admin/users?page=2&page_size=10", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeleteUser tests the DeleteUser handler
func (suite *AdminHandlerTestSuite) TestDeleteUser() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockUserService.EXPECT().
			DeleteUser(id).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/admin/users/"+id.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Manages Active Team", func(t *testing.T) {
		suite.mockUserService.EXPECT().
			DeleteUser(id).
			Return(apperrors.ErrManagerHasActiveTeam).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/admin/users/"+id.String(), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockUserService.EXPECT().
			DeleteUser(id).
			Return(apperrors.ErrUserNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/admin/users/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestBulkChangeRoles tests the BulkChangeRoles handler
func (suite *AdminHandlerTestSuite) TestBulkChangeRoles() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"changes": []map[string]interface{}{
				{"user_id": uuid.New().String(), "role": "MANAGER"},
			},
		}

		suite.mockUserService.EXPECT().
			BulkChangeRoles(suite.identity.ID, gomock.Any()).
			Return([]service.UserResponse{{Role: "MANAGER"}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/admin/users/roles", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Self Demotion", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"changes": []map[string]interface{}{
				{"user_id": suite.identity.ID.String(), "role": "MEMBER"},
			},
		}

		suite.mockUserService.EXPECT().
			BulkChangeRoles(suite.identity.ID, gomock.Any()).
			Return(nil, apperrors.ErrSelfDemotion).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/admin/users/roles", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestCreateTeam tests the CreateTeam handler
func (suite *AdminHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":        "Platform",
			"description": "Infra and reliability",
		}

		expected := &service.TeamResponse{
			ID:          uuid.New(),
			Name:        "Platform",
			Description: "Infra and reliability",
		}

		suite.mockTeamService.EXPECT().
			Create(gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/admin/teams", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Duplicate Name", func(t *testing.T) {
		requestBody := map[string]interface{}{"name": "Platform"}

		suite.mockTeamService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrTeamExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/admin/teams", requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestDeleteTeam tests the delete guard mapping
func (suite *AdminHandlerTestSuite) TestDeleteTeam() {
	id := uuid.New()

	suite.mockTeamService.EXPECT().
		Delete(id).
		Return(apperrors.ErrTeamHasActiveObjectives).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/admin/teams/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestGetTeamsOverview tests the GetTeamsOverview handler
func (suite *AdminHandlerTestSuite) TestGetTeamsOverview() {
	rows := []service.TeamOverview{
		{Name: "Platform", MemberCount: 5, AverageProgress: 75, Status: okr.StatusOnTrack},
		{Name: "Growth", MemberCount: 3, AverageProgress: 30, Status: okr.StatusOffTrack},
	}

	suite.mockTeamService.EXPECT().
		Overview().
		Return(rows, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/admin/teams/overview", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.TeamOverview
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
	assert.Equal(suite.T(), okr.StatusOffTrack, response[1].Status)
}

// TestAddTeamMember tests the AddTeamMember handler
func (suite *AdminHandlerTestSuite) TestAddTeamMember() {
	teamID := uuid.New()
	url := "/api/v1/admin/teams/" + teamID.String() + "/members"

	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"user_id": uuid.New().String(),
			"role":    "MEMBER",
		}

		suite.mockTeamService.EXPECT().
			AddMember(teamID, gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", url, requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Already A Member", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"user_id": uuid.New().String(),
			"role":    "MEMBER",
		}

		suite.mockTeamService.EXPECT().
			AddMember(teamID, gomock.Any()).
			Return(apperrors.ErrMembershipExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", url, requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestRemoveTeamMember tests the RemoveTeamMember handler
func (suite *AdminHandlerTestSuite) TestRemoveTeamMember() {
	teamID := uuid.New()
	userID := uuid.New()
	url := "/api/v1/admin/teams/" + teamID.String() + "/members/" + userID.String()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockTeamService.EXPECT().
			RemoveMember(teamID, userID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", url, nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not A Member", func(t *testing.T) {
		suite.mockTeamService.EXPECT().
			RemoveMember(teamID, userID).
			Return(apperrors.ErrMembershipNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", url, nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestAdminHandlerTestSuite runs the test suite
func TestAdminHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
