package handlers_test

import (
	"net/http"
	"testing"
	"time"

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

// ManagerHandlerTestSuite defines the test suite for ManagerHandler
type ManagerHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockManagerService   *mocks.MockManagerServiceInterface
	mockObjectiveService *mocks.MockObjectiveServiceInterface
	mockKeyResultService *mocks.MockKeyResultServiceInterface
	handler              *handlers.ManagerHandler
	httpSuite            *testutils.HTTPTestSuite
	identity             *auth.Identity
}

// SetupTest sets up the test suite
func (suite *ManagerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockManagerService = mocks.NewMockManagerServiceInterface(suite.ctrl)
	suite.mockObjectiveService = mocks.NewMockObjectiveServiceInterface(suite.ctrl)
	suite.mockKeyResultService = mocks.NewMockKeyResultServiceInterface(suite.ctrl)

	suite.handler = handlers.NewManagerHandler(
		suite.mockManagerService,
		suite.mockObjectiveService,
		suite.mockKeyResultService,
	)

	suite.identity = &auth.Identity{
		ID:       uuid.New(),
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Role:     models.UserRoleManager,
	}

	suite.httpSuite = testutils.SetupHTTPTest()
	manager := suite.httpSuite.Router.Group("/api/v1/manager", testutils.IdentityMiddleware(suite.identity))
	{
		manager.GET("/dashboard", suite.handler.GetDashboard)
		manager.GET("/teams/:id/objectives", suite.handler.ListObjectives)
		manager.POST("/objectives", suite.handler.CreateObjective)
		manager.GET("/objectives/:id", suite.handler.GetObjectiveDetail)
		manager.PUT("/objectives/:id", suite.handler.UpdateObjective)
		manager.DELETE("/objectives/:id", suite.handler.DeleteObjective)
		manager.POST("/key-results", suite.handler.CreateKeyResult)
		manager.PUT("/key-results/:id", suite.handler.UpdateKeyResult)
		manager.DELETE("/key-results/:id", suite.handler.DeleteKeyResult)
	}
}

// TearDownTest cleans up after each test
func (suite *ManagerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetDashboard tests the GetDashboard handler
func (suite *ManagerHandlerTestSuite) TestGetDashboard() {
	expected := &service.ManagerDashboard{
		Teams:           []service.ManagedTeam{{Name: "Platform", AverageProgress: 72, Status: okr.StatusOnTrack}},
		TotalObjectives: 4,
		AverageProgress: 72,
		RecentActivity:  9,
	}

	suite.mockManagerService.EXPECT().
		GetDashboard(suite.identity.ID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/manager/dashboard", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ManagerDashboard
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Teams, 1)
	assert.Equal(suite.T(), 4, response.TotalObjectives)
}

// TestCreateObjective tests the CreateObjective handler
func (suite *ManagerHandlerTestSuite) TestCreateObjective() {
	teamID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"title":    "Improve reliability",
			"team_id":  teamID.String(),
			"due_date": time.Now().Add(90 * 24 * time.Hour).Format(time.RFC3339),
		}

		expected := &service.ObjectiveResponse{
			ID:     uuid.New(),
			Title:  "Improve reliability",
			TeamID: teamID,
			Status: "ACTIVE",
		}

		suite.mockObjectiveService.EXPECT().
			Create(suite.identity.ID, gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/manager/objectives", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.ObjectiveResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "ACTIVE", response.Status)
	})

	suite.T().Run("Not Team Manager", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"title":    "Improve reliability",
			"team_id":  teamID.String(),
			"due_date": time.Now().Add(90 * 24 * time.Hour).Format(time.RFC3339),
		}

		suite.mockObjectiveService.EXPECT().
			Create(suite.identity.ID, gomock.Any()).
			Return(nil, apperrors.ErrNotTeamManager).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/manager/objectives", requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("Team Not Found", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"title":    "Improve reliability",
			"team_id":  teamID.String(),
			"due_date": time.Now().Add(90 * 24 * time.Hour).Format(time.RFC3339),
		}

		suite.mockObjectiveService.EXPECT().
			Create(suite.identity.ID, gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/manager/objectives", requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestGetObjectiveDetail tests the GetObjectiveDetail handler
func (suite *ManagerHandlerTestSuite) TestGetObjectiveDetail() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.ObjectiveDetail{
			ID:             id,
			Title:          "Improve reliability",
			TeamName:       "Platform",
			Status:         "ACTIVE",
			ComputedStatus: okr.StatusOnTrack,
			Progress:       70,
		}

		suite.mockObjectiveService.EXPECT().
			GetDetail(suite.identity.ID, id).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/manager/objectives/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ObjectiveDetail
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, okr.StatusOnTrack, response.ComputedStatus)
		assert.Equal(t, "ACTIVE", response.Status)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/manager/objectives/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid objective ID")
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockObjectiveService.EXPECT().
			GetDetail(suite.identity.ID, id).
			Return(nil, apperrors.ErrObjectiveNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/manager/objectives/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestDeleteObjective tests the DeleteObjective handler
func (suite *ManagerHandlerTestSuite) TestDeleteObjective() {
	id := uuid.New()

	suite.mockObjectiveService.EXPECT().
		Delete(suite.identity.ID, id).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/manager/objectives/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestCreateKeyResult tests the CreateKeyResult handler
func (suite *ManagerHandlerTestSuite) TestCreateKeyResult() {
	objectiveID := uuid.New()
	requestBody := map[string]interface{}{
		"title":        "Reduce error rate",
		"objective_id": objectiveID.String(),
		"target_value": 100,
		"due_date":     time.Now().Add(60 * 24 * time.Hour).Format(time.RFC3339),
	}

	expected := &service.KeyResultResponse{
		ID:          uuid.New(),
		Title:       "Reduce error rate",
		ObjectiveID: objectiveID,
		TargetValue: 100,
	}

	suite.mockKeyResultService.EXPECT().
		Create(suite.identity.ID, gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/manager/key-results", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestUpdateKeyResultForbidden tests the manager scope on key result updates
func (suite *ManagerHandlerTestSuite) TestUpdateKeyResultForbidden() {
	id := uuid.New()
	requestBody := map[string]interface{}{
		"title":        "Reduce error rate",
		"target_value": 80,
	}

	suite.mockKeyResultService.EXPECT().
		Update(suite.identity.ID, id, gomock.Any()).
		Return(nil, apperrors.ErrNotTeamManager).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/manager/key-results/"+id.String(), requestBody)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestListObjectives tests the ListObjectives handler
func (suite *ManagerHandlerTestSuite) TestListObjectives() {
	teamID := uuid.New()

	suite.mockObjectiveService.EXPECT().
		ListForTeam(suite.identity.ID, teamID).
		Return([]service.ObjectiveResponse{{Title: "Improve reliability"}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/manager/teams/"+teamID.String()+"/objectives", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.ObjectiveResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
}

// TestManagerHandlerTestSuite runs the test suite
func TestManagerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerHandlerTestSuite))
}
