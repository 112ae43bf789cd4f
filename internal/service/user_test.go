package service_test

import (
	"testing"

	"okr-tracker-backend/internal/database/models"
	apperrors "okr-tracker-backend/internal/errors"
	"okr-tracker-backend/internal/mocks"
	"okr-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	userService        *service.UserService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockMembershipRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateUser tests creating a user with an explicit role
func (suite *UserServiceTestSuite) TestCreateUser() {
	role := "MANAGER"
	req := &service.CreateUserRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct-horse",
		Role:     &role,
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	var created *models.User
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			created = u
			return nil
		}).
		Times(1)

	response, err := suite.userService.CreateUser(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.FullName, response.FullName)
	assert.Equal(suite.T(), req.Email, response.Email)
	assert.Equal(suite.T(), "MANAGER", response.Role)
	assert.True(suite.T(), response.IsActive)

	// Password is stored hashed, never verbatim
	assert.NotEqual(suite.T(), req.Password, created.PasswordHash)
	assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte(req.Password)))
}

// TestCreateUserDefaultsToMember tests that a user created without a role becomes MEMBER
func (suite *UserServiceTestSuite) TestCreateUserDefaultsToMember() {
	req := &service.CreateUserRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct-horse",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.userService.CreateUser(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "MEMBER", response.Role)
}

// TestCreateUserDuplicateEmail tests the duplicate email conflict
func (suite *UserServiceTestSuite) TestCreateUserDuplicateEmail() {
	req := &service.CreateUserRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct-horse",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(&models.User{Email: req.Email}, nil).
		Times(1)

	response, err := suite.userService.CreateUser(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

// TestCreateUserInvalidRequest tests that validation failures never reach the repository
func (suite *UserServiceTestSuite) TestCreateUserInvalidRequest() {
	req := &service.CreateUserRequest{
		FullName: "Jane Doe",
		Email:    "not-an-email",
		Password: "short",
	}

	response, err := suite.userService.CreateUser(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
}

// TestGetUserByIDNotFound tests the not-found mapping
func (suite *UserServiceTestSuite) TestGetUserByIDNotFound() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.userService.GetUserByID(id)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestListUsersClampsPagination tests that out-of-range pagination falls back to defaults
func (suite *UserServiceTestSuite) TestListUsersClampsPagination() {
	suite.mockUserRepo.EXPECT().
		GetAll(20, 0).
		Return([]models.User{}, int64(0), nil).
		Times(1)

	response, err := suite.userService.ListUsers(-3, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 20, response.PageSize)
}

// TestDeleteUserManagingActiveTeam tests the delete guard for managers
func (suite *UserServiceTestSuite) TestDeleteUserManagingActiveTeam() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().
		GetByID(id).
		Return(&models.User{Role: models.UserRoleManager}, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		HasManagedTeamWithActiveObjectives(id).
		Return(true, nil).
		Times(1)

	err := suite.userService.DeleteUser(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrManagerHasActiveTeam)
}

// TestBulkChangeRoles tests a successful batch
func (suite *UserServiceTestSuite) TestBulkChangeRoles() {
	actorID := uuid.New()
	targetA := uuid.New()
	targetB := uuid.New()
	req := &service.BulkRoleChangeRequest{
		Changes: []service.RoleChange{
			{UserID: targetA, Role: "MANAGER"},
			{UserID: targetB, Role: "MEMBER"},
		},
	}

	suite.mockUserRepo.EXPECT().
		GetByID(targetA).
		Return(&models.User{FullName: "A", Role: models.UserRoleMember}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(targetB).
		Return(&models.User{FullName: "B", Role: models.UserRoleManager}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		UpdateRole(targetA, models.UserRoleManager).
		Return(nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		UpdateRole(targetB, models.UserRoleMember).
		Return(nil).
		Times(1)

	responses, err := suite.userService.BulkChangeRoles(actorID, req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), "MANAGER", responses[0].Role)
	assert.Equal(suite.T(), "MEMBER", responses[1].Role)
}

// TestBulkChangeRolesSelfDemotion tests that a batch demoting the caller is
// rejected before any write happens
func (suite *UserServiceTestSuite) TestBulkChangeRolesSelfDemotion() {
	actorID := uuid.New()
	other := uuid.New()
	req := &service.BulkRoleChangeRequest{
		Changes: []service.RoleChange{
			{UserID: other, Role: "MANAGER"},
			{UserID: actorID, Role: "MEMBER"},
		},
	}

	// GetByID is only reached for entries before the offending one; UpdateRole
	// must never be called for any entry.
	suite.mockUserRepo.EXPECT().
		GetByID(other).
		Return(&models.User{FullName: "Other", Role: models.UserRoleMember}, nil).
		MaxTimes(1)

	responses, err := suite.userService.BulkChangeRoles(actorID, req)

	assert.Nil(suite.T(), responses)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSelfDemotion)
}

// TestBulkChangeRolesSelfPromotionAllowed tests that the caller keeping ADMIN is fine
func (suite *UserServiceTestSuite) TestBulkChangeRolesSelfPromotionAllowed() {
	actorID := uuid.New()
	req := &service.BulkRoleChangeRequest{
		Changes: []service.RoleChange{
			{UserID: actorID, Role: "ADMIN"},
		},
	}

	suite.mockUserRepo.EXPECT().
		GetByID(actorID).
		Return(&models.User{FullName: "Admin", Role: models.UserRoleAdmin}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		UpdateRole(actorID, models.UserRoleAdmin).
		Return(nil).
		Times(1)

	responses, err := suite.userService.BulkChangeRoles(actorID, req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
