package auth_test

import (
	"testing"

	"okr-tracker-backend/internal/auth"
	"okr-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func identityWithRole(role models.UserRole) *auth.Identity {
	return &auth.Identity{
		ID:       uuid.New(),
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Role:     role,
	}
}

func TestIsAuthenticated(t *testing.T) {
	assert.False(t, auth.IsAuthenticated(nil))
	assert.True(t, auth.IsAuthenticated(identityWithRole(models.UserRoleMember)))
}

func TestHasRoleIsExact(t *testing.T) {
	manager := identityWithRole(models.UserRoleManager)

	assert.True(t, auth.HasRole(manager, models.UserRoleManager))
	assert.False(t, auth.HasRole(manager, models.UserRoleAdmin))
	assert.False(t, auth.HasRole(nil, models.UserRoleAdmin))
}

func TestConvenienceWrappers(t *testing.T) {
	admin := identityWithRole(models.UserRoleAdmin)
	manager := identityWithRole(models.UserRoleManager)
	member := identityWithRole(models.UserRoleMember)

	assert.True(t, auth.IsAdmin(admin))
	assert.False(t, auth.IsAdmin(manager))
	assert.True(t, auth.IsManager(manager))
	assert.True(t, auth.IsMember(member))
	assert.False(t, auth.IsMember(nil))
}

func TestHasElevatedRole(t *testing.T) {
	assert.True(t, auth.HasElevatedRole(identityWithRole(models.UserRoleAdmin)))
	assert.True(t, auth.HasElevatedRole(identityWithRole(models.UserRoleManager)))
	assert.False(t, auth.HasElevatedRole(identityWithRole(models.UserRoleMember)))
	assert.False(t, auth.HasElevatedRole(nil))
}

func TestMustHaveRole(t *testing.T) {
	admin := identityWithRole(models.UserRoleAdmin)

	assert.NoError(t, auth.MustHaveRole(admin, models.UserRoleAdmin))

	err := auth.MustHaveRole(admin, models.UserRoleManager)
	assert.Error(t, err)
	assert.Equal(t, "access denied", err.Error())

	assert.Error(t, auth.MustHaveRole(nil, models.UserRoleAdmin))
}
