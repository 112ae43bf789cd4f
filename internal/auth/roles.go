package auth

import (
	"errors"

	"okr-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// Identity is the authenticated caller as resolved from a validated token.
// It is immutable for the duration of a request.
type Identity struct {
	ID       uuid.UUID       `json:"id"`
	FullName string          `json:"full_name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
}

// IsAuthenticated reports whether an identity is present
func IsAuthenticated(identity *Identity) bool {
	return identity != nil
}

// HasRole reports whether the identity is authenticated and holds exactly the
// given role. Roles are flat: ADMIN does not satisfy a MANAGER check.
func HasRole(identity *Identity, role models.UserRole) bool {
	return IsAuthenticated(identity) && identity.Role == role
}

// IsAdmin reports whether the identity is an admin
func IsAdmin(identity *Identity) bool {
	return HasRole(identity, models.UserRoleAdmin)
}

// IsManager reports whether the identity is a manager
func IsManager(identity *Identity) bool {
	return HasRole(identity, models.UserRoleManager)
}

// IsMember reports whether the identity is a member
func IsMember(identity *Identity) bool {
	return HasRole(identity, models.UserRoleMember)
}

// HasElevatedRole reports whether the identity is an admin or a manager
func HasElevatedRole(identity *Identity) bool {
	return IsAdmin(identity) || IsManager(identity)
}

// MustHaveRole is the assert-style variant: it returns a generic error with no
// structured code, to be translated by a higher layer.
func MustHaveRole(identity *Identity, role models.UserRole) error {
	if !HasRole(identity, role) {
		return errors.New("access denied")
	}
	return nil
}
