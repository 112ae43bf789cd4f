package models

// UserRole represents the platform-wide role of a user
type UserRole string

const (
	UserRoleAdmin   UserRole = "ADMIN"
	UserRoleManager UserRole = "MANAGER"
	UserRoleMember  UserRole = "MEMBER"
)

// ValidUserRole reports whether s is one of the known roles
func ValidUserRole(s string) bool {
	switch UserRole(s) {
	case UserRoleAdmin, UserRoleManager, UserRoleMember:
		return true
	}
	return false
}

// User represents an account that can sign in and hold a role
type User struct {
	BaseModel
	FullName     string   `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string   `json:"-" gorm:"not null;size:100"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'" validate:"required"`
	IsActive     bool     `json:"is_active" gorm:"default:true"`

	// Relationships
	Memberships     []TeamMembership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ProgressUpdates []ProgressUpdate `json:"progress_updates,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
