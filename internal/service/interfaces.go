package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service operations
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(id uuid.UUID) (*UserResponse, error)
	ListUsers(page, pageSize int) (*UserListResponse, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(id uuid.UUID) error
	BulkChangeRoles(actorID uuid.UUID, req *BulkRoleChangeRequest) ([]UserResponse, error)
}

// TeamServiceInterface defines the interface for team service operations
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	List(page, pageSize int) (*TeamListResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
	AddMember(teamID uuid.UUID, req *AddMemberRequest) error
	RemoveMember(teamID, userID uuid.UUID) error
	Overview() ([]TeamOverview, error)
}

// ObjectiveServiceInterface defines the interface for objective service operations
type ObjectiveServiceInterface interface {
	Create(managerID uuid.UUID, req *CreateObjectiveRequest) (*ObjectiveResponse, error)
	Update(managerID, id uuid.UUID, req *UpdateObjectiveRequest) (*ObjectiveResponse, error)
	Delete(managerID, id uuid.UUID) error
	ListForTeam(managerID, teamID uuid.UUID) ([]ObjectiveResponse, error)
	GetDetail(managerID, id uuid.UUID) (*ObjectiveDetail, error)
}

// KeyResultServiceInterface defines the interface for key result service operations
type KeyResultServiceInterface interface {
	Create(managerID uuid.UUID, req *CreateKeyResultRequest) (*KeyResultResponse, error)
	Update(managerID, id uuid.UUID, req *UpdateKeyResultRequest) (*KeyResultResponse, error)
	Delete(managerID, id uuid.UUID) error
	UpdateProgress(userID, id uuid.UUID, req *UpdateProgressRequest) (*KeyResultResponse, error)
}

// DashboardServiceInterface defines the interface for the admin dashboard
type DashboardServiceInterface interface {
	GetStats() (*DashboardStats, error)
}

// ManagerServiceInterface defines the interface for the manager dashboard
type ManagerServiceInterface interface {
	GetDashboard(managerID uuid.UUID) (*ManagerDashboard, error)
}

// MemberServiceInterface defines the interface for member-facing views
type MemberServiceInterface interface {
	GetDashboard(userID uuid.UUID) (*MemberDashboard, error)
	ListObjectives(userID uuid.UUID) ([]PersonalObjective, error)
	GetUpdates(userID uuid.UUID, limit int) ([]UpdateFeedEntry, error)
}
