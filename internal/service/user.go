package service

import (
	"errors"
	"fmt"

	"okr-tracker-backend/internal/auth"
	"okr-tracker-backend/internal/database/models"
	apperrors "okr-tracker-backend/internal/errors"
	"okr-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for user accounts
type UserService struct {
	repo           repository.UserRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	validator      *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, membershipRepo repository.MembershipRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:           repo,
		membershipRepo: membershipRepo,
		validator:      validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	FullName string  `json:"full_name" validate:"required,max=200"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN MANAGER MEMBER"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// RoleChange is one entry of a bulk role-change request
type RoleChange struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required,oneof=ADMIN MANAGER MEMBER"`
}

// BulkRoleChangeRequest represents the request to change roles in bulk
type BulkRoleChangeRequest struct {
	Changes []RoleChange `json:"changes" validate:"required,min=1,dive"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CreateUser creates a new user account
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check for duplicate email
	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	role := models.UserRoleMember
	if req.Role != nil {
		role = models.UserRole(*req.Role)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return s.toResponse(user), nil
}

// ListUsers retrieves users with pagination
func (s *UserService) ListUsers(page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	users, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *s.toResponse(&user)
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateUser updates a user's profile fields
func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.FullName = req.FullName
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.toResponse(user), nil
}

// DeleteUser deletes a user. A user who manages a team that still has active
// objectives cannot be deleted.
func (s *UserService) DeleteUser(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	managing, err := s.membershipRepo.HasManagedTeamWithActiveObjectives(id)
	if err != nil {
		return fmt.Errorf("failed to check managed teams: %w", err)
	}
	if managing {
		return apperrors.ErrManagerHasActiveTeam
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// BulkChangeRoles applies a batch of role changes. The whole batch is
// validated before anything is written: a change that would demote the
// calling admin out of the ADMIN role rejects the batch and nothing is
// mutated.
func (s *UserService) BulkChangeRoles(actorID uuid.UUID, req *BulkRoleChangeRequest) ([]UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	users := make([]*models.User, len(req.Changes))
	for i, change := range req.Changes {
		if change.UserID == actorID && models.UserRole(change.Role) != models.UserRoleAdmin {
			return nil, apperrors.ErrSelfDemotion
		}
		user, err := s.repo.GetByID(change.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		users[i] = user
	}

	responses := make([]UserResponse, len(req.Changes))
	for i, change := range req.Changes {
		if err := s.repo.UpdateRole(change.UserID, models.UserRole(change.Role)); err != nil {
			return nil, fmt.Errorf("failed to update role: %w", err)
		}
		users[i].Role = models.UserRole(change.Role)
		responses[i] = *s.toResponse(users[i])
	}

	return responses, nil
}

// toResponse converts a user model to response
func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
