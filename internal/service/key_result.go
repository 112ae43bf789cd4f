package service

import (
	"errors"
	"fmt"
	"time"

	"okr-tracker-backend/internal/database/models"
	apperrors "okr-tracker-backend/internal/errors"
	"okr-tracker-backend/internal/logger"
	"okr-tracker-backend/internal/okr"
	"okr-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KeyResultService handles business logic for key results. Creation and
// deletion are manager-scoped; progress updates are open to any member of the
// owning team.
type KeyResultService struct {
	repo           repository.KeyResultRepositoryInterface
	objectiveRepo  repository.ObjectiveRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	updateRepo     repository.ProgressUpdateRepositoryInterface
	validator      *validator.Validate
	log            *logger.Logger
}

// NewKeyResultService creates a new key result service
func NewKeyResultService(repo repository.KeyResultRepositoryInterface, objectiveRepo repository.ObjectiveRepositoryInterface, membershipRepo repository.MembershipRepositoryInterface, updateRepo repository.ProgressUpdateRepositoryInterface, validator *validator.Validate) *KeyResultService {
	return &KeyResultService{
		repo:           repo,
		objectiveRepo:  objectiveRepo,
		membershipRepo: membershipRepo,
		updateRepo:     updateRepo,
		validator:      validator,
		log:            logger.New(),
	}
}

// CreateKeyResultRequest represents the request to create a key result
type CreateKeyResultRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	ObjectiveID uuid.UUID `json:"objective_id" validate:"required"`
	TargetValue float64   `json:"target_value" validate:"required,gt=0"`
	DueDate     time.Time `json:"due_date" validate:"required"`
}

// UpdateKeyResultRequest represents the request to update a key result's
// definition
type UpdateKeyResultRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	TargetValue float64    `json:"target_value" validate:"required,gt=0"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateProgressRequest represents a member's progress report against a key
// result
type UpdateProgressRequest struct {
	NewValue float64 `json:"new_value" validate:"gte=0"`
	Comment  string  `json:"comment" validate:"max=500"`
}

// KeyResultResponse represents the response for key result operations
type KeyResultResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	ObjectiveID  uuid.UUID `json:"objective_id"`
	TargetValue  float64   `json:"target_value"`
	CurrentValue float64   `json:"current_value"`
	Progress     int       `json:"progress"`
	DueDate      string    `json:"due_date"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// Create creates a key result under an objective the caller manages
func (s *KeyResultService) Create(managerID uuid.UUID, req *CreateKeyResultRequest) (*KeyResultResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	objective, err := s.objectiveRepo.GetByID(req.ObjectiveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to get objective: %w", err)
	}

	if err := s.requireManager(managerID, objective.TeamID); err != nil {
		return nil, err
	}

	keyResult := &models.KeyResult{
		Title:       req.Title,
		ObjectiveID: req.ObjectiveID,
		TargetValue: req.TargetValue,
		DueDate:     req.DueDate,
	}

	if err := s.repo.Create(keyResult); err != nil {
		return nil, fmt.Errorf("failed to create key result: %w", err)
	}

	return s.toResponse(keyResult), nil
}

// Update updates a key result's definition. Progress is re-derived when the
// target moves.
func (s *KeyResultService) Update(managerID, id uuid.UUID, req *UpdateKeyResultRequest) (*KeyResultResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	keyResult, err := s.repo.GetWithObjective(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKeyResultNotFound
		}
		return nil, fmt.Errorf("failed to get key result: %w", err)
	}

	if err := s.requireManager(managerID, keyResult.Objective.TeamID); err != nil {
		return nil, err
	}

	keyResult.Title = req.Title
	keyResult.TargetValue = req.TargetValue
	keyResult.Progress = okr.KeyResultProgress(keyResult.CurrentValue, keyResult.TargetValue)
	if req.DueDate != nil {
		keyResult.DueDate = *req.DueDate
	}

	if err := s.repo.Update(keyResult); err != nil {
		return nil, fmt.Errorf("failed to update key result: %w", err)
	}

	return s.toResponse(keyResult), nil
}

// Delete deletes a key result
func (s *KeyResultService) Delete(managerID, id uuid.UUID) error {
	keyResult, err := s.repo.GetWithObjective(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrKeyResultNotFound
		}
		return fmt.Errorf("failed to get key result: %w", err)
	}

	if err := s.requireManager(managerID, keyResult.Objective.TeamID); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete key result: %w", err)
	}
	return nil
}

// UpdateProgress records a member's new value against a key result. The key
// result row is the primary write and must succeed; the log row is appended
// afterwards and a failure there only warns, leaving the key result updated
// with no matching log entry.
func (s *KeyResultService) UpdateProgress(userID, id uuid.UUID, req *UpdateProgressRequest) (*KeyResultResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	keyResult, err := s.repo.GetWithObjective(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKeyResultNotFound
		}
		return nil, fmt.Errorf("failed to get key result: %w", err)
	}

	if err := s.requireMembership(userID, keyResult.Objective.TeamID); err != nil {
		return nil, err
	}

	keyResult.CurrentValue = req.NewValue
	keyResult.Progress = okr.KeyResultProgress(req.NewValue, keyResult.TargetValue)

	if err := s.repo.Update(keyResult); err != nil {
		return nil, fmt.Errorf("failed to update key result: %w", err)
	}

	update := &models.ProgressUpdate{
		KeyResultID: keyResult.ID,
		UserID:      userID,
		NewValue:    req.NewValue,
		Comment:     req.Comment,
	}
	if err := s.updateRepo.Create(update); err != nil {
		s.log.WithKeyResult(keyResult.ID).WithUser(userID).
			Warnf("failed to log progress update: %v", err)
	}

	return s.toResponse(keyResult), nil
}

// requireManager checks the caller holds the MANAGER membership role on a team
func (s *KeyResultService) requireManager(userID, teamID uuid.UUID) error {
	membership, err := s.membershipRepo.GetByTeamAndUser(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotTeamManager
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}
	if membership.Role != models.MembershipRoleManager {
		return apperrors.ErrNotTeamManager
	}
	return nil
}

// requireMembership checks the caller belongs to a team in any role
func (s *KeyResultService) requireMembership(userID, teamID uuid.UUID) error {
	_, err := s.membershipRepo.GetByTeamAndUser(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}
	return nil
}

// toResponse converts a key result model to response
func (s *KeyResultService) toResponse(kr *models.KeyResult) *KeyResultResponse {
	return &KeyResultResponse{
		ID:           kr.ID,
		Title:        kr.Title,
		ObjectiveID:  kr.ObjectiveID,
		TargetValue:  kr.TargetValue,
		CurrentValue: kr.CurrentValue,
		Progress:     kr.Progress,
		DueDate:      kr.DueDate.Format("2006-01-02T15:04:05Z07:00"),
		CreatedAt:    kr.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    kr.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
