package service

import (
	"errors"
	"fmt"
	"time"

	"okr-tracker-backend/internal/database/models"
	apperrors "okr-tracker-backend/internal/errors"
	"okr-tracker-backend/internal/okr"
	"okr-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ObjectiveService handles business logic for objectives. Write operations are
// manager-scoped: the caller must hold the MANAGER membership role on the
// objective's team.
type ObjectiveService struct {
	repo           repository.ObjectiveRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	validator      *validator.Validate
}

// NewObjectiveService creates a new objective service
func NewObjectiveService(repo repository.ObjectiveRepositoryInterface, teamRepo repository.TeamRepositoryInterface, membershipRepo repository.MembershipRepositoryInterface, validator *validator.Validate) *ObjectiveService {
	return &ObjectiveService{
		repo:           repo,
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
		validator:      validator,
	}
}

// CreateObjectiveRequest represents the request to create an objective
type CreateObjectiveRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description" validate:"max=1000"`
	TeamID      uuid.UUID `json:"team_id" validate:"required"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	DueDate     time.Time `json:"due_date" validate:"required"`
}

// UpdateObjectiveRequest represents the request to update an objective
type UpdateObjectiveRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"max=1000"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE COMPLETED ARCHIVED"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// ObjectiveResponse represents the response for objective operations
type ObjectiveResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TeamID      uuid.UUID `json:"team_id"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	DueDate     string    `json:"due_date"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// KeyResultView is a key result row in the objective detail view. Progress is
// derived from current/target at read time rather than echoing the stored
// column.
type KeyResultView struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	TargetValue  float64   `json:"target_value"`
	CurrentValue float64   `json:"current_value"`
	Progress     int       `json:"progress"`
	DueDate      string    `json:"due_date"`
	DaysUntilDue int       `json:"days_until_due"`
	IsOverdue    bool      `json:"is_overdue"`
}

// AssignedMember is a member row in the objective detail view
type AssignedMember struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

// ObjectiveDetail is the full objective view: the stored status, the computed
// status derived from progress, the team's members, and the key results.
type ObjectiveDetail struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	TeamID          uuid.UUID        `json:"team_id"`
	TeamName        string           `json:"team_name"`
	Status          string           `json:"status"`
	ComputedStatus  okr.Status       `json:"computed_status"`
	Progress        int              `json:"progress"`
	DueDate         string           `json:"due_date"`
	DaysUntilDue    int              `json:"days_until_due"`
	IsOverdue       bool             `json:"is_overdue"`
	AssignedMembers []AssignedMember `json:"assigned_members"`
	KeyResults      []KeyResultView  `json:"key_results"`
}

// Create creates an objective on a team the caller manages
func (s *ObjectiveService) Create(managerID uuid.UUID, req *CreateObjectiveRequest) (*ObjectiveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.teamRepo.GetByID(req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.requireManager(managerID, req.TeamID); err != nil {
		return nil, err
	}

	objective := &models.Objective{
		Title:       req.Title,
		Description: req.Description,
		TeamID:      req.TeamID,
		Status:      models.ObjectiveStatusActive,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		DueDate:     req.DueDate,
	}

	if err := s.repo.Create(objective); err != nil {
		return nil, fmt.Errorf("failed to create objective: %w", err)
	}

	return s.toResponse(objective), nil
}

// Update updates an objective's fields. The stored status only changes when
// the request sets it explicitly.
func (s *ObjectiveService) Update(managerID, id uuid.UUID, req *UpdateObjectiveRequest) (*ObjectiveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	objective, err := s.repo.GetWithKeyResults(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to get objective: %w", err)
	}

	if err := s.requireManager(managerID, objective.TeamID); err != nil {
		return nil, err
	}

	objective.Title = req.Title
	objective.Description = req.Description
	if req.Status != nil {
		objective.Status = models.ObjectiveStatus(*req.Status)
	}
	if req.DueDate != nil {
		objective.DueDate = *req.DueDate
	}

	if err := s.repo.Update(objective); err != nil {
		return nil, fmt.Errorf("failed to update objective: %w", err)
	}

	return s.toResponse(objective), nil
}

// Delete deletes an objective and, via cascade, its key results and their
// update log rows
func (s *ObjectiveService) Delete(managerID, id uuid.UUID) error {
	objective, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrObjectiveNotFound
		}
		return fmt.Errorf("failed to get objective: %w", err)
	}

	if err := s.requireManager(managerID, objective.TeamID); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete objective: %w", err)
	}
	return nil
}

// ListForTeam returns the objectives of one team the caller manages
func (s *ObjectiveService) ListForTeam(managerID, teamID uuid.UUID) ([]ObjectiveResponse, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.requireManager(managerID, teamID); err != nil {
		return nil, err
	}

	objectives, err := s.repo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}

	responses := make([]ObjectiveResponse, len(objectives))
	for i, obj := range objectives {
		responses[i] = *s.toResponse(&obj)
	}
	return responses, nil
}

// GetDetail assembles the full objective view for a manager of its team
func (s *ObjectiveService) GetDetail(managerID, id uuid.UUID) (*ObjectiveDetail, error) {
	objective, err := s.repo.GetWithKeyResults(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to get objective: %w", err)
	}

	if err := s.requireManager(managerID, objective.TeamID); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetWithMembers(objective.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	now := time.Now()

	keyResults := make([]KeyResultView, len(objective.KeyResults))
	progressValues := make([]int, len(objective.KeyResults))
	for i, kr := range objective.KeyResults {
		derived := okr.KeyResultProgress(kr.CurrentValue, kr.TargetValue)
		progressValues[i] = derived
		keyResults[i] = KeyResultView{
			ID:           kr.ID,
			Title:        kr.Title,
			TargetValue:  kr.TargetValue,
			CurrentValue: kr.CurrentValue,
			Progress:     derived,
			DueDate:      kr.DueDate.Format("2006-01-02T15:04:05Z07:00"),
			DaysUntilDue: okr.DaysUntilDue(kr.DueDate, now),
			IsOverdue:    okr.IsOverdue(kr.DueDate, now),
		}
	}

	members := make([]AssignedMember, len(team.Memberships))
	for i, m := range team.Memberships {
		members[i] = AssignedMember{
			ID:       m.User.ID,
			FullName: m.User.FullName,
			Email:    m.User.Email,
			Role:     string(m.Role),
		}
	}

	progress := okr.AverageProgress(progressValues)

	return &ObjectiveDetail{
		ID:              objective.ID,
		Title:           objective.Title,
		Description:     objective.Description,
		TeamID:          objective.TeamID,
		TeamName:        team.Name,
		Status:          string(objective.Status),
		ComputedStatus:  okr.ClassifyDeliveryStatus(progress),
		Progress:        progress,
		DueDate:         objective.DueDate.Format("2006-01-02T15:04:05Z07:00"),
		DaysUntilDue:    okr.DaysUntilDue(objective.DueDate, now),
		IsOverdue:       okr.IsOverdue(objective.DueDate, now),
		AssignedMembers: members,
		KeyResults:      keyResults,
	}, nil
}

// requireManager checks the caller holds the MANAGER membership role on a team
func (s *ObjectiveService) requireManager(userID, teamID uuid.UUID) error {
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

// toResponse converts an objective model to response
func (s *ObjectiveService) toResponse(obj *models.Objective) *ObjectiveResponse {
	return &ObjectiveResponse{
		ID:          obj.ID,
		Title:       obj.Title,
		Description: obj.Description,
		TeamID:      obj.TeamID,
		Status:      string(obj.Status),
		Progress:    okr.ObjectiveProgress(obj),
		StartDate:   obj.StartDate.Format("2006-01-02T15:04:05Z07:00"),
		EndDate:     obj.EndDate.Format("2006-01-02T15:04:05Z07:00"),
		DueDate:     obj.DueDate.Format("2006-01-02T15:04:05Z07:00"),
		CreatedAt:   obj.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   obj.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
