package service

import (
	"fmt"
	"time"

	apperrors "okr-tracker-backend/internal/errors"
	"okr-tracker-backend/internal/okr"
	"okr-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

// MemberService assembles the member-facing views over the teams the caller
// belongs to. The dashboard endpoint verifies store reachability up front so
// a broken database surfaces as unavailability instead of a partial page.
type MemberService struct {
	teamRepo   repository.TeamRepositoryInterface
	updateRepo repository.ProgressUpdateRepositoryInterface
	ping       func() error
}

// NewMemberService creates a new member service. ping checks the backing
// store and is called before dashboard assembly.
func NewMemberService(teamRepo repository.TeamRepositoryInterface, updateRepo repository.ProgressUpdateRepositoryInterface, ping func() error) *MemberService {
	return &MemberService{
		teamRepo:   teamRepo,
		updateRepo: updateRepo,
		ping:       ping,
	}
}

// PersonalObjective is an objective row in the member views. Progress is the
// average of derived key result percentages and Status uses the personal cut
// points, independent of the stored objective status.
type PersonalObjective struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	TeamID       uuid.UUID       `json:"team_id"`
	TeamName     string          `json:"team_name"`
	Progress     int             `json:"progress"`
	Status       okr.Status      `json:"status"`
	DueDate      string          `json:"due_date"`
	DaysUntilDue int             `json:"days_until_due"`
	IsOverdue    bool            `json:"is_overdue"`
	KeyResults   []KeyResultView `json:"key_results"`
}

// MemberDashboard is the member's landing view
type MemberDashboard struct {
	TeamCount       int                 `json:"team_count"`
	ObjectiveCount  int                 `json:"objective_count"`
	AverageProgress int                 `json:"average_progress"`
	Objectives      []PersonalObjective `json:"objectives"`
}

// UpdateFeedEntry is one row of the member's update history. ChangeType
// compares the update's derived percentage against the key result's progress
// as stored right now, so the newest entry for a key result usually reads as
// no_change.
type UpdateFeedEntry struct {
	ID             uuid.UUID      `json:"id"`
	KeyResultID    uuid.UUID      `json:"key_result_id"`
	KeyResultTitle string         `json:"key_result_title"`
	NewValue       float64        `json:"new_value"`
	NewProgress    int            `json:"new_progress"`
	ChangeType     okr.ChangeType `json:"change_type"`
	Comment        string         `json:"comment"`
	CreatedAt      string         `json:"created_at"`
}

// GetDashboard assembles the member dashboard. A failed store ping returns
// ErrStoreUnavailable before any query runs.
func (s *MemberService) GetDashboard(userID uuid.UUID) (*MemberDashboard, error) {
	if err := s.ping(); err != nil {
		return nil, apperrors.ErrStoreUnavailable
	}

	objectives, teamCount, err := s.personalObjectives(userID)
	if err != nil {
		return nil, err
	}

	var allProgress []int
	for _, obj := range objectives {
		for _, kr := range obj.KeyResults {
			allProgress = append(allProgress, kr.Progress)
		}
	}

	return &MemberDashboard{
		TeamCount:       teamCount,
		ObjectiveCount:  len(objectives),
		AverageProgress: okr.AverageProgress(allProgress),
		Objectives:      objectives,
	}, nil
}

// ListObjectives returns every objective of the member's teams
func (s *MemberService) ListObjectives(userID uuid.UUID) ([]PersonalObjective, error) {
	objectives, _, err := s.personalObjectives(userID)
	if err != nil {
		return nil, err
	}
	return objectives, nil
}

// GetUpdates returns the member's newest progress updates
func (s *MemberService) GetUpdates(userID uuid.UUID, limit int) ([]UpdateFeedEntry, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	updates, err := s.updateRepo.GetRecentByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load updates: %w", err)
	}

	entries := make([]UpdateFeedEntry, len(updates))
	for i, u := range updates {
		newProgress := okr.KeyResultProgress(u.NewValue, u.KeyResult.TargetValue)
		entries[i] = UpdateFeedEntry{
			ID:             u.ID,
			KeyResultID:    u.KeyResultID,
			KeyResultTitle: u.KeyResult.Title,
			NewValue:       u.NewValue,
			NewProgress:    newProgress,
			ChangeType:     okr.ClassifyChange(newProgress, u.KeyResult.Progress),
			Comment:        u.Comment,
			CreatedAt:      u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return entries, nil
}

// personalObjectives loads the member's teams and flattens their objectives
// into view rows
func (s *MemberService) personalObjectives(userID uuid.UUID) ([]PersonalObjective, int, error) {
	teams, err := s.teamRepo.GetForUser(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load teams: %w", err)
	}

	now := time.Now()
	objectives := []PersonalObjective{}
	for _, team := range teams {
		for _, obj := range team.Objectives {
			keyResults := make([]KeyResultView, len(obj.KeyResults))
			progressValues := make([]int, len(obj.KeyResults))
			for i, kr := range obj.KeyResults {
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

			progress := okr.AverageProgress(progressValues)
			objectives = append(objectives, PersonalObjective{
				ID:           obj.ID,
				Title:        obj.Title,
				Description:  obj.Description,
				TeamID:       team.ID,
				TeamName:     team.Name,
				Progress:     progress,
				Status:       okr.ClassifyPersonalStatus(progress),
				DueDate:      obj.DueDate.Format("2006-01-02T15:04:05Z07:00"),
				DaysUntilDue: okr.DaysUntilDue(obj.DueDate, now),
				IsOverdue:    okr.IsOverdue(obj.DueDate, now),
				KeyResults:   keyResults,
			})
		}
	}

	return objectives, len(teams), nil
}
