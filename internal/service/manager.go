package service

import (
	"fmt"
	"time"

	"okr-tracker-backend/internal/okr"
	"okr-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

// ManagerService assembles the manager dashboard over the teams the caller
// manages
type ManagerService struct {
	teamRepo   repository.TeamRepositoryInterface
	updateRepo repository.ProgressUpdateRepositoryInterface
}

// NewManagerService creates a new manager service
func NewManagerService(teamRepo repository.TeamRepositoryInterface, updateRepo repository.ProgressUpdateRepositoryInterface) *ManagerService {
	return &ManagerService{
		teamRepo:   teamRepo,
		updateRepo: updateRepo,
	}
}

// ManagedTeam is one team row on the manager dashboard
type ManagedTeam struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	MemberCount     int64      `json:"member_count"`
	ObjectiveCount  int        `json:"objective_count"`
	AverageProgress int        `json:"average_progress"`
	Status          okr.Status `json:"status"`
}

// TeamUpdateEntry is one recent progress update across the manager's teams
type TeamUpdateEntry struct {
	ID             uuid.UUID `json:"id"`
	KeyResultID    uuid.UUID `json:"key_result_id"`
	KeyResultTitle string    `json:"key_result_title"`
	UserName       string    `json:"user_name"`
	NewValue       float64   `json:"new_value"`
	Comment        string    `json:"comment"`
	CreatedAt      string    `json:"created_at"`
}

// ManagerDashboard is the manager's view: per-team rollups, combined
// objective count, team activity over the trailing month, and the newest
// updates logged against the managed teams' key results.
type ManagerDashboard struct {
	Teams           []ManagedTeam     `json:"teams"`
	TotalObjectives int               `json:"total_objectives"`
	AverageProgress int               `json:"average_progress"`
	RecentActivity  int64             `json:"recent_activity"`
	RecentUpdates   []TeamUpdateEntry `json:"recent_updates"`
}

// GetDashboard assembles the dashboard for one manager. A manager with no
// teams gets an empty dashboard rather than an error.
func (s *ManagerService) GetDashboard(managerID uuid.UUID) (*ManagerDashboard, error) {
	teams, err := s.teamRepo.GetManagedBy(managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load managed teams: %w", err)
	}

	teamIDs := make([]uuid.UUID, len(teams))
	rows := make([]ManagedTeam, len(teams))
	totalObjectives := 0
	var allProgress []int

	for i, team := range teams {
		teamIDs[i] = team.ID

		memberCount, err := s.teamRepo.CountMembers(team.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count members: %w", err)
		}

		progress := okr.TeamProgress(&team)
		for _, obj := range team.Objectives {
			for _, kr := range obj.KeyResults {
				allProgress = append(allProgress, kr.Progress)
			}
		}

		totalObjectives += len(team.Objectives)
		rows[i] = ManagedTeam{
			ID:              team.ID,
			Name:            team.Name,
			MemberCount:     memberCount,
			ObjectiveCount:  len(team.Objectives),
			AverageProgress: progress,
			Status:          okr.ClassifyDeliveryStatus(progress),
		}
	}

	recentActivity, err := s.updateRepo.CountForTeamsSince(teamIDs, time.Now().Add(-okr.UserActivityWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count team activity: %w", err)
	}

	updates, err := s.updateRepo.GetRecentForTeams(teamIDs, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent updates: %w", err)
	}

	entries := make([]TeamUpdateEntry, len(updates))
	for i, u := range updates {
		entries[i] = TeamUpdateEntry{
			ID:             u.ID,
			KeyResultID:    u.KeyResultID,
			KeyResultTitle: u.KeyResult.Title,
			UserName:       u.User.FullName,
			NewValue:       u.NewValue,
			Comment:        u.Comment,
			CreatedAt:      u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return &ManagerDashboard{
		Teams:           rows,
		TotalObjectives: totalObjectives,
		AverageProgress: okr.AverageProgress(allProgress),
		RecentActivity:  recentActivity,
		RecentUpdates:   entries,
	}, nil
}
