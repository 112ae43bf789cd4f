package service

import (
	"fmt"
	"time"

	"okr-tracker-backend/internal/database/models"
	"okr-tracker-backend/internal/okr"
	"okr-tracker-backend/internal/repository"
)

// DashboardService assembles the admin dashboard aggregates
type DashboardService struct {
	userRepo      repository.UserRepositoryInterface
	teamRepo      repository.TeamRepositoryInterface
	objectiveRepo repository.ObjectiveRepositoryInterface
	keyResultRepo repository.KeyResultRepositoryInterface
	updateRepo    repository.ProgressUpdateRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(userRepo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, objectiveRepo repository.ObjectiveRepositoryInterface, keyResultRepo repository.KeyResultRepositoryInterface, updateRepo repository.ProgressUpdateRepositoryInterface) *DashboardService {
	return &DashboardService{
		userRepo:      userRepo,
		teamRepo:      teamRepo,
		objectiveRepo: objectiveRepo,
		keyResultRepo: keyResultRepo,
		updateRepo:    updateRepo,
	}
}

// DashboardStats is the system-wide snapshot on the admin dashboard.
// OverallProgress is the flat average over every key result in the system;
// RecentActivity counts progress updates over the trailing week and
// ActiveUsers counts distinct authors over the trailing month.
type DashboardStats struct {
	TotalUsers          int64      `json:"total_users"`
	TotalManagers       int64      `json:"total_managers"`
	TotalMembers        int64      `json:"total_members"`
	TotalTeams          int64      `json:"total_teams"`
	ActiveObjectives    int64      `json:"active_objectives"`
	CompletedObjectives int64      `json:"completed_objectives"`
	OverallProgress     int        `json:"overall_progress"`
	HealthScore         okr.Health `json:"health_score"`
	RecentActivity      int64      `json:"recent_activity"`
	ActiveUsers         int64      `json:"active_users"`
}

// GetStats assembles the admin dashboard snapshot
func (s *DashboardService) GetStats() (*DashboardStats, error) {
	totalUsers, err := s.userRepo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	totalManagers, err := s.userRepo.CountByRole(models.UserRoleManager)
	if err != nil {
		return nil, fmt.Errorf("failed to count managers: %w", err)
	}
	totalMembers, err := s.userRepo.CountByRole(models.UserRoleMember)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	totalTeams, err := s.teamRepo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count teams: %w", err)
	}
	activeObjectives, err := s.objectiveRepo.CountByStatus(models.ObjectiveStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to count active objectives: %w", err)
	}
	completedObjectives, err := s.objectiveRepo.CountByStatus(models.ObjectiveStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed objectives: %w", err)
	}

	progressValues, err := s.keyResultRepo.GetAllProgress()
	if err != nil {
		return nil, fmt.Errorf("failed to load key result progress: %w", err)
	}
	overall := okr.AverageProgress(progressValues)

	now := time.Now()
	recentActivity, err := s.updateRepo.CountSince(now.Add(-okr.DashboardActivityWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent updates: %w", err)
	}
	activeUsers, err := s.updateRepo.CountDistinctUsersSince(now.Add(-okr.UserActivityWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	return &DashboardStats{
		TotalUsers:          totalUsers,
		TotalManagers:       totalManagers,
		TotalMembers:        totalMembers,
		TotalTeams:          totalTeams,
		ActiveObjectives:    activeObjectives,
		CompletedObjectives: completedObjectives,
		OverallProgress:     overall,
		HealthScore:         okr.HealthScore(overall),
		RecentActivity:      recentActivity,
		ActiveUsers:         activeUsers,
	}, nil
}
