package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"okr-tracker-backend/internal/config"
	"okr-tracker-backend/internal/database"
	"okr-tracker-backend/internal/database/models"
	"okr-tracker-backend/internal/okr"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	FullName string `yaml:"full_name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	IsActive *bool  `yaml:"is_active,omitempty"`
}

type TeamData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type MembershipData struct {
	TeamName string `yaml:"team_name"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
}

type ObjectiveData struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	TeamName    string          `yaml:"team_name"`
	Status      string          `yaml:"status,omitempty"`
	StartDate   time.Time       `yaml:"start_date,omitempty"`
	EndDate     time.Time       `yaml:"end_date,omitempty"`
	DueDate     time.Time       `yaml:"due_date"`
	KeyResults  []KeyResultData `yaml:"key_results,omitempty"`
}

type KeyResultData struct {
	Title        string    `yaml:"title"`
	TargetValue  float64   `yaml:"target_value"`
	CurrentValue float64   `yaml:"current_value,omitempty"`
	DueDate      time.Time `yaml:"due_date"`
}

type ProgressUpdateData struct {
	KeyResultTitle string  `yaml:"key_result_title"`
	Email          string  `yaml:"email"`
	NewValue       float64 `yaml:"new_value"`
	Comment        string  `yaml:"comment,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type MembershipsFile struct {
	Memberships []MembershipData `yaml:"memberships"`
}

type ObjectivesFile struct {
	Objectives []ObjectiveData `yaml:"objectives"`
}

type ProgressUpdatesFile struct {
	ProgressUpdates []ProgressUpdateData `yaml:"progress_updates"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	memberships, err := loadMemberships(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load memberships: %w", err)
	}

	objectives, err := loadObjectives(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load objectives: %w", err)
	}

	progressUpdates, err := loadProgressUpdates(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load progress updates: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create teams
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Create memberships
	membershipCreated := 0
	for _, membershipData := range memberships {
		_, created, err := createMembership(db, membershipData, teamMap, userMap)
		if err != nil {
			return fmt.Errorf("failed to create membership %s/%s: %w", membershipData.TeamName, membershipData.Email, err)
		}
		if created {
			membershipCreated++
		}
	}
	log.Printf("📋 Memberships: %d created, %d total", membershipCreated, len(memberships))

	// Create objectives with their key results
	keyResultMap := make(map[string]*models.KeyResult)
	objectiveCreated := 0
	keyResultCreated := 0
	for _, objectiveData := range objectives {
		_, objCreated, krCreated, err := createObjective(db, objectiveData, teamMap, keyResultMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create objective %s: %v", objectiveData.Title, err)
			continue // Continue with other objectives
		}
		if objCreated {
			objectiveCreated++
		}
		keyResultCreated += krCreated
	}
	log.Printf("📋 Objectives: %d created, %d total", objectiveCreated, len(objectives))
	log.Printf("📋 Key results: %d created", keyResultCreated)

	// Create progress update history last so it can reference key results
	updateCreated := 0
	for _, updateData := range progressUpdates {
		created, err := createProgressUpdate(db, updateData, keyResultMap, userMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create progress update for %s: %v", updateData.KeyResultTitle, err)
			continue // Continue with other updates
		}
		if created {
			updateCreated++
		}
	}
	log.Printf("📋 Progress updates: %d created, %d total", updateCreated, len(progressUpdates))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadMemberships(dataDir string) ([]MembershipData, error) {
	var allMemberships []MembershipData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "memberships") {
			var file MembershipsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMemberships = append(allMemberships, file.Memberships...)
		}
		return nil
	})

	return allMemberships, err
}

func loadObjectives(dataDir string) ([]ObjectiveData, error) {
	var allObjectives []ObjectiveData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "objectives") {
			var file ObjectivesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allObjectives = append(allObjectives, file.Objectives...)
		}
		return nil
	})

	return allObjectives, err
}

func loadProgressUpdates(dataDir string) ([]ProgressUpdateData, error) {
	var allUpdates []ProgressUpdateData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "progress_updates") {
			var file ProgressUpdatesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUpdates = append(allUpdates, file.ProgressUpdates...)
		}
		return nil
	})

	return allUpdates, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			role := models.UserRoleMember
			if userData.Role != "" {
				role = models.UserRole(userData.Role)
			}

			isActive := true
			if userData.IsActive != nil {
				isActive = *userData.IsActive
			}

			user = models.User{
				FullName:     userData.FullName,
				Email:        userData.Email,
				PasswordHash: string(hash),
				Role:         role,
				IsActive:     isActive,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				Name:        teamData.Name,
				Description: teamData.Description,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	return &team, false, nil // created = false (existing)
}

func createMembership(db *gorm.DB, membershipData MembershipData, teamMap map[string]*models.Team, userMap map[string]*models.User) (*models.TeamMembership, bool, error) {
	team := teamMap[membershipData.TeamName]
	if team == nil {
		return nil, false, fmt.Errorf("team %s not found for member %s", membershipData.TeamName, membershipData.Email)
	}

	user := userMap[membershipData.Email]
	if user == nil {
		return nil, false, fmt.Errorf("user %s not found for team %s", membershipData.Email, membershipData.TeamName)
	}

	var membership models.TeamMembership
	if err := db.Where("team_id = ? AND user_id = ?", team.ID, user.ID).First(&membership).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role := models.MembershipRoleMember
			if membershipData.Role != "" {
				role = models.MembershipRole(membershipData.Role)
			}

			membership = models.TeamMembership{
				TeamID: team.ID,
				UserID: user.ID,
				Role:   role,
			}

			if err := db.Create(&membership).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create membership: %w", err)
			}
			return &membership, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query membership: %w", err)
		}
	}

	return &membership, false, nil // created = false (existing)
}

func createObjective(db *gorm.DB, objectiveData ObjectiveData, teamMap map[string]*models.Team, keyResultMap map[string]*models.KeyResult) (*models.Objective, bool, int, error) {
	team := teamMap[objectiveData.TeamName]
	if team == nil {
		return nil, false, 0, fmt.Errorf("team %s not found for objective %s", objectiveData.TeamName, objectiveData.Title)
	}

	var objective models.Objective
	if err := db.Where("title = ? AND team_id = ?", objectiveData.Title, team.ID).First(&objective).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, 0, fmt.Errorf("failed to query objective: %w", err)
		}

		status := models.ObjectiveStatusActive
		if objectiveData.Status != "" {
			status = models.ObjectiveStatus(objectiveData.Status)
		}

		objective = models.Objective{
			Title:       objectiveData.Title,
			Description: objectiveData.Description,
			TeamID:      team.ID,
			Status:      status,
			StartDate:   objectiveData.StartDate,
			EndDate:     objectiveData.EndDate,
			DueDate:     objectiveData.DueDate,
		}

		if err := db.Create(&objective).Error; err != nil {
			return nil, false, 0, fmt.Errorf("failed to create objective: %w", err)
		}

		keyResultCreated := 0
		for _, krData := range objectiveData.KeyResults {
			keyResult := models.KeyResult{
				Title:        krData.Title,
				ObjectiveID:  objective.ID,
				TargetValue:  krData.TargetValue,
				CurrentValue: krData.CurrentValue,
				Progress:     okr.KeyResultProgress(krData.CurrentValue, krData.TargetValue),
				DueDate:      krData.DueDate,
			}
			if err := db.Create(&keyResult).Error; err != nil {
				log.Printf("⚠️  Warning: failed to create key result %s: %v", krData.Title, err)
				continue
			}
			keyResultMap[krData.Title] = &keyResult
			keyResultCreated++
		}

		return &objective, true, keyResultCreated, nil // created = true
	}

	// Existing objective: still index its key results for the update pass
	var existing []models.KeyResult
	if err := db.Where("objective_id = ?", objective.ID).Find(&existing).Error; err == nil {
		for i := range existing {
			keyResultMap[existing[i].Title] = &existing[i]
		}
	}

	return &objective, false, 0, nil // created = false (existing)
}

func createProgressUpdate(db *gorm.DB, updateData ProgressUpdateData, keyResultMap map[string]*models.KeyResult, userMap map[string]*models.User) (bool, error) {
	keyResult := keyResultMap[updateData.KeyResultTitle]
	if keyResult == nil {
		return false, fmt.Errorf("key result %s not found", updateData.KeyResultTitle)
	}

	user := userMap[updateData.Email]
	if user == nil {
		return false, fmt.Errorf("user %s not found", updateData.Email)
	}

	var existing models.ProgressUpdate
	err := db.Where("key_result_id = ? AND user_id = ? AND new_value = ?", keyResult.ID, user.ID, updateData.NewValue).First(&existing).Error
	if err != gorm.ErrRecordNotFound {
		if err != nil {
			return false, fmt.Errorf("failed to query progress update: %w", err)
		}
		return false, nil // created = false (existing)
	}

	update := models.ProgressUpdate{
		KeyResultID: keyResult.ID,
		UserID:      user.ID,
		NewValue:    updateData.NewValue,
		Comment:     updateData.Comment,
	}
	if err := db.Create(&update).Error; err != nil {
		return false, fmt.Errorf("failed to create progress update: %w", err)
	}

	// Keep the key result in sync with the latest logged value
	updates := map[string]interface{}{
		"current_value": updateData.NewValue,
		"progress":      okr.KeyResultProgress(updateData.NewValue, keyResult.TargetValue),
	}
	if err := db.Model(&models.KeyResult{}).Where("id = ?", keyResult.ID).Updates(updates).Error; err != nil {
		log.Printf("⚠️  Warning: failed to sync key result %s: %v", updateData.KeyResultTitle, err)
	}

	return true, nil // created = true
}
