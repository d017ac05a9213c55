package main

import (
	"calyx-crm-backend/internal/config"
	"calyx-crm-backend/internal/database"
	"calyx-crm-backend/internal/database/models"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Phone    string `yaml:"phone,omitempty"`
	TeamName string `yaml:"team_name,omitempty"`
}

type TeamData struct {
	Name          string           `yaml:"name"`
	Description   string           `yaml:"description"`
	ManagerEmail  string           `yaml:"manager_email"`
	TargetRevenue float64          `yaml:"target_revenue"`
	Members       []TeamMemberData `yaml:"members,omitempty"`
}

type TeamMemberData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type PipelineData struct {
	Name           string      `yaml:"name"`
	Description    string      `yaml:"description"`
	TeamName       string      `yaml:"team_name,omitempty"`
	CreatedByEmail string      `yaml:"created_by_email"`
	IsDefault      bool        `yaml:"is_default"`
	Stages         []StageData `yaml:"stages"`
}

type StageData struct {
	Name        string `yaml:"name"`
	Probability int    `yaml:"probability"`
	Color       string `yaml:"color,omitempty"`
	Order       int    `yaml:"order"`
}

type CustomerData struct {
	Name             string   `yaml:"name"`
	Email            string   `yaml:"email"`
	Phone            string   `yaml:"phone"`
	Company          string   `yaml:"company,omitempty"`
	Status           string   `yaml:"status"`
	Source           string   `yaml:"source"`
	SalespersonEmail string   `yaml:"salesperson_email,omitempty"`
	TeamName         string   `yaml:"team_name,omitempty"`
	Tags             []string `yaml:"tags,omitempty"`
	Notes            string   `yaml:"notes,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type PipelinesFile struct {
	Pipelines []PipelineData `yaml:"pipelines"`
}

type CustomersFile struct {
	Customers []CustomerData `yaml:"customers"`
}

func main() {
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

	pipelines, err := loadPipelines(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load pipelines: %w", err)
	}

	customers, err := loadCustomers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}

	// Create users first, teams reference them by email
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

	// Create teams and their memberships
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Backfill user team assignments now that teams exist
	for _, userData := range users {
		if userData.TeamName == "" {
			continue
		}
		team := teamMap[userData.TeamName]
		if team == nil {
			return fmt.Errorf("team %s not found for user %s", userData.TeamName, userData.Email)
		}
		user := userMap[userData.Email]
		if user.TeamID == nil || *user.TeamID != team.ID {
			if err := db.Model(user).Update("team_id", team.ID).Error; err != nil {
				return fmt.Errorf("failed to assign user %s to team %s: %w", userData.Email, userData.TeamName, err)
			}
		}
	}

	// Create pipelines with their stages
	pipelineCreated := 0
	for _, pipelineData := range pipelines {
		_, created, err := createPipeline(db, pipelineData, userMap, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create pipeline %s: %w", pipelineData.Name, err)
		}
		if created {
			pipelineCreated++
		}
	}
	log.Printf("📋 Pipelines: %d created, %d total", pipelineCreated, len(pipelines))

	// Create customers
	customerCreated := 0
	for _, customerData := range customers {
		_, created, err := createCustomer(db, customerData, userMap, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create customer %s: %w", customerData.Name, err)
		}
		if created {
			customerCreated++
		}
	}
	log.Printf("📋 Customers: %d created, %d total", customerCreated, len(customers))

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

func loadPipelines(dataDir string) ([]PipelineData, error) {
	var allPipelines []PipelineData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "pipelines") {
			var file PipelinesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPipelines = append(allPipelines, file.Pipelines...)
		}
		return nil
	})

	return allPipelines, err
}

func loadCustomers(dataDir string) ([]CustomerData, error) {
	var allCustomers []CustomerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "customers") {
			var file CustomersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCustomers = append(allCustomers, file.Customers...)
		}
		return nil
	})

	return allCustomers, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			settingsJSON, _ := json.Marshal(models.DefaultUserSettings())

			user = models.User{
				Name:         userData.Name,
				Email:        userData.Email,
				PasswordHash: string(hash),
				Role:         models.UserRole(userData.Role),
				Phone:        userData.Phone,
				Settings:     settingsJSON,
				IsActive:     true,
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

func createTeam(db *gorm.DB, teamData TeamData, userMap map[string]*models.User) (*models.Team, bool, error) {
	manager := userMap[teamData.ManagerEmail]
	if manager == nil {
		return nil, false, fmt.Errorf("manager %s not found for team %s", teamData.ManagerEmail, teamData.Name)
	}

	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				Name:          teamData.Name,
				Description:   teamData.Description,
				ManagerID:     manager.ID,
				TargetRevenue: teamData.TargetRevenue,
				IsActive:      true,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}

			for _, memberData := range teamData.Members {
				user := userMap[memberData.Email]
				if user == nil {
					return nil, false, fmt.Errorf("member %s not found for team %s", memberData.Email, teamData.Name)
				}
				membership := models.TeamMember{
					TeamID:   team.ID,
					UserID:   user.ID,
					Role:     models.TeamMemberRole(memberData.Role),
					JoinedAt: time.Now(),
				}
				if err := db.Where("team_id = ? AND user_id = ?", team.ID, user.ID).FirstOrCreate(&membership, membership).Error; err != nil {
					log.Printf("⚠️  Warning: failed to create team membership: %v", err)
				}
			}
			return &team, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	return &team, false, nil // created = false (existing)
}

func createPipeline(db *gorm.DB, pipelineData PipelineData, userMap map[string]*models.User, teamMap map[string]*models.Team) (*models.Pipeline, bool, error) {
	creator := userMap[pipelineData.CreatedByEmail]
	if creator == nil {
		return nil, false, fmt.Errorf("creator %s not found for pipeline %s", pipelineData.CreatedByEmail, pipelineData.Name)
	}

	var teamID *uuid.UUID
	if pipelineData.TeamName != "" {
		if team := teamMap[pipelineData.TeamName]; team != nil {
			teamID = &team.ID
		}
	}

	var pipeline models.Pipeline
	if err := db.Where("name = ?", pipelineData.Name).First(&pipeline).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			stages := make([]models.PipelineStage, 0, len(pipelineData.Stages))
			for _, stageData := range pipelineData.Stages {
				color := stageData.Color
				if color == "" {
					color = "#2196F3"
				}
				stages = append(stages, models.PipelineStage{
					Name:        stageData.Name,
					Probability: stageData.Probability,
					Color:       color,
					SortOrder:   stageData.Order,
					IsActive:    true,
				})
			}

			pipeline = models.Pipeline{
				Name:        pipelineData.Name,
				Description: pipelineData.Description,
				TeamID:      teamID,
				CreatedBy:   creator.ID,
				IsDefault:   pipelineData.IsDefault,
				IsActive:    true,
				Stages:      stages,
			}

			if err := db.Create(&pipeline).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create pipeline: %w", err)
			}
			return &pipeline, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query pipeline: %w", err)
		}
	}

	return &pipeline, false, nil // created = false (existing)
}

func createCustomer(db *gorm.DB, customerData CustomerData, userMap map[string]*models.User, teamMap map[string]*models.Team) (*models.Customer, bool, error) {
	var salespersonID *uuid.UUID
	if customerData.SalespersonEmail != "" {
		if user := userMap[customerData.SalespersonEmail]; user != nil {
			salespersonID = &user.ID
		}
	}

	var teamID *uuid.UUID
	if customerData.TeamName != "" {
		if team := teamMap[customerData.TeamName]; team != nil {
			teamID = &team.ID
		}
	}

	var customer models.Customer
	if err := db.Where("email = ?", customerData.Email).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			tagsJSON, _ := json.Marshal(customerData.Tags)

			customer = models.Customer{
				Name:          customerData.Name,
				Email:         customerData.Email,
				Phone:         customerData.Phone,
				Company:       customerData.Company,
				SalespersonID: salespersonID,
				TeamID:        teamID,
				Status:        models.CustomerStatus(customerData.Status),
				Source:        models.Source(customerData.Source),
				Tags:          tagsJSON,
				Notes:         customerData.Notes,
				IsActive:      true,
			}

			if err := db.Create(&customer).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create customer: %w", err)
			}
			return &customer, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query customer: %w", err)
		}
	}

	return &customer, false, nil // created = false (existing)
}
