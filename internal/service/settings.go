package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"calyx-crm-backend/internal/database/models"
	apperrors "calyx-crm-backend/internal/errors"
	"calyx-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsService manages per-user application settings
type SettingsService struct {
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewSettingsService creates a new settings service
func NewSettingsService(userRepo repository.UserRepositoryInterface, validator *validator.Validate) *SettingsService {
	return &SettingsService{userRepo: userRepo, validator: validator}
}

// UpdateSettingsRequest replaces the user's settings document
type UpdateSettingsRequest struct {
	Theme         string                      `json:"theme" validate:"required,oneof=light dark system"`
	Language      string                      `json:"language" validate:"required,min=2,max=10"`
	Notifications models.NotificationSettings `json:"notifications"`
}

// UpdateThemeRequest changes only the theme
type UpdateThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark system"`
}

// UpdateNotificationsRequest changes only the notification toggles
type UpdateNotificationsRequest struct {
	Push  *bool `json:"push,omitempty"`
	Email *bool `json:"email,omitempty"`
	SMS   *bool `json:"sms,omitempty"`
}

func (s *SettingsService) load(userID uuid.UUID) (*models.User, *models.UserSettings, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	settings := models.DefaultUserSettings()
	if len(user.Settings) > 0 {
		if err := json.Unmarshal(user.Settings, &settings); err != nil {
			return nil, nil, fmt.Errorf("failed to decode settings: %w", err)
		}
	}
	return user, &settings, nil
}

func (s *SettingsService) store(user *models.User, settings *models.UserSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	user.Settings = raw
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

// Get returns the user's settings, falling back to defaults when unset
func (s *SettingsService) Get(userID uuid.UUID) (*models.UserSettings, error) {
	_, settings, err := s.load(userID)
	return settings, err
}

// Update replaces the user's settings document
func (s *SettingsService) Update(userID uuid.UUID, req *UpdateSettingsRequest) (*models.UserSettings, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, _, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	settings := models.UserSettings{
		Theme:         req.Theme,
		Language:      req.Language,
		Notifications: req.Notifications,
	}
	if err := s.store(user, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateTheme changes the theme and keeps everything else
func (s *SettingsService) UpdateTheme(userID uuid.UUID, req *UpdateThemeRequest) (*models.UserSettings, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, settings, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	settings.Theme = req.Theme
	if err := s.store(user, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateNotifications changes only the supplied notification toggles
func (s *SettingsService) UpdateNotifications(userID uuid.UUID, req *UpdateNotificationsRequest) (*models.UserSettings, error) {
	user, settings, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	if req.Push != nil {
		settings.Notifications.Push = *req.Push
	}
	if req.Email != nil {
		settings.Notifications.Email = *req.Email
	}
	if req.SMS != nil {
		settings.Notifications.SMS = *req.SMS
	}

	if err := s.store(user, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
