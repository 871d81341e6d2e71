package service

import (
	"fmt"
	"strings"
	"time"

	"memorizer/internal/domain"
	"memorizer/internal/repository"
)

// SettingsService handles language and reminder preferences
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the user's settings
func (s *SettingsService) Get(userID int64) (domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(userID)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// SetLanguage stores the interface language given by its code
func (s *SettingsService) SetLanguage(userID int64, code string) (domain.Language, error) {
	if err := validate.Struct(languageInput{Language: code}); err != nil {
		return "", ErrInvalidLanguage
	}

	lang := domain.ParseLanguage(code)
	if err := s.settingsRepo.SaveLanguage(userID, lang); err != nil {
		return "", fmt.Errorf("failed to save language: %w", err)
	}
	return lang, nil
}

// SetReminderTime stores the daily reminder time and enables the reminder
func (s *SettingsService) SetReminderTime(userID int64, hour, minute int) error {
	if err := validate.Struct(reminderInput{Hour: hour, Minute: minute}); err != nil {
		return ErrInvalidTime
	}

	if err := s.settingsRepo.SaveReminder(userID, true, hour, minute); err != nil {
		return fmt.Errorf("failed to save reminder: %w", err)
	}
	return nil
}

// EnableReminder switches the daily reminder, keeping its time
func (s *SettingsService) EnableReminder(userID int64, enabled bool) (domain.Settings, error) {
	settings, err := s.Get(userID)
	if err != nil {
		return domain.Settings{}, err
	}

	if err := s.settingsRepo.SaveReminder(userID, enabled, settings.ReminderHour, settings.ReminderMinute); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to save reminder: %w", err)
	}

	settings.ReminderEnabled = enabled
	return settings, nil
}

// ParseReminderTime parses "HH:MM" or "H:MM" in 24-hour format
func ParseReminderTime(value string) (int, int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, 0, ErrInvalidTime
	}
	return t.Hour(), t.Minute(), nil
}
