package service

import (
	"fmt"
	"time"

	"memorizer/internal/i18n"
	"memorizer/internal/repository"

	"go.uber.org/zap"
)

// Notifier delivers a text message to a user
type Notifier interface {
	Notify(userID int64, text string) error
}

// ReminderService sends daily practice reminders
type ReminderService struct {
	settingsRepo repository.SettingsRepository
	notifier     Notifier
	location     *time.Location
	logger       *zap.Logger
}

// NewReminderService creates a reminder service; reminder times are
// interpreted in loc
func NewReminderService(
	settingsRepo repository.SettingsRepository,
	notifier Notifier,
	loc *time.Location,
	logger *zap.Logger,
) *ReminderService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReminderService{
		settingsRepo: settingsRepo,
		notifier:     notifier,
		location:     loc,
		logger:       logger,
	}
}

// SendDue notifies every user whose reminder is set to the minute of now
// and returns how many reminders were delivered
func (s *ReminderService) SendDue(now time.Time) (int, error) {
	now = now.In(s.location)

	due, err := s.settingsRepo.GetDueReminders(now.Hour(), now.Minute())
	if err != nil {
		return 0, fmt.Errorf("failed to load due reminders: %w", err)
	}

	sent := 0
	for _, settings := range due {
		text := i18n.Reminder(settings.Language)
		if err := s.notifier.Notify(settings.UserID, text); err != nil {
			s.logger.Warn("Failed to send reminder",
				zap.Int64("user_id", settings.UserID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	if len(due) > 0 {
		s.logger.Info("Reminders sent",
			zap.Int("due", len(due)),
			zap.Int("sent", sent),
		)
	}
	return sent, nil
}
