package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// EveryMinute is the reminder check schedule
const EveryMinute = "* * * * *"

// ReminderSender sends the reminders due at a moment
type ReminderSender interface {
	SendDue(now time.Time) (int, error)
}

// Scheduler runs the reminder check on a cron schedule
type Scheduler struct {
	cron     *cron.Cron
	sender   ReminderSender
	logger   *zap.Logger
	now      func() time.Time
	location *time.Location
}

// New creates a scheduler firing in loc
func New(sender ReminderSender, loc *time.Location, logger *zap.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		sender:   sender,
		logger:   logger,
		now:      time.Now,
		location: loc,
	}
}

// Start registers the reminder job and starts the cron loop
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(EveryMinute, s.runReminders); err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Reminder scheduler started", zap.String("timezone", s.location.String()))
	return nil
}

// Stop stops scheduling and waits for a running job until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()

	select {
	case <-done.Done():
		s.logger.Info("Reminder scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("Reminder scheduler stop timed out", zap.Error(ctx.Err()))
	}
}

func (s *Scheduler) runReminders() {
	// cron fires at the start of the minute; truncate away scheduling jitter
	now := s.now().Truncate(time.Minute)

	sent, err := s.sender.SendDue(now)
	if err != nil {
		s.logger.Error("Failed to send reminders", zap.Error(err))
		return
	}

	if sent > 0 {
		s.logger.Debug("Reminder run finished", zap.Int("sent", sent))
	}
}
