package lognotify

import (
	"context"

	"buddyverse/internal/app/ports"
	"buddyverse/internal/platform/logger"
)

// Notifier delivers check-in reminders as log lines.
type Notifier struct {
	Logger *logger.Logger
}

func (n Notifier) Notify(_ context.Context, r ports.Reminder) error {
	n.Logger.Info("reminder %s: %s is waiting for today's check-in (streak %d)",
		r.Day.Format("2006-01-02"), r.BuddyName, r.CurrentStreak)
	return nil
}
