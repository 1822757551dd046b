package ports

import (
	"context"
	"time"
)

type Reminder struct {
	BuddyName     string
	CurrentStreak int
	Day           time.Time
}

type Notifier interface {
	Notify(ctx context.Context, reminder Reminder) error
}
