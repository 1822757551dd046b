package scheduler

import (
	"context"
	"sync"
	"time"

	"buddyverse/internal/app/companion"
	"buddyverse/internal/app/ports"
	"buddyverse/internal/domain/buddy"
	"buddyverse/internal/platform/logger"
)

type Companion interface {
	Tick(ctx context.Context) (companion.Outcome, error)
	Snapshot() companion.State
}

// Scheduler drives passive decay and the daily check-in reminder.
type Scheduler struct {
	companion Companion
	notifier  ports.Notifier
	log       *logger.Logger
	interval  time.Duration
	now       func() time.Time
	loc       *time.Location

	mu           sync.Mutex
	lastNotified string
	stopOnce     sync.Once
	stopChan     chan struct{}
}

type Options struct {
	Notifier ports.Notifier
	Logger   *logger.Logger
	Interval time.Duration
	Now      func() time.Time
	// Location decides where a calendar day starts for reminders.
	Location *time.Location
}

func New(c Companion, opts Options) *Scheduler {
	s := &Scheduler{
		companion: c,
		notifier:  opts.Notifier,
		log:       opts.Logger,
		interval:  opts.Interval,
		now:       opts.Now,
		loc:       opts.Location,
		stopChan:  make(chan struct{}),
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	if s.interval <= 0 {
		s.interval = buddy.DefaultDecayInterval
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	return s
}

// Start blocks until ctx is done or Stop is called. Call in a goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.run(ctx, ticker.C)
}

func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

func (s *Scheduler) run(ctx context.Context, ticks <-chan time.Time) {
	s.log.Info("scheduler started, decay every %s", s.interval)
	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped by context")
			return
		case <-s.stopChan:
			s.log.Info("scheduler stopped")
			return
		case <-ticks:
			s.Step(ctx)
		}
	}
}

// Step runs one decay tick and then the reminder check.
func (s *Scheduler) Step(ctx context.Context) {
	out, err := s.companion.Tick(ctx)
	if err != nil {
		s.log.Error("decay tick: %v", err)
	} else if out.Committed {
		s.log.Info("decay applied: health=%d happiness=%d", out.State.Buddy.Health, out.State.Buddy.Happiness)
	}
	s.remind(ctx)
}

// remind notifies at most once per calendar day, and only while a check-in
// is open.
func (s *Scheduler) remind(ctx context.Context) {
	if s.notifier == nil {
		return
	}
	now := s.now().In(s.loc)
	day := now.Format("2006-01-02")

	s.mu.Lock()
	defer s.mu.Unlock()
	if day == s.lastNotified {
		return
	}
	st := s.companion.Snapshot()
	if _, gated := buddy.CheckInRemaining(st.Streak, now); gated {
		return
	}
	err := s.notifier.Notify(ctx, ports.Reminder{
		BuddyName:     st.Buddy.Name,
		CurrentStreak: st.Streak.Current,
		Day:           time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc),
	})
	if err != nil {
		s.log.Warn("check-in reminder: %v", err)
		return
	}
	s.lastNotified = day
}
