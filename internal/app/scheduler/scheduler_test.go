package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"buddyverse/internal/app/companion"
	"buddyverse/internal/app/ports"
	"buddyverse/internal/domain/buddy"
)

type fakeCompanion struct {
	mu    sync.Mutex
	ticks int
	state companion.State
}

func (f *fakeCompanion) Tick(context.Context) (companion.Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ticks++
	return companion.Outcome{Action: buddy.ActionDecay, Status: buddy.StatusOK, State: f.state}, nil
}

func (f *fakeCompanion) Snapshot() companion.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeCompanion) tickCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ticks
}

type recordingNotifier struct {
	reminders []ports.Reminder
}

func (n *recordingNotifier) Notify(_ context.Context, r ports.Reminder) error {
	n.reminders = append(n.reminders, r)
	return nil
}

func newState(lastCheckin time.Time) companion.State {
	return companion.State{
		Buddy:  buddy.NewBuddy("Mochi", 0, lastCheckin),
		Streak: buddy.Streak{Current: 2, Longest: 2, LastCheckin: lastCheckin, TotalDays: 2},
	}
}

func TestStep_NotifiesOncePerDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	fc := &fakeCompanion{state: newState(now.Add(-30 * time.Hour))}
	n := &recordingNotifier{}
	s := New(fc, Options{Notifier: n, Now: func() time.Time { return now }, Location: time.UTC})

	s.Step(context.Background())
	s.Step(context.Background())
	if len(n.reminders) != 1 {
		t.Fatalf("expected one reminder, got %d", len(n.reminders))
	}
	if n.reminders[0].BuddyName != "Mochi" || n.reminders[0].CurrentStreak != 2 {
		t.Fatalf("unexpected reminder: %+v", n.reminders[0])
	}

	now = now.Add(24 * time.Hour)
	s.Step(context.Background())
	if len(n.reminders) != 2 {
		t.Fatalf("expected a reminder on the next day, got %d", len(n.reminders))
	}
	if fc.tickCount() != 3 {
		t.Fatalf("tick count mismatch: got=%d want=3", fc.tickCount())
	}
}

func TestStep_SkipsReminderWhileCheckInGated(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	fc := &fakeCompanion{state: newState(now.Add(-2 * time.Hour))}
	n := &recordingNotifier{}
	s := New(fc, Options{Notifier: n, Now: func() time.Time { return now }, Location: time.UTC})

	s.Step(context.Background())
	if len(n.reminders) != 0 {
		t.Fatalf("expected no reminder while check-in is gated")
	}

	// Later the same day the check-in opens and the reminder fires.
	now = now.Add(10 * time.Hour)
	fc.state.Streak.LastCheckin = now.Add(-25 * time.Hour)
	s.Step(context.Background())
	if len(n.reminders) != 1 {
		t.Fatalf("expected reminder once check-in opens, got %d", len(n.reminders))
	}
}

func TestRun_TicksUntilStopped(t *testing.T) {
	fc := &fakeCompanion{state: newState(time.Now())}
	s := New(fc, Options{Interval: time.Hour})
	ticks := make(chan time.Time)
	done := make(chan struct{})

	go func() {
		s.run(context.Background(), ticks)
		close(done)
	}()
	ticks <- time.Now()
	ticks <- time.Now()
	s.Stop()
	s.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("scheduler did not stop")
	}
	if fc.tickCount() != 2 {
		t.Fatalf("tick count mismatch: got=%d want=2", fc.tickCount())
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := New(&fakeCompanion{}, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.run(ctx, make(chan time.Time))
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("scheduler did not stop on cancel")
	}
}
