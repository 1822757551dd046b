package companion

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"buddyverse/internal/app/ports"
	"buddyverse/internal/app/snapshot"
	"buddyverse/internal/domain/buddy"
	"buddyverse/internal/platform/logger"
)

type Options struct {
	Gateway snapshot.Gateway
	Events  ports.EventRepository
	Catalog ports.AdventureCatalog
	Metrics ports.ActionMetrics
	Logger  *logger.Logger

	// DefaultName names a buddy created on first run.
	DefaultName string
	Now         func() time.Time
	// Hue picks the color of a first-run buddy.
	Hue   func() int
	NewID func() string
}

// Service is the single writer of buddy state. Every mutation, including
// decay ticks, runs under mu against the latest committed State.
type Service struct {
	gateway snapshot.Gateway
	events  ports.EventRepository
	catalog ports.AdventureCatalog
	metrics ports.ActionMetrics
	log     *logger.Logger
	now     func() time.Time
	newID   func() string
	tracer  trace.Tracer

	mu       sync.Mutex
	state    State
	revision uint64

	persistMu sync.Mutex
	persisted uint64
}

// New loads the durable snapshot, falling back to a fresh buddy, and writes
// the resolved state back so first-run values such as the hue stay fixed.
// A store that cannot be read fails New and nothing is written.
func New(ctx context.Context, opts Options) (*Service, error) {
	if opts.Gateway.Store == nil {
		return nil, errors.New("companion: snapshot store is required")
	}
	if opts.Catalog == nil {
		return nil, errors.New("companion: adventure catalog is required")
	}
	s := &Service{
		gateway: opts.Gateway,
		events:  opts.Events,
		catalog: opts.Catalog,
		metrics: opts.Metrics,
		log:     opts.Logger,
		now:     opts.Now,
		newID:   opts.NewID,
		tracer:  otel.Tracer("buddyverse/internal/app/companion"),
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	hue := opts.Hue
	if hue == nil {
		hue = func() int { return rand.IntN(buddy.HueRange) }
	}

	now := s.now()
	b, errB := s.gateway.LoadBuddy(ctx, buddy.NewBuddy(opts.DefaultName, hue(), now))
	st, errS := s.gateway.LoadStreak(ctx, buddy.NewStreak(now))
	adv, errA := s.gateway.LoadAdventure(ctx)
	if err := errors.Join(errB, errS, errA); err != nil {
		return nil, fmt.Errorf("companion: load state: %w", err)
	}
	s.state = State{Buddy: b, Streak: st, Adventure: adv}
	s.revision = 1
	s.log.Info("loaded buddy %q level=%d stage=%s", s.state.Buddy.Name, s.state.Buddy.Level, s.state.Buddy.Stage)
	s.persist(ctx, s.revision, s.state.clone(), nil)
	return s, nil
}

// Snapshot returns a copy of the latest committed state.
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Current returns the buddy and its active adventure, nil when idle, read
// under one lock so they agree.
func (s *Service) Current() (buddy.Buddy, *buddy.Adventure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state.clone()
	return st.Buddy, st.Adventure
}

func (s *Service) Now() time.Time {
	return s.now()
}

// AdventureProgress is the active adventure's completion in [0, 100].
func (s *Service) AdventureProgress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buddy.Progress(s.state.Adventure, s.now())
}

// CheckInRemaining reports whether a check-in is allowed right now.
func (s *Service) CheckInRemaining() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buddy.CheckInRemaining(s.state.Streak, s.now())
}

func (s *Service) Feed(ctx context.Context) (Outcome, error) {
	return s.apply(ctx, buddy.ActionFeed, func(st State, now time.Time) step {
		return fromCare(st, buddy.Feed(st.Buddy, now))
	})
}

func (s *Service) Play(ctx context.Context) (Outcome, error) {
	return s.apply(ctx, buddy.ActionPlay, func(st State, now time.Time) step {
		return fromCare(st, buddy.Play(st.Buddy, now))
	})
}

func (s *Service) Pet(ctx context.Context) (Outcome, error) {
	return s.apply(ctx, buddy.ActionPet, func(st State, now time.Time) step {
		return fromCare(st, buddy.Pet(st.Buddy, now))
	})
}

func (s *Service) CheckIn(ctx context.Context) (Outcome, error) {
	return s.apply(ctx, buddy.ActionCheckIn, func(st State, now time.Time) step {
		res := buddy.CheckIn(st.Buddy, st.Streak, now)
		st.Buddy = res.Buddy
		st.Streak = res.Streak
		return step{next: st, status: res.Status, events: res.Events, remaining: res.Remaining}
	})
}

func (s *Service) StartAdventure(ctx context.Context, adventureID string) (Outcome, error) {
	if adventureID == "" {
		s.recordFailure(buddy.ActionStartAdventure)
		return Outcome{}, &InvalidFieldError{Field: "adventure_id", Reason: "is required"}
	}
	def, err := s.catalog.Get(ctx, adventureID)
	if err != nil {
		s.recordFailure(buddy.ActionStartAdventure)
		if errors.Is(err, ports.ErrNotFound) {
			return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownAdventure, adventureID)
		}
		return Outcome{}, err
	}
	return s.apply(ctx, buddy.ActionStartAdventure, func(st State, now time.Time) step {
		res := buddy.StartAdventure(st.Buddy, st.Adventure, def, now)
		st.Adventure = res.Adventure
		return step{next: st, status: res.Status, events: res.Events}
	})
}

func (s *Service) CompleteAdventure(ctx context.Context) (Outcome, error) {
	return s.apply(ctx, buddy.ActionCompleteAdventure, func(st State, now time.Time) step {
		res := buddy.CompleteAdventure(st.Buddy, st.Adventure, now)
		st.Buddy = res.Buddy
		st.Adventure = res.Adventure
		return step{next: st, status: res.Status, events: res.Events}
	})
}

func (s *Service) Rename(ctx context.Context, name string) (Outcome, error) {
	normalized, ok := buddy.NormalizeName(name)
	if !ok {
		s.recordFailure(buddy.ActionRename)
		return Outcome{}, &InvalidFieldError{Field: "name", Reason: fmt.Sprintf("must be 1-%d characters", buddy.MaxNameRunes)}
	}
	return s.apply(ctx, buddy.ActionRename, func(st State, now time.Time) step {
		prev := st.Buddy.Name
		if prev == normalized {
			return step{next: st, status: buddy.StatusOK}
		}
		st.Buddy.Name = normalized
		return step{next: st, status: buddy.StatusOK, events: []buddy.DomainEvent{
			cosmeticEvent(buddy.EventBuddyRenamed, prev, normalized, now),
		}}
	})
}

func (s *Service) SetBuddyType(ctx context.Context, t buddy.BuddyType) (Outcome, error) {
	if !t.Valid() {
		s.recordFailure(buddy.ActionSetBuddyType)
		return Outcome{}, &InvalidFieldError{Field: "buddy_type", Reason: fmt.Sprintf("unknown value %q", t)}
	}
	return s.apply(ctx, buddy.ActionSetBuddyType, func(st State, now time.Time) step {
		prev := st.Buddy.BuddyType
		if prev == t {
			return step{next: st, status: buddy.StatusOK}
		}
		st.Buddy.BuddyType = t
		return step{next: st, status: buddy.StatusOK, events: []buddy.DomainEvent{
			cosmeticEvent(buddy.EventBuddyTypeChanged, string(prev), string(t), now),
		}}
	})
}

func (s *Service) SetClothing(ctx context.Context, c buddy.Clothing) (Outcome, error) {
	if !c.Valid() {
		s.recordFailure(buddy.ActionSetClothing)
		return Outcome{}, &InvalidFieldError{Field: "clothing", Reason: fmt.Sprintf("unknown value %q", c)}
	}
	return s.apply(ctx, buddy.ActionSetClothing, func(st State, now time.Time) step {
		prev := st.Buddy.Clothing
		if prev == c {
			return step{next: st, status: buddy.StatusOK}
		}
		st.Buddy.Clothing = c
		return step{next: st, status: buddy.StatusOK, events: []buddy.DomainEvent{
			cosmeticEvent(buddy.EventClothingChanged, string(prev), string(c), now),
		}}
	})
}

// Tick applies one round of passive decay. A tick that changes nothing is
// neither committed nor saved.
func (s *Service) Tick(ctx context.Context) (Outcome, error) {
	return s.apply(ctx, buddy.ActionDecay, func(st State, now time.Time) step {
		res := buddy.ApplyDecay(st.Buddy, now)
		st.Buddy = res.Buddy
		return step{next: st, status: buddy.StatusOK, events: res.Events}
	})
}

type transition func(st State, now time.Time) step

func (s *Service) apply(ctx context.Context, action buddy.ActionType, fn transition) (Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "companion."+string(action))
	defer span.End()

	s.mu.Lock()
	now := s.now()
	st := fn(s.state.clone(), now)
	committed := st.commits()
	var rev uint64
	if committed {
		for i := range st.events {
			st.events[i].ID = s.newID()
		}
		s.state = st.next
		s.revision++
		rev = s.revision
	}
	current := s.state.clone()
	s.mu.Unlock()

	span.SetAttributes(
		attribute.String("buddy.action", string(action)),
		attribute.String("buddy.status", string(st.status)),
		attribute.Bool("buddy.committed", committed),
	)
	if committed {
		for _, evt := range st.events {
			s.log.Event(evt.Type, evt.ID, fmt.Sprintf("%v", evt.Payload))
		}
		s.persist(ctx, rev, current, st.events)
	}
	if committed || action != buddy.ActionDecay {
		s.recordOutcome(action, st.status)
	}

	return Outcome{
		Action:    action,
		Status:    st.status,
		Committed: committed,
		Remaining: st.remaining,
		State:     current,
		Events:    st.events,
	}, nil
}

func fromCare(st State, res buddy.CareResult) step {
	st.Buddy = res.Buddy
	return step{next: st, status: res.Status, events: res.Events, remaining: res.Remaining}
}

func cosmeticEvent(eventType, from, to string, now time.Time) buddy.DomainEvent {
	return buddy.DomainEvent{
		Type:       eventType,
		OccurredAt: now,
		Payload:    map[string]any{"from": from, "to": to},
	}
}

func (s *Service) recordOutcome(action buddy.ActionType, status buddy.Status) {
	if s.metrics != nil {
		s.metrics.RecordOutcome(action, status)
	}
}

func (s *Service) recordFailure(action buddy.ActionType) {
	if s.metrics != nil {
		s.metrics.RecordFailure(action)
	}
}
