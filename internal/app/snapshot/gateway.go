package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"buddyverse/internal/app/ports"
	"buddyverse/internal/domain/buddy"
	"buddyverse/internal/platform/logger"
)

const (
	KeyBuddy     = "buddy-data"
	KeyStreak    = "buddy-streaks"
	KeyAdventure = "buddy-adventure"
)

// ErrUnreadable marks a snapshot the store failed to read. Unlike an absent or
// corrupt snapshot it must not be replaced by a default, since the durable
// copy may still be intact.
var ErrUnreadable = errors.New("snapshot unreadable")

// Gateway maps typed buddy state onto a raw snapshot store. Absent, corrupt
// or invalid snapshots fall back to the caller's default; a failed read is
// returned as ErrUnreadable alongside the fallback.
type Gateway struct {
	Store  ports.SnapshotStore
	Logger *logger.Logger
}

func (g Gateway) LoadBuddy(ctx context.Context, fallback buddy.Buddy) (buddy.Buddy, error) {
	var out buddy.Buddy
	if ok, err := g.load(ctx, KeyBuddy, &out); !ok {
		return fallback, err
	}
	if out.BuddyType == "" {
		out.BuddyType = buddy.BuddyTypeDefault
	}
	if out.Clothing == "" {
		out.Clothing = buddy.ClothingNone
	}
	if !out.Valid() {
		g.log().Warn("snapshot %s violates invariants, using default", KeyBuddy)
		return fallback, nil
	}
	if stage := buddy.LaterStage(out.Stage, buddy.StageForLevel(out.Level)); stage != out.Stage {
		g.log().Warn("snapshot %s has stage %s below level %d, raising to %s", KeyBuddy, out.Stage, out.Level, stage)
		out.Stage = stage
	}
	return out, nil
}

func (g Gateway) LoadStreak(ctx context.Context, fallback buddy.Streak) (buddy.Streak, error) {
	var out buddy.Streak
	if ok, err := g.load(ctx, KeyStreak, &out); !ok {
		return fallback, err
	}
	if !out.Valid() {
		g.log().Warn("snapshot %s violates invariants, using default", KeyStreak)
		return fallback, nil
	}
	return out, nil
}

// LoadAdventure returns nil when no adventure is stored.
func (g Gateway) LoadAdventure(ctx context.Context) (*buddy.Adventure, error) {
	var out buddy.Adventure
	if ok, err := g.load(ctx, KeyAdventure, &out); !ok {
		return nil, err
	}
	if !out.Valid() {
		g.log().Warn("snapshot %s violates invariants, treating as idle", KeyAdventure)
		return nil, nil
	}
	return &out, nil
}

func (g Gateway) SaveBuddy(ctx context.Context, b buddy.Buddy) error {
	return g.save(ctx, KeyBuddy, b)
}

func (g Gateway) SaveStreak(ctx context.Context, s buddy.Streak) error {
	return g.save(ctx, KeyStreak, s)
}

// SaveAdventure removes the key when a is nil.
func (g Gateway) SaveAdventure(ctx context.Context, a *buddy.Adventure) error {
	if a == nil {
		return g.RemoveAdventure(ctx)
	}
	return g.save(ctx, KeyAdventure, a)
}

func (g Gateway) RemoveAdventure(ctx context.Context) error {
	if err := g.Store.Remove(ctx, KeyAdventure); err != nil {
		return fmt.Errorf("remove %s: %w", KeyAdventure, err)
	}
	return nil
}

func (g Gateway) load(ctx context.Context, key string, out any) (bool, error) {
	raw, err := g.Store.Load(ctx, key)
	if errors.Is(err, ports.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		g.log().Error("load %s: %v", key, err)
		return false, fmt.Errorf("%w: %s: %v", ErrUnreadable, key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		g.log().Warn("snapshot %s is corrupt (%v), using default", key, err)
		return false, nil
	}
	return true, nil
}

func (g Gateway) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := g.Store.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (g Gateway) log() *logger.Logger {
	if g.Logger == nil {
		return logger.Discard()
	}
	return g.Logger
}
