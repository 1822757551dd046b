package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"buddyverse/internal/app/ports"
	"buddyverse/internal/domain/buddy"
)

func openTestDB(t *testing.T) (SnapshotStore, EventRepo) {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "buddy.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSnapshotStore(db), NewEventRepo(db)
}

func TestOpen_CreatesAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buddy.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	var current int
	if err := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current); err != nil {
		t.Fatalf("read schema_migrations: %v", err)
	}
	if current != SchemaVersion {
		t.Fatalf("version mismatch: got=%d want=%d", current, SchemaVersion)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate should be a no-op: %v", err)
	}
}

func TestOpen_RejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestSnapshotStore_UpsertAndRemove(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestDB(t)

	if _, err := store.Load(ctx, "buddy-data"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Save(ctx, "buddy-data", []byte(`{"level":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, "buddy-data", []byte(`{"level":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.Load(ctx, "buddy-data")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"level":2}` {
		t.Fatalf("payload mismatch: got=%s want=%s", got, `{"level":2}`)
	}
	if err := store.Remove(ctx, "buddy-data"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := store.Load(ctx, "buddy-data"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
	if err := store.Remove(ctx, "buddy-data"); err != nil {
		t.Fatalf("removing an absent key should succeed: %v", err)
	}
}

func TestEventRepo_AppendAndList(t *testing.T) {
	ctx := context.Background()
	_, events := openTestDB(t)
	at := time.Date(2026, 3, 14, 9, 30, 0, 500, time.UTC)

	err := events.Append(ctx, []buddy.DomainEvent{
		{ID: "evt-1", Type: buddy.EventBuddyFed, OccurredAt: at, Payload: map[string]any{"xp": 20}},
		{ID: "evt-2", Type: buddy.EventLevelUp, OccurredAt: at, Payload: map[string]any{"level": 2}},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := events.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "evt-2" {
		t.Fatalf("expected newest event first, got %+v", got)
	}
	if !got[0].OccurredAt.Equal(at) {
		t.Fatalf("occurred_at mismatch: got=%v want=%v", got[0].OccurredAt, at)
	}
	if got[0].Payload["level"] != float64(2) {
		t.Fatalf("payload mismatch: got=%v", got[0].Payload)
	}

	all, err := events.List(ctx, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("count mismatch: got=%d want=2", len(all))
	}
}

func TestEventRepo_DuplicateIDConflicts(t *testing.T) {
	ctx := context.Background()
	_, events := openTestDB(t)
	evt := buddy.DomainEvent{ID: "evt-1", Type: buddy.EventBuddyFed, OccurredAt: time.Now(), Payload: map[string]any{}}

	if err := events.Append(ctx, []buddy.DomainEvent{evt}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := events.Append(ctx, []buddy.DomainEvent{evt}); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
