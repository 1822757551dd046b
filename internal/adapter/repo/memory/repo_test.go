package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"buddyverse/internal/app/ports"
	"buddyverse/internal/domain/buddy"
)

func TestSnapshotStore_LoadSaveRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotStore(NewStore())

	if _, err := repo.Load(ctx, "buddy-data"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Save(ctx, "buddy-data", []byte(`{"level":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx, "buddy-data")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"level":1}` {
		t.Fatalf("payload mismatch: got=%s", got)
	}
	got[0] = 'X'
	again, _ := repo.Load(ctx, "buddy-data")
	if string(again) != `{"level":1}` {
		t.Fatalf("stored payload aliased caller slice")
	}
	if err := repo.Remove(ctx, "buddy-data"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := repo.Load(ctx, "buddy-data"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestEventRepo_ListNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepo(NewStore())
	base := time.Unix(1700000000, 0)

	for i, typ := range []string{buddy.EventBuddyFed, buddy.EventBuddyPlayed, buddy.EventBuddyPetted} {
		evt := buddy.DomainEvent{ID: typ, Type: typ, OccurredAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repo.Append(ctx, []buddy.DomainEvent{evt}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("count mismatch: got=%d want=2", len(got))
	}
	if got[0].Type != buddy.EventBuddyPetted || got[1].Type != buddy.EventBuddyPlayed {
		t.Fatalf("unexpected order: %s, %s", got[0].Type, got[1].Type)
	}

	all, _ := repo.List(ctx, 0)
	if len(all) != 3 {
		t.Fatalf("expected all events without limit, got %d", len(all))
	}
}

func TestEventRepo_DuplicateIDConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepo(NewStore())
	evt := buddy.DomainEvent{ID: "evt-1", Type: buddy.EventBuddyFed, OccurredAt: time.Unix(1700000000, 0)}

	if err := repo.Append(ctx, []buddy.DomainEvent{evt}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, []buddy.DomainEvent{evt}); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
