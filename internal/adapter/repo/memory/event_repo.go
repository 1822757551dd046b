package memory

import (
	"context"
	"fmt"

	"buddyverse/internal/app/ports"
	"buddyverse/internal/domain/buddy"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

// Append rejects the whole batch with ErrConflict if any id is already stored.
func (r EventRepo) Append(_ context.Context, events []buddy.DomainEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range events {
		if _, dup := r.store.eventIDs[e.ID]; dup {
			return fmt.Errorf("event %s: %w", e.ID, ports.ErrConflict)
		}
	}
	for _, e := range events {
		r.store.eventIDs[e.ID] = struct{}{}
		r.store.events = append(r.store.events, e)
	}
	return nil
}

func (r EventRepo) List(_ context.Context, limit int) ([]buddy.DomainEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	n := len(r.store.events)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]buddy.DomainEvent, 0, n)
	for i := len(r.store.events) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.store.events[i])
	}
	return out, nil
}
