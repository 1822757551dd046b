package memory

import (
	"context"

	"buddyverse/internal/app/ports"
)

type SnapshotStore struct {
	store *Store
}

func NewSnapshotStore(store *Store) SnapshotStore {
	return SnapshotStore{store: store}
}

func (r SnapshotStore) Load(_ context.Context, key string) ([]byte, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	raw, ok := r.store.snapshots[key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return append([]byte(nil), raw...), nil
}

func (r SnapshotStore) Save(_ context.Context, key string, value []byte) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.snapshots[key] = append([]byte(nil), value...)
	return nil
}

func (r SnapshotStore) Remove(_ context.Context, key string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.snapshots, key)
	return nil
}
