package ports

import (
	"context"

	"buddyverse/internal/domain/buddy"
)

// SnapshotStore is a durable key/value store of raw JSON documents.
// Load returns ErrNotFound when key has never been saved or was removed.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

type EventRepository interface {
	Append(ctx context.Context, events []buddy.DomainEvent) error
	// List returns the newest events first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]buddy.DomainEvent, error)
}
