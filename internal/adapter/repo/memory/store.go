package memory

import (
	"sync"

	"buddyverse/internal/domain/buddy"
)

// Store keeps snapshots and the event log in process memory. Nothing
// survives a restart.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
	events    []buddy.DomainEvent
	eventIDs  map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		snapshots: make(map[string][]byte),
		eventIDs:  make(map[string]struct{}),
	}
}
