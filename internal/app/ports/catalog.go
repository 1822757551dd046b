package ports

import (
	"context"

	"buddyverse/internal/domain/buddy"
)

type AdventureCatalog interface {
	List(ctx context.Context) ([]buddy.AdventureDefinition, error)
	// Get returns ErrNotFound for an unknown id.
	Get(ctx context.Context, id string) (buddy.AdventureDefinition, error)
}
