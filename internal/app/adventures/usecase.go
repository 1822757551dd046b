package adventures

import (
	"context"

	"buddyverse/internal/app/ports"
	"buddyverse/internal/domain/buddy"
)

type BuddyReader interface {
	Current() (buddy.Buddy, *buddy.Adventure)
}

type Entry struct {
	buddy.AdventureDefinition
	CanStart bool `json:"canStart"`
	// Missing names the first unmet requirement: "adventure_active", "level"
	// or "happiness".
	Missing string `json:"missing,omitempty"`
}

type Response struct {
	Adventures []Entry `json:"adventures"`
}

type UseCase struct {
	Catalog ports.AdventureCatalog
	Buddy   BuddyReader
}

func (u UseCase) Execute(ctx context.Context) (Response, error) {
	defs, err := u.Catalog.List(ctx)
	if err != nil {
		return Response{}, err
	}
	b, active := u.Buddy.Current()
	out := make([]Entry, 0, len(defs))
	for _, def := range defs {
		entry := Entry{AdventureDefinition: def, CanStart: active == nil && buddy.MeetsRequirements(b, def)}
		switch {
		case active != nil:
			entry.Missing = string(buddy.StatusAdventureActive)
		case b.Level < def.RequiredLevel:
			entry.Missing = "level"
		case b.Happiness < def.RequiredHappiness:
			entry.Missing = "happiness"
		}
		out = append(out, entry)
	}
	return Response{Adventures: out}, nil
}
