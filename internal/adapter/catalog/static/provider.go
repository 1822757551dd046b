package staticcatalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"buddyverse/internal/app/ports"
	"buddyverse/internal/domain/buddy"
)

var ErrInvalidCatalog = errors.New("invalid adventure catalog")

// Provider serves a fixed list of adventure definitions.
type Provider struct {
	defs []buddy.AdventureDefinition
}

func Default() Provider {
	return Provider{defs: append([]buddy.AdventureDefinition(nil), buddy.DefaultAdventures...)}
}

// Load reads a JSON array of definitions from path. An empty path yields the
// built-in catalog.
func Load(path string) (Provider, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Provider{}, fmt.Errorf("read adventure catalog: %w", err)
	}
	var defs []buddy.AdventureDefinition
	if err := json.Unmarshal(raw, &defs); err != nil {
		return Provider{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := validate(defs); err != nil {
		return Provider{}, err
	}
	return Provider{defs: defs}, nil
}

func (p Provider) List(_ context.Context) ([]buddy.AdventureDefinition, error) {
	return append([]buddy.AdventureDefinition(nil), p.defs...), nil
}

func (p Provider) Get(_ context.Context, id string) (buddy.AdventureDefinition, error) {
	for _, def := range p.defs {
		if def.ID == id {
			return def, nil
		}
	}
	return buddy.AdventureDefinition{}, ports.ErrNotFound
}

func validate(defs []buddy.AdventureDefinition) error {
	if len(defs) == 0 {
		return fmt.Errorf("%w: no adventures", ErrInvalidCatalog)
	}
	seen := make(map[string]struct{}, len(defs))
	for i, def := range defs {
		if strings.TrimSpace(def.ID) == "" {
			return fmt.Errorf("%w: entry %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := seen[def.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, def.ID)
		}
		seen[def.ID] = struct{}{}
		if def.DurationMinutes <= 0 || def.RewardXP < 0 {
			return fmt.Errorf("%w: %q needs a positive duration and non-negative reward", ErrInvalidCatalog, def.ID)
		}
		if def.RequiredHappiness < 0 || def.RequiredHappiness > buddy.MaxStat {
			return fmt.Errorf("%w: %q required happiness out of range", ErrInvalidCatalog, def.ID)
		}
	}
	return nil
}
