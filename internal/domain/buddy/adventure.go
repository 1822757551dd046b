package buddy

import "time"

type AdventureResult struct {
	Buddy     Buddy
	Adventure *Adventure
	Events    []DomainEvent
	Status    Status
}

// DefaultAdventures is the built-in catalog.
var DefaultAdventures = []AdventureDefinition{
	{
		ID:                "forest",
		Name:              "Forest Walk",
		Description:       "A peaceful stroll through the enchanted forest",
		DurationMinutes:   30,
		RewardXP:          50,
		Emoji:             "🌳",
		RequiredLevel:     1,
		RequiredHappiness: 30,
	},
	{
		ID:                "meadow",
		Name:              "Flower Meadow",
		Description:       "Collect colorful flowers on the sunny meadow",
		DurationMinutes:   45,
		RewardXP:          75,
		Emoji:             "🌸",
		RequiredLevel:     3,
		RequiredHappiness: 50,
	},
	{
		ID:                "mountain",
		Name:              "Mountain Hike",
		Description:       "Climb the peaks and enjoy the view",
		DurationMinutes:   90,
		RewardXP:          150,
		Emoji:             "🏔️",
		RequiredLevel:     5,
		RequiredHappiness: 70,
	},
	{
		ID:                "ocean",
		Name:              "Ocean Voyage",
		Description:       "Discover the secrets of the blue ocean",
		DurationMinutes:   120,
		RewardXP:          200,
		Emoji:             "🌊",
		RequiredLevel:     8,
		RequiredHappiness: 80,
	},
}

// MeetsRequirements reports whether b may start def.
func MeetsRequirements(b Buddy, def AdventureDefinition) bool {
	return b.Level >= def.RequiredLevel && b.Happiness >= def.RequiredHappiness
}

func StartAdventure(b Buddy, current *Adventure, def AdventureDefinition, now time.Time) AdventureResult {
	if current != nil {
		return AdventureResult{Buddy: b, Adventure: current, Status: StatusAdventureActive}
	}
	if !MeetsRequirements(b, def) {
		return AdventureResult{Buddy: b, Status: StatusRequirementsNotMet}
	}
	adv := &Adventure{
		ID:              def.ID,
		Name:            def.Name,
		Description:     def.Description,
		DurationMinutes: def.DurationMinutes,
		StartTime:       now,
		RewardXP:        def.RewardXP,
		Emoji:           def.Emoji,
	}
	return AdventureResult{
		Buddy:     b,
		Adventure: adv,
		Status:    StatusOK,
		Events: []DomainEvent{{
			Type:       EventAdventureStarted,
			OccurredAt: now,
			Payload: map[string]any{
				"adventure_id":     adv.ID,
				"duration_minutes": adv.DurationMinutes,
				"reward_xp":        adv.RewardXP,
			},
		}},
	}
}

// Progress is the completion percentage in [0, 100]; zero when idle.
func Progress(a *Adventure, now time.Time) float64 {
	if a == nil {
		return 0
	}
	total := time.Duration(a.DurationMinutes) * time.Minute
	if total <= 0 {
		return 100
	}
	elapsed := now.Sub(a.StartTime)
	if elapsed <= 0 {
		return 0
	}
	pct := float64(elapsed.Milliseconds()) / float64(total.Milliseconds()) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

func CompleteAdventure(b Buddy, current *Adventure, now time.Time) AdventureResult {
	if current == nil {
		return AdventureResult{Buddy: b, Status: StatusNoAdventure}
	}
	if Progress(current, now) < 100 {
		return AdventureResult{Buddy: b, Adventure: current, Status: StatusStillInProgress}
	}
	next := b
	next.Happiness = addCapped(next.Happiness, AdventureHappinessGain)
	next, levelEvents := GrantExperience(next, current.RewardXP, now)
	events := []DomainEvent{{
		Type:       EventAdventureCompleted,
		OccurredAt: now,
		Payload: map[string]any{
			"adventure_id": current.ID,
			"reward_xp":    current.RewardXP,
		},
	}}
	return AdventureResult{
		Buddy:  next,
		Events: append(events, levelEvents...),
		Status: StatusOK,
	}
}
