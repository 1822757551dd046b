package buddy

import "time"

type DecayResult struct {
	Buddy   Buddy
	Events  []DomainEvent
	Changed bool
}

// ApplyDecay runs one scheduler tick of passive decay. Stats already at or
// below their floor are left alone.
func ApplyDecay(b Buddy, now time.Time) DecayResult {
	next := b
	if now.Sub(b.LastFed) > HungerDecayAfter {
		next.Health = decayToward(next.Health, DecayHealthStep, DecayHealthFloor)
	}
	if now.Sub(b.LastPlayed) > BoredomDecayAfter {
		next.Happiness = decayToward(next.Happiness, DecayHappinessStep, DecayHappinessFloor)
	}
	if next.Health == b.Health && next.Happiness == b.Happiness {
		return DecayResult{Buddy: b}
	}
	return DecayResult{
		Buddy:   next,
		Changed: true,
		Events: []DomainEvent{{
			Type:       EventDecayApplied,
			OccurredAt: now,
			Payload: map[string]any{
				"health_delta":    next.Health - b.Health,
				"happiness_delta": next.Happiness - b.Happiness,
				"state_after": map[string]any{
					"happiness": next.Happiness,
					"health":    next.Health,
				},
			},
		}},
	}
}

func decayToward(v, step, floor int) int {
	if v <= floor {
		return v
	}
	v -= step
	if v < floor {
		return floor
	}
	return v
}
