package buddy

import "time"

type CareResult struct {
	Buddy     Buddy
	Events    []DomainEvent
	Status    Status
	Remaining time.Duration
}

// CooldownRemaining reports whether action is still gated at now and how
// long until it opens. Actions without a cooldown are never gated.
func CooldownRemaining(b Buddy, action ActionType, now time.Time) (time.Duration, bool) {
	cooldown, ok := ActionCooldownDurations[action]
	if !ok {
		return 0, false
	}
	elapsed := now.Sub(lastActionAt(b, action))
	if elapsed > cooldown {
		return 0, false
	}
	remaining := cooldown - elapsed
	if remaining <= 0 {
		remaining = time.Nanosecond
	}
	return remaining, true
}

func lastActionAt(b Buddy, action ActionType) time.Time {
	switch action {
	case ActionFeed:
		return b.LastFed
	case ActionPlay:
		return b.LastPlayed
	case ActionPet:
		return b.LastPetted
	default:
		return time.Time{}
	}
}

func Feed(b Buddy, now time.Time) CareResult {
	if remaining, gated := CooldownRemaining(b, ActionFeed, now); gated {
		return CareResult{Buddy: b, Status: StatusNotYetEligible, Remaining: remaining}
	}
	next := b
	next.Happiness = addCapped(next.Happiness, FeedHappinessGain)
	next.Health = addCapped(next.Health, FeedHealthGain)
	next.LastFed = now
	next.FeedCount++
	events := []DomainEvent{careEvent(EventBuddyFed, b, next, FeedXP, now)}
	return finishCare(next, events, FeedXP, now)
}

func Play(b Buddy, now time.Time) CareResult {
	if remaining, gated := CooldownRemaining(b, ActionPlay, now); gated {
		return CareResult{Buddy: b, Status: StatusNotYetEligible, Remaining: remaining}
	}
	next := b
	next.Happiness = addCapped(next.Happiness, PlayHappinessGain)
	next.Health = addCapped(next.Health, PlayHealthGain)
	next.LastPlayed = now
	next.PlayCount++
	events := []DomainEvent{careEvent(EventBuddyPlayed, b, next, PlayXP, now)}
	return finishCare(next, events, PlayXP, now)
}

// Pet also drives hatching: the third pet while still an egg hatches it,
// whatever the level.
func Pet(b Buddy, now time.Time) CareResult {
	if remaining, gated := CooldownRemaining(b, ActionPet, now); gated {
		return CareResult{Buddy: b, Status: StatusNotYetEligible, Remaining: remaining}
	}
	next := b
	next.Happiness = addCapped(next.Happiness, PetHappinessGain)
	next.LastPetted = now
	next.PetCount++
	events := []DomainEvent{careEvent(EventBuddyPetted, b, next, PetXP, now)}

	if next.Stage == StageEgg {
		next.EggPetCount++
		if next.EggPetCount >= EggPetsToHatch {
			next.Stage = StageBaby
			events = append(events,
				DomainEvent{
					Type:       EventBuddyHatched,
					OccurredAt: now,
					Payload:    map[string]any{"egg_pet_count": next.EggPetCount},
				},
				stageChangedEvent(StageEgg, StageBaby, "hatch", now),
			)
		}
	}
	return finishCare(next, events, PetXP, now)
}

func finishCare(next Buddy, events []DomainEvent, xp int, now time.Time) CareResult {
	next, levelEvents := GrantExperience(next, xp, now)
	return CareResult{
		Buddy:  next,
		Events: append(events, levelEvents...),
		Status: StatusOK,
	}
}

func careEvent(eventType string, before, after Buddy, xp int, now time.Time) DomainEvent {
	return DomainEvent{
		Type:       eventType,
		OccurredAt: now,
		Payload: map[string]any{
			"xp": xp,
			"state_before": map[string]any{
				"happiness": before.Happiness,
				"health":    before.Health,
			},
			"state_after": map[string]any{
				"happiness": after.Happiness,
				"health":    after.Health,
			},
		},
	}
}
