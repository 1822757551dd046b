package buddy

import "time"

// StageForLevel maps a level to the stage it unlocks. Levels below LevelBaby
// stay in the egg until a hatch event.
func StageForLevel(level int) Stage {
	switch {
	case level >= LevelAdult:
		return StageAdult
	case level >= LevelTeen:
		return StageTeen
	case level >= LevelChild:
		return StageChild
	case level >= LevelBaby:
		return StageBaby
	default:
		return StageEgg
	}
}

// LaterStage returns whichever stage is further along.
func LaterStage(a, b Stage) Stage {
	if b.rank() > a.rank() {
		return b
	}
	return a
}

// NextExperienceThreshold grows a threshold by 1.5x, rounded down.
func NextExperienceThreshold(current int) int {
	next := current * ExperienceGrowthNumerator / ExperienceGrowthDenominator
	if next < current {
		return current
	}
	return next
}

// GrantExperience adds amount and resolves every level-up it causes.
func GrantExperience(b Buddy, amount int, now time.Time) (Buddy, []DomainEvent) {
	if amount <= 0 {
		return b, nil
	}
	next := b
	if next.ExperienceToNext < 1 {
		next.ExperienceToNext = DefaultExperienceToNext
	}
	next.Experience += amount

	events := make([]DomainEvent, 0, 2)
	for next.Experience >= next.ExperienceToNext {
		next.Experience -= next.ExperienceToNext
		next.Level++
		next.ExperienceToNext = NextExperienceThreshold(next.ExperienceToNext)
		events = append(events, DomainEvent{
			Type:       EventLevelUp,
			OccurredAt: now,
			Payload: map[string]any{
				"level":              next.Level,
				"experience_to_next": next.ExperienceToNext,
			},
		})
	}

	next.Stage = LaterStage(next.Stage, StageForLevel(next.Level))
	if next.Stage != b.Stage {
		events = append(events, stageChangedEvent(b.Stage, next.Stage, "level", now))
	}
	return next, events
}

func stageChangedEvent(from, to Stage, cause string, now time.Time) DomainEvent {
	return DomainEvent{
		Type:       EventStageChanged,
		OccurredAt: now,
		Payload: map[string]any{
			"from":  string(from),
			"to":    string(to),
			"cause": cause,
		},
	}
}

func addCapped(v, delta int) int {
	v += delta
	if v > MaxStat {
		return MaxStat
	}
	if v < 0 {
		return 0
	}
	return v
}
