package buddy

import "time"

type CheckInResult struct {
	Buddy     Buddy
	Streak    Streak
	Events    []DomainEvent
	Status    Status
	Remaining time.Duration
}

// CheckInRemaining measures eligibility in elapsed time, not calendar days.
func CheckInRemaining(s Streak, now time.Time) (time.Duration, bool) {
	elapsed := now.Sub(s.LastCheckin)
	if elapsed >= CheckInInterval {
		return 0, false
	}
	return CheckInInterval - elapsed, true
}

// CheckIn never resets Current; a missed day keeps the streak.
func CheckIn(b Buddy, s Streak, now time.Time) CheckInResult {
	if remaining, gated := CheckInRemaining(s, now); gated {
		return CheckInResult{Buddy: b, Streak: s, Status: StatusNotYetEligible, Remaining: remaining}
	}
	nextStreak := s
	nextStreak.Current++
	if nextStreak.Current > nextStreak.Longest {
		nextStreak.Longest = nextStreak.Current
	}
	nextStreak.LastCheckin = now
	nextStreak.TotalDays++

	next, levelEvents := GrantExperience(b, CheckInXP, now)
	events := []DomainEvent{{
		Type:       EventCheckedIn,
		OccurredAt: now,
		Payload: map[string]any{
			"current":    nextStreak.Current,
			"longest":    nextStreak.Longest,
			"total_days": nextStreak.TotalDays,
		},
	}}
	return CheckInResult{
		Buddy:  next,
		Streak: nextStreak,
		Events: append(events, levelEvents...),
		Status: StatusOK,
	}
}

type StreakTier string

const (
	StreakTierSpark   StreakTier = "spark"
	StreakTierSparkle StreakTier = "sparkle"
	StreakTierFire    StreakTier = "fire"
	StreakTierStar    StreakTier = "star"
	StreakTierTrophy  StreakTier = "trophy"
)

func TierForStreak(current int) StreakTier {
	switch {
	case current >= 30:
		return StreakTierTrophy
	case current >= 14:
		return StreakTierStar
	case current >= 7:
		return StreakTierFire
	case current >= 3:
		return StreakTierSparkle
	default:
		return StreakTierSpark
	}
}
