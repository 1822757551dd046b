package status

import "buddyverse/internal/domain/buddy"

func MoodFor(happiness int) Mood {
	switch {
	case happiness >= 80:
		return MoodHappy
	case happiness >= 60:
		return MoodContent
	case happiness >= 40:
		return MoodMeh
	default:
		return MoodSad
	}
}

func HealthTierFor(health int) HealthTier {
	switch {
	case health >= 80:
		return HealthStrong
	case health >= 60:
		return HealthGood
	case health >= 40:
		return HealthWeak
	default:
		return HealthSick
	}
}

// TotalScore is level*100 + experience + happiness + health.
func TotalScore(b buddy.Buddy) int {
	return b.Level*100 + b.Experience + b.Happiness + b.Health
}

func ExperiencePercent(b buddy.Buddy) float64 {
	if b.ExperienceToNext <= 0 {
		return 0
	}
	return float64(b.Experience) / float64(b.ExperienceToNext) * 100
}
