package status

import "buddyverse/internal/domain/buddy"

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodContent Mood = "content"
	MoodMeh     Mood = "meh"
	MoodSad     Mood = "sad"
)

type HealthTier string

const (
	HealthStrong HealthTier = "strong"
	HealthGood   HealthTier = "good"
	HealthWeak   HealthTier = "weak"
	HealthSick   HealthTier = "sick"
)

type Response struct {
	Buddy             buddy.Buddy      `json:"buddy"`
	Streak            buddy.Streak     `json:"streak"`
	Adventure         *buddy.Adventure `json:"adventure,omitempty"`
	AdventureProgress float64          `json:"adventure_progress"`
	Cooldowns         map[string]int   `json:"cooldown_seconds"`
	CanCheckIn        bool             `json:"can_check_in"`
	Mood              Mood             `json:"mood"`
	HealthTier        HealthTier       `json:"health_tier"`
	StreakTier        buddy.StreakTier `json:"streak_tier"`
	TotalScore        int              `json:"total_score"`
	ExperiencePercent float64          `json:"experience_percent"`
}
