package buddy

import (
	"strings"
	"time"
	"unicode/utf8"
)

// NewBuddy returns a fresh egg. hue is reduced into [0, HueRange).
func NewBuddy(name string, hue int, now time.Time) Buddy {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	return Buddy{
		Name:             name,
		Level:            DefaultLevel,
		Experience:       0,
		ExperienceToNext: DefaultExperienceToNext,
		Happiness:        DefaultHappiness,
		Health:           DefaultHealth,
		Stage:            StageEgg,
		ColorHue:         normalizeHue(hue),
		LastFed:          now.Add(-initialFedBackdate),
		LastPlayed:       now.Add(-initialPlayedBackdate),
		LastPetted:       now.Add(-initialPettedBackdate),
		CreatedAt:        now,
		BuddyType:        BuddyTypeDefault,
		Clothing:         ClothingNone,
	}
}

func NewStreak(now time.Time) Streak {
	return Streak{LastCheckin: now.Add(-CheckInInterval)}
}

func normalizeHue(hue int) int {
	hue %= HueRange
	if hue < 0 {
		hue += HueRange
	}
	return hue
}

// Valid reports whether a decoded buddy is usable as a snapshot.
func (b Buddy) Valid() bool {
	if b.Level < 1 || b.ExperienceToNext < 1 {
		return false
	}
	if b.Experience < 0 || b.Experience >= b.ExperienceToNext {
		return false
	}
	if !inStatRange(b.Happiness) || !inStatRange(b.Health) {
		return false
	}
	if !b.Stage.Valid() || b.CreatedAt.IsZero() {
		return false
	}
	return b.ColorHue >= 0 && b.ColorHue < HueRange
}

func (s Streak) Valid() bool {
	return s.Current >= 0 && s.Longest >= s.Current && s.TotalDays >= 0
}

func (a Adventure) Valid() bool {
	return strings.TrimSpace(a.ID) != "" && !a.StartTime.IsZero() && a.DurationMinutes >= 0
}

// NormalizeName trims name and reports whether it is acceptable.
func NormalizeName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameRunes {
		return "", false
	}
	return name, true
}

func inStatRange(v int) bool {
	return v >= 0 && v <= MaxStat
}
