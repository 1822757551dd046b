package cooldown

import (
	"time"

	"buddyverse/internal/domain/buddy"
)

// RemainingForAction reports whole seconds until action opens, rounded up so
// a gated action never shows zero.
func RemainingForAction(b buddy.Buddy, action buddy.ActionType, now time.Time) (int, bool) {
	remaining, gated := buddy.CooldownRemaining(b, action, now)
	if !gated {
		return 0, false
	}
	return CeilSeconds(remaining), true
}

// RemainingByAction lists every gated action, check-in included. Open
// actions are omitted.
func RemainingByAction(b buddy.Buddy, s buddy.Streak, now time.Time) map[string]int {
	out := map[string]int{}
	for action := range buddy.ActionCooldownDurations {
		if remaining, ok := RemainingForAction(b, action, now); ok {
			out[string(action)] = remaining
		}
	}
	if remaining, gated := buddy.CheckInRemaining(s, now); gated {
		out[string(buddy.ActionCheckIn)] = CeilSeconds(remaining)
	}
	return out
}

// CeilSeconds rounds d up to whole seconds. Any positive wait is at least 1;
// zero and negative durations are 0.
func CeilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
