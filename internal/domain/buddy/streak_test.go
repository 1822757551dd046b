package buddy

import (
	"testing"
	"time"
)

func TestCheckIn_IncrementsAndGrantsXP(t *testing.T) {
	b := NewBuddy("b", 0, testNow)
	s := NewStreak(testNow)

	out := CheckIn(b, s, testNow)
	if out.Status != StatusOK {
		t.Fatalf("expected ok, got %s", out.Status)
	}
	if out.Streak.Current != 1 || out.Streak.Longest != 1 || out.Streak.TotalDays != 1 {
		t.Fatalf("unexpected streak: %+v", out.Streak)
	}
	if !out.Streak.LastCheckin.Equal(testNow) {
		t.Fatalf("lastCheckin not updated")
	}
	if out.Buddy.Experience != CheckInXP {
		t.Fatalf("experience mismatch: got=%d want=%d", out.Buddy.Experience, CheckInXP)
	}
}

func TestCheckIn_GatedUntilFullDayElapsed(t *testing.T) {
	b := NewBuddy("b", 0, testNow)
	first := CheckIn(b, NewStreak(testNow), testNow)

	out := CheckIn(first.Buddy, first.Streak, testNow.Add(23*time.Hour))
	if out.Status != StatusNotYetEligible {
		t.Fatalf("expected not_yet_eligible, got %s", out.Status)
	}
	if out.Remaining != time.Hour {
		t.Fatalf("remaining mismatch: got=%v want=%v", out.Remaining, time.Hour)
	}
	if out.Streak != first.Streak || out.Buddy != first.Buddy {
		t.Fatalf("expected no mutation on gated check-in")
	}

	// Elapsed time, not calendar date: exactly 24h later is allowed.
	if next := CheckIn(first.Buddy, first.Streak, testNow.Add(24*time.Hour)); next.Status != StatusOK {
		t.Fatalf("expected check-in at 24h, got %s", next.Status)
	}
}

func TestCheckIn_MissedDaysDoNotReset(t *testing.T) {
	b := NewBuddy("b", 0, testNow)
	s := Streak{Current: 4, Longest: 9, LastCheckin: testNow.Add(-10 * 24 * time.Hour), TotalDays: 20}

	out := CheckIn(b, s, testNow)
	if out.Streak.Current != 5 {
		t.Fatalf("current mismatch: got=%d want=5", out.Streak.Current)
	}
	if out.Streak.Longest != 9 {
		t.Fatalf("longest mismatch: got=%d want=9", out.Streak.Longest)
	}
	if out.Streak.TotalDays != 21 {
		t.Fatalf("total days mismatch: got=%d want=21", out.Streak.TotalDays)
	}
}

func TestTierForStreak(t *testing.T) {
	cases := map[int]StreakTier{
		0:  StreakTierSpark,
		3:  StreakTierSparkle,
		7:  StreakTierFire,
		14: StreakTierStar,
		30: StreakTierTrophy,
	}
	for current, want := range cases {
		if got := TierForStreak(current); got != want {
			t.Fatalf("current=%d: got=%s want=%s", current, got, want)
		}
	}
}
