package buddy

import (
	"math"
	"testing"
	"time"
)

func forestDef() AdventureDefinition {
	return DefaultAdventures[0]
}

func TestStartAdventure_RejectsBelowRequiredLevel(t *testing.T) {
	b := NewBuddy("b", 0, testNow)
	def := DefaultAdventures[2]

	out := StartAdventure(b, nil, def, testNow)
	if out.Status != StatusRequirementsNotMet {
		t.Fatalf("expected requirements_not_met, got %s", out.Status)
	}
	if out.Adventure != nil {
		t.Fatalf("expected no adventure record")
	}
	if len(out.Events) != 0 {
		t.Fatalf("expected no events")
	}
}

func TestStartAdventure_RejectsLowHappiness(t *testing.T) {
	b := NewBuddy("b", 0, testNow)
	b.Happiness = 29

	if out := StartAdventure(b, nil, forestDef(), testNow); out.Status != StatusRequirementsNotMet {
		t.Fatalf("expected requirements_not_met, got %s", out.Status)
	}
}

func TestStartAdventure_RecordsStartTime(t *testing.T) {
	b := NewBuddy("b", 0, testNow)

	out := StartAdventure(b, nil, forestDef(), testNow)
	if out.Status != StatusOK {
		t.Fatalf("expected ok, got %s", out.Status)
	}
	if out.Adventure == nil || out.Adventure.ID != "forest" {
		t.Fatalf("expected forest adventure, got %+v", out.Adventure)
	}
	if !out.Adventure.StartTime.Equal(testNow) {
		t.Fatalf("start time mismatch")
	}
	if out.Adventure.RewardXP != 50 || out.Adventure.DurationMinutes != 30 {
		t.Fatalf("unexpected copy of definition: %+v", out.Adventure)
	}
}

func TestStartAdventure_RejectsSecondWhileActive(t *testing.T) {
	b := NewBuddy("b", 0, testNow)
	first := StartAdventure(b, nil, forestDef(), testNow)

	second := StartAdventure(b, first.Adventure, forestDef(), testNow.Add(time.Minute))
	if second.Status != StatusAdventureActive {
		t.Fatalf("expected adventure_active, got %s", second.Status)
	}
	if second.Adventure != first.Adventure {
		t.Fatalf("expected active adventure to be kept")
	}
}

func TestProgress(t *testing.T) {
	adv := &Adventure{ID: "forest", DurationMinutes: 30, StartTime: testNow}

	if got := Progress(nil, testNow); got != 0 {
		t.Fatalf("idle progress mismatch: got=%v want=0", got)
	}
	if got := Progress(adv, testNow.Add(-time.Minute)); got != 0 {
		t.Fatalf("negative elapsed should clamp to 0, got %v", got)
	}
	if got := Progress(adv, testNow.Add(15*time.Minute)); math.Abs(got-50) > 1e-9 {
		t.Fatalf("half-way progress mismatch: got=%v want=50", got)
	}
	if got := Progress(adv, testNow.Add(2*time.Hour)); got != 100 {
		t.Fatalf("progress should cap at 100, got %v", got)
	}
	if got := Progress(&Adventure{ID: "x", StartTime: testNow}, testNow); got != 100 {
		t.Fatalf("zero duration should be complete, got %v", got)
	}
}

func TestCompleteAdventure_BeforeDoneIsNoop(t *testing.T) {
	b := NewBuddy("b", 0, testNow)
	start := StartAdventure(b, nil, forestDef(), testNow)

	out := CompleteAdventure(b, start.Adventure, testNow.Add(29*time.Minute))
	if out.Status != StatusStillInProgress {
		t.Fatalf("expected still_in_progress, got %s", out.Status)
	}
	if out.Adventure != start.Adventure {
		t.Fatalf("expected adventure unchanged")
	}
	if out.Buddy != b {
		t.Fatalf("expected no xp or happiness change")
	}
}

func TestCompleteAdventure_PaysOutAndClears(t *testing.T) {
	b := NewBuddy("b", 0, testNow)
	b.Happiness = 90
	b.Experience = 60
	start := StartAdventure(b, nil, forestDef(), testNow)

	out := CompleteAdventure(b, start.Adventure, testNow.Add(30*time.Minute))
	if out.Status != StatusOK {
		t.Fatalf("expected ok, got %s", out.Status)
	}
	if out.Adventure != nil {
		t.Fatalf("expected adventure cleared")
	}
	if out.Buddy.Happiness != 100 {
		t.Fatalf("happiness mismatch: got=%d want=100", out.Buddy.Happiness)
	}
	if out.Buddy.Level != 2 || out.Buddy.Experience != 10 {
		t.Fatalf("unexpected progression: level=%d exp=%d", out.Buddy.Level, out.Buddy.Experience)
	}
}

func TestCompleteAdventure_IdleReportsNoAdventure(t *testing.T) {
	if out := CompleteAdventure(NewBuddy("b", 0, testNow), nil, testNow); out.Status != StatusNoAdventure {
		t.Fatalf("expected no_adventure, got %s", out.Status)
	}
}
