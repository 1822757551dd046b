package httpadapter

import (
	"encoding/json"
	"testing"
	"time"

	"buddyverse/internal/app/adventures"
	"buddyverse/internal/app/companion"
	"buddyverse/internal/app/history"
	"buddyverse/internal/app/status"
	"buddyverse/internal/domain/buddy"
)

func TestResponseJSONKeys(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	b := buddy.NewBuddy("Mochi", 120, now)
	st := companion.State{Buddy: b, Streak: buddy.NewStreak(now)}
	event := buddy.DomainEvent{
		ID:         "e1",
		Type:       buddy.EventBuddyFed,
		OccurredAt: now,
		Payload:    map[string]any{"xp": 10},
	}

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name:    "outcome",
			payload: newOutcomeResponse(companion.Outcome{Action: buddy.ActionFeed, Status: buddy.StatusOK, Committed: true, State: st, Events: []buddy.DomainEvent{event}}),
			want:    []string{"result_code", "action", "committed", "state", "events"},
			notWant: []string{"ResultCode", "State", "remaining_seconds"},
		},
		{
			name:    "status",
			payload: status.Response{Buddy: b, Streak: st.Streak, Mood: status.MoodHappy},
			want:    []string{"buddy", "streak", "adventure_progress", "cooldown_seconds", "can_check_in", "mood", "health_tier"},
			notWant: []string{"Buddy", "adventure", "CanCheckIn"},
		},
		{
			name:    "history",
			payload: history.Response{Events: []buddy.DomainEvent{event}},
			want:    []string{"events"},
			notWant: []string{"Events"},
		},
		{
			name:    "adventures",
			payload: adventures.Response{Adventures: []adventures.Entry{{AdventureDefinition: buddy.DefaultAdventures[0], CanStart: true}}},
			want:    []string{"adventures"},
			notWant: []string{"Adventures"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(raw, &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			for _, key := range tc.want {
				if _, ok := got[key]; !ok {
					t.Fatalf("expected key %q in %s", key, string(raw))
				}
			}
			for _, key := range tc.notWant {
				if _, ok := got[key]; ok {
					t.Fatalf("unexpected key %q in %s", key, string(raw))
				}
			}
			if tc.name == "outcome" {
				buddyMap := asMap(asMap(got["state"])["buddy"])
				for _, key := range []string{"experienceToNext", "colorHue", "lastFed", "eggPetCount"} {
					if _, ok := buddyMap[key]; !ok {
						t.Fatalf("expected nested key state.buddy.%s in %s", key, string(raw))
					}
				}
				if _, ok := asMap(got["state"])["adventure"]; ok {
					t.Fatalf("idle adventure must be omitted in %s", string(raw))
				}
			}
			if tc.name == "adventures" {
				list, _ := got["adventures"].([]any)
				entry := asMap(list[0])
				if _, ok := entry["requiredLevel"]; !ok {
					t.Fatalf("expected embedded definition fields in %s", string(raw))
				}
				if got, want := entry["canStart"], true; got != want {
					t.Fatalf("canStart mismatch: got=%v want=%v", got, want)
				}
			}
		})
	}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
