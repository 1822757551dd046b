package companion

import (
	"time"

	"buddyverse/internal/domain/buddy"
)

// State is one committed snapshot of everything the companion owns.
type State struct {
	Buddy     buddy.Buddy      `json:"buddy"`
	Streak    buddy.Streak     `json:"streak"`
	Adventure *buddy.Adventure `json:"adventure,omitempty"`
}

func (s State) clone() State {
	if s.Adventure != nil {
		adv := *s.Adventure
		s.Adventure = &adv
	}
	return s
}

// Outcome reports how one operation resolved. Committed is false for
// rejected actions and for accepted calls that changed nothing.
type Outcome struct {
	Action    buddy.ActionType    `json:"action"`
	Status    buddy.Status        `json:"status"`
	Committed bool                `json:"committed"`
	Remaining time.Duration       `json:"-"`
	State     State               `json:"state"`
	Events    []buddy.DomainEvent `json:"events,omitempty"`
}

// step is what a transition hands back to the commit path.
type step struct {
	next      State
	status    buddy.Status
	events    []buddy.DomainEvent
	remaining time.Duration
}

// Every accepted mutation emits at least one event.
func (st step) commits() bool {
	return st.status == buddy.StatusOK && len(st.events) > 0
}
