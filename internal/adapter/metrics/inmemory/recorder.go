package inmemory

import (
	"sync"

	"buddyverse/internal/domain/buddy"
)

type Snapshot struct {
	ActionTotal     uint64                       `json:"action_total"`
	ActionOK        uint64                       `json:"action_ok"`
	ActionRejected  uint64                       `json:"action_rejected"`
	ActionFailure   uint64                       `json:"action_failure"`
	PersistFailure  uint64                       `json:"persist_failure"`
	ByAction        map[string]map[string]uint64 `json:"by_action"`
	FailureByAction map[string]uint64            `json:"failure_by_action"`
}

// Recorder counts action outcomes. Every non-ok status counts as rejected.
type Recorder struct {
	mu        sync.Mutex
	ok        uint64
	rejected  uint64
	failure   uint64
	persist   uint64
	byAction  map[string]map[string]uint64
	failureBy map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction:  map[string]map[string]uint64{},
		failureBy: map[string]uint64{},
	}
}

func (r *Recorder) RecordOutcome(action buddy.ActionType, status buddy.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if status == buddy.StatusOK {
		r.ok++
	} else {
		r.rejected++
	}
	byStatus, ok := r.byAction[string(action)]
	if !ok {
		byStatus = map[string]uint64{}
		r.byAction[string(action)] = byStatus
	}
	byStatus[string(status)]++
}

func (r *Recorder) RecordFailure(action buddy.ActionType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
	r.failureBy[string(action)]++
}

func (r *Recorder) RecordPersistFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.persist++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionOK:        r.ok,
		ActionRejected:  r.rejected,
		ActionFailure:   r.failure,
		ActionTotal:     r.ok + r.rejected + r.failure,
		PersistFailure:  r.persist,
		ByAction:        make(map[string]map[string]uint64, len(r.byAction)),
		FailureByAction: make(map[string]uint64, len(r.failureBy)),
	}
	for action, byStatus := range r.byAction {
		cp := make(map[string]uint64, len(byStatus))
		for k, v := range byStatus {
			cp[k] = v
		}
		out.ByAction[action] = cp
	}
	for k, v := range r.failureBy {
		out.FailureByAction[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
