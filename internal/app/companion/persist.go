package companion

import (
	"context"

	"buddyverse/internal/domain/buddy"
)

// persist writes one committed revision. It runs outside the state lock;
// a revision older than the last one written is dropped so the durable copy
// never moves backwards. Failures are logged and counted, never returned.
func (s *Service) persist(ctx context.Context, rev uint64, st State, events []buddy.DomainEvent) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if s.events != nil && len(events) > 0 {
		if err := s.events.Append(ctx, events); err != nil {
			s.persistFailed("append events: %v", err)
		}
	}
	if rev <= s.persisted {
		return
	}
	if err := s.gateway.SaveBuddy(ctx, st.Buddy); err != nil {
		s.persistFailed("%v", err)
		return
	}
	if err := s.gateway.SaveStreak(ctx, st.Streak); err != nil {
		s.persistFailed("%v", err)
		return
	}
	if err := s.gateway.SaveAdventure(ctx, st.Adventure); err != nil {
		s.persistFailed("%v", err)
		return
	}
	s.persisted = rev
}

func (s *Service) persistFailed(format string, args ...any) {
	s.log.Error("persist: "+format, args...)
	if s.metrics != nil {
		s.metrics.RecordPersistFailure()
	}
}
