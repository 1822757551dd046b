package status

import (
	"context"
	"errors"
	"time"

	"buddyverse/internal/app/companion"
	"buddyverse/internal/app/cooldown"
	"buddyverse/internal/domain/buddy"
)

var ErrInvalidRequest = errors.New("invalid status request")

type StateReader interface {
	Snapshot() companion.State
}

// UseCase derives the read model shown to the user from one snapshot.
type UseCase struct {
	State StateReader
	Now   func() time.Time
}

func (u UseCase) Execute(_ context.Context) (Response, error) {
	if u.State == nil {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()
	st := u.State.Snapshot()

	_, gated := buddy.CheckInRemaining(st.Streak, now)
	return Response{
		Buddy:             st.Buddy,
		Streak:            st.Streak,
		Adventure:         st.Adventure,
		AdventureProgress: buddy.Progress(st.Adventure, now),
		Cooldowns:         cooldown.RemainingByAction(st.Buddy, st.Streak, now),
		CanCheckIn:        !gated,
		Mood:              MoodFor(st.Buddy.Happiness),
		HealthTier:        HealthTierFor(st.Buddy.Health),
		StreakTier:        buddy.TierForStreak(st.Streak.Current),
		TotalScore:        TotalScore(st.Buddy),
		ExperiencePercent: ExperiencePercent(st.Buddy),
	}, nil
}
