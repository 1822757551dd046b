package history

import (
	"context"
	"errors"

	"buddyverse/internal/app/ports"
	"buddyverse/internal/domain/buddy"
)

var ErrInvalidRequest = errors.New("invalid history request")

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

type UseCase struct {
	Events ports.EventRepository
}

// Execute lists events newest first. The window filter runs before the limit
// is applied.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Limit < 0 || req.Limit > MaxLimit {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom < 0 || req.OccurredTo < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	fetch := limit
	if req.OccurredFrom > 0 || req.OccurredTo > 0 {
		fetch = 0
	}
	events, err := u.Events.List(ctx, fetch)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	if len(events) > limit {
		events = events[:limit]
	}
	return Response{Events: events}, nil
}

func filterByTimeWindow(events []buddy.DomainEvent, from, to int64) []buddy.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]buddy.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}
