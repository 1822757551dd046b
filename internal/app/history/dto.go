package history

import "buddyverse/internal/domain/buddy"

type Request struct {
	Limit int
	// OccurredFrom and OccurredTo are unix seconds; zero leaves a side open.
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Events []buddy.DomainEvent `json:"events"`
}
