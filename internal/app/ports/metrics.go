package ports

import "buddyverse/internal/domain/buddy"

type ActionMetrics interface {
	RecordOutcome(action buddy.ActionType, status buddy.Status)
	RecordFailure(action buddy.ActionType)
	RecordPersistFailure()
}
