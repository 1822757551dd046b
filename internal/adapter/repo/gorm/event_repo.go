package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"buddyverse/internal/adapter/repo/gorm/model"
	"buddyverse/internal/app/ports"
	"buddyverse/internal/domain/buddy"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, events []buddy.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.DomainEvent, 0, len(events))
	for _, e := range events {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("encode event %s: %w", e.ID, err)
		}
		rows = append(rows, model.DomainEvent{
			EventID:    e.ID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	err := r.db.WithContext(ctx).Create(&rows).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("append events: %w", ports.ErrConflict)
	}
	return err
}

func (r EventRepo) List(ctx context.Context, limit int) ([]buddy.DomainEvent, error) {
	rows := []model.DomainEvent{}
	query := r.db.WithContext(ctx).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "occurred_at"}, Desc: true},
				{Column: clause.Column{Name: "seq"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]buddy.DomainEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, buddy.DomainEvent{
			ID:         row.EventID,
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
