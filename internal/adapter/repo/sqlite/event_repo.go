package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"buddyverse/internal/app/ports"
	"buddyverse/internal/domain/buddy"
)

type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, events []buddy.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("append events: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, e := range events {
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("append events: encode %s: %w", e.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO domain_events (event_id, event_type, occurred_at, payload) VALUES (?, ?, ?, ?)`,
			e.ID, e.Type, e.OccurredAt.UTC().Format(time.RFC3339Nano), string(payload),
		)
		if isConstraint(err) {
			return fmt.Errorf("append events: %s: %w", e.ID, ports.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("append events: insert %s: %w", e.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("append events: commit: %w", err)
	}
	return nil
}

func (r EventRepo) List(ctx context.Context, limit int) ([]buddy.DomainEvent, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT event_id, event_type, occurred_at, payload FROM domain_events ORDER BY seq DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	out := make([]buddy.DomainEvent, 0)
	for rows.Next() {
		var (
			evt        buddy.DomainEvent
			occurredAt string
			payload    string
		)
		if err := rows.Scan(&evt.ID, &evt.Type, &occurredAt, &payload); err != nil {
			return nil, fmt.Errorf("list events: scan: %w", err)
		}
		evt.OccurredAt, err = time.Parse(time.RFC3339Nano, occurredAt)
		if err != nil {
			return nil, fmt.Errorf("list events: parse occurred_at %q: %w", occurredAt, err)
		}
		if err := json.Unmarshal([]byte(payload), &evt.Payload); err != nil {
			return nil, fmt.Errorf("list events: decode payload %s: %w", evt.ID, err)
		}
		out = append(out, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

func isConstraint(err error) bool {
	var sqliteErr *sqlitedrv.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}
