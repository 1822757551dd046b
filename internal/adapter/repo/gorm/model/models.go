package model

import "time"

const (
	TableNameSnapshot    = "buddy_snapshots"
	TableNameDomainEvent = "buddy_events"
)

type Snapshot struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value;type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (*Snapshot) TableName() string {
	return TableNameSnapshot
}

type DomainEvent struct {
	Seq        int64     `gorm:"column:seq;primaryKey;autoIncrement"`
	EventID    string    `gorm:"column:event_id;not null;uniqueIndex"`
	Type       string    `gorm:"column:event_type;not null"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null;index"`
	Payload    []byte    `gorm:"column:payload;type:jsonb;not null"`
}

func (*DomainEvent) TableName() string {
	return TableNameDomainEvent
}
