package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"buddyverse/internal/adapter/repo/gorm/model"
	"buddyverse/internal/app/ports"

	"gorm.io/gorm"
)

type SnapshotStore struct {
	db *gorm.DB
}

func NewSnapshotStore(db *gorm.DB) SnapshotStore {
	return SnapshotStore{db: db}
}

func (r SnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	var row model.Snapshot
	err := r.db.WithContext(ctx).
		Where(&model.Snapshot{Key: key}).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", key, err)
	}
	return row.Value, nil
}

func (r SnapshotStore) Save(ctx context.Context, key string, value []byte) error {
	err := r.db.WithContext(ctx).
		Where(&model.Snapshot{Key: key}).
		Assign(model.Snapshot{
			Value:     value,
			UpdatedAt: time.Now(),
		}).
		FirstOrCreate(&model.Snapshot{}).Error
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", key, err)
	}
	return nil
}

func (r SnapshotStore) Remove(ctx context.Context, key string) error {
	err := r.db.WithContext(ctx).
		Where(&model.Snapshot{Key: key}).
		Delete(&model.Snapshot{}).Error
	if err != nil {
		return fmt.Errorf("remove snapshot %s: %w", key, err)
	}
	return nil
}
