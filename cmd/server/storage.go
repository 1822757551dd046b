package main

import (
	"context"
	"fmt"
	"os"

	gormrepo "buddyverse/internal/adapter/repo/gorm"
	"buddyverse/internal/adapter/repo/memory"
	"buddyverse/internal/adapter/repo/sqlite"
	"buddyverse/internal/app/ports"
)

type stores struct {
	snapshots ports.SnapshotStore
	events    ports.EventRepository
	close     func() error
}

func openStores(ctx context.Context, cfg Config) (stores, error) {
	switch cfg.Storage {
	case StorageMemory:
		mem := memory.NewStore()
		return stores{
			snapshots: memory.NewSnapshotStore(mem),
			events:    memory.NewEventRepo(mem),
			close:     func() error { return nil },
		}, nil
	case StoragePostgres:
		db, err := gormrepo.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return stores{}, fmt.Errorf("open postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return stores{}, fmt.Errorf("postgres handle: %w", err)
		}
		if err := gormrepo.ApplyMigrations(ctx, db, os.DirFS(cfg.MigrationsDir)); err != nil {
			_ = sqlDB.Close()
			return stores{}, fmt.Errorf("apply migrations: %w", err)
		}
		return stores{
			snapshots: gormrepo.NewSnapshotStore(db),
			events:    gormrepo.NewEventRepo(db),
			close:     sqlDB.Close,
		}, nil
	default:
		db, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return stores{}, err
		}
		return stores{
			snapshots: sqlite.NewSnapshotStore(db),
			events:    sqlite.NewEventRepo(db),
			close:     db.Close,
		}, nil
	}
}
