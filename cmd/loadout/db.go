package main

import (
	"context"
	"fmt"
	"strings"

	"loadout/internal/config"
	"loadout/internal/store"
	"loadout/internal/store/postgres"
	"loadout/internal/store/sqlite"
)

const (
	backendPostgres = "postgres"
	backendSQLite   = "sqlite"
)

func storeBackend(dsn string) (string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return backendPostgres, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return backendSQLite, nil
	case strings.TrimSpace(dsn) == "":
		return "", fmt.Errorf("database.dsn is not configured")
	default:
		return "", fmt.Errorf("unsupported database DSN scheme: %s", dsn)
	}
}

// openStore connects the spawn journal and makes sure its tables exist.
func openStore(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	backend, err := storeBackend(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	var db store.Store
	switch backend {
	case backendPostgres:
		db, err = postgres.New(ctx, cfg.Database.DSN)
	default:
		db, err = sqlite.New(ctx, cfg.Database.DSN)
	}
	if err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close(ctx)
		return nil, err
	}
	return db, nil
}
