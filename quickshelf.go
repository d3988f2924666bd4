// Package quickshelf wires the inventory core together: durable storage,
// the item repository, and logging. The presentation layer constructs one
// App at startup and hands the repository to its screens; there is no other
// writer of the stored collection.
package quickshelf

import (
	"context"
	"fmt"
	"log/slog"

	"quickshelf/config"
	"quickshelf/kv"
	"quickshelf/repo"
	"quickshelf/store"
)

// App holds the long-lived parts of the application.
type App struct {
	KV    *kv.Store
	Items *repo.Repository

	closeLog func()
}

// Open sets up logging, opens the key-value store, and builds the item
// repository preloaded with the stored collection.
func Open(cfg config.Config) (*App, error) {
	closeLog, err := setupLogger(cfg.LogPath)
	if err != nil {
		return nil, err
	}

	kvStore, err := kv.Open(cfg.DBPath)
	if err != nil {
		if closeLog != nil {
			closeLog()
		}
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	items := repo.New(store.New(kvStore))
	items.Reload(context.Background())

	slog.Info("storage ready", "path", cfg.DBPath)

	return &App{
		KV:       kvStore,
		Items:    items,
		closeLog: closeLog,
	}, nil
}

// Close releases the database and the log file.
func (a *App) Close() error {
	err := a.KV.Close()
	if a.closeLog != nil {
		a.closeLog()
	}
	return err
}
