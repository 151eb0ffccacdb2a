package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"todoapp/internal/config"
	"todoapp/internal/storage"
	"todoapp/internal/todo"
	"todoapp/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// run owns every resource so deferred closes happen before main exits.
func run() error {
	configPath := config.ResolveConfigPath()
	firstLaunch := false
	if _, err := os.Stat(configPath); err != nil {
		firstLaunch = errors.Is(err, os.ErrNotExist)
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog()

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store := todo.Open(db, logger)
	entry := logger.WithFields(log.Fields{
		"db":      cfg.DBPath,
		"pending": len(store.Pending()),
		"done":    len(store.Done()),
	})
	if saved, err := db.UpdatedAt(todo.PendingKey); err == nil {
		entry = entry.WithField("last_saved", saved)
	}
	entry.Info("starting")

	if err := ui.Run(store, cfg, logger, firstLaunch); err != nil {
		logger.WithError(err).Error("program exited")
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// newLogger writes to the configured log file; the terminal belongs to the UI.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.New()
	logger.SetOutput(f)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger, func() { f.Close() }, nil
}
