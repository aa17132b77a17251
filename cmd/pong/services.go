package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blueprint-pong/internal/assets"
	"github.com/vovakirdan/blueprint-pong/internal/config"
	"github.com/vovakirdan/blueprint-pong/internal/core"
	"github.com/vovakirdan/blueprint-pong/internal/game"
	"github.com/vovakirdan/blueprint-pong/internal/platform/tui"
	"github.com/vovakirdan/blueprint-pong/internal/storage"
)

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens ~/.pong/pong.log for appending. The alternate screen
// owns stderr during local play.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".pong")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "pong.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// baseContext loads the configuration, assets and store shared by every
// session. A missing asset or invalid config is fatal; a missing database
// is not. The caller closes the returned store if it is non-nil.
func baseContext(logger *log.Logger) (tui.AppContext, error) {
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return tui.AppContext{}, fmt.Errorf("cannot load config: %w", err)
	}

	provider, err := assets.Default()
	if err != nil {
		return tui.AppContext{}, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, preferences will not be saved", "path", flagDBPath, "error", err)
		store = nil
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS

	return tui.AppContext{
		Config:  cfg,
		Runtime: rt,
		Assets:  provider,
		Store:   store,
		Profile: flagProfile,
		Logger:  logger,
	}, nil
}

// loadPrefs returns the profile's stored preferences, or in-memory defaults
// when there is no store.
func loadPrefs(store *storage.Store, profile string, logger *log.Logger) game.Preferences {
	if store == nil {
		return game.NewMemoryPreferences(config.DifficultyMedium, true)
	}
	prefs, err := storage.LoadPrefs(store, profile)
	if err != nil {
		logger.Warn("using default preferences", "profile", profile, "error", err)
		return game.NewMemoryPreferences(config.DifficultyMedium, true)
	}
	return prefs
}

// openStore opens the database for the offline commands, which need it.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}
	return store, nil
}
