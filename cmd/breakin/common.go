package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/break-in/internal/config"
	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/platform/report"
	"github.com/vovakirdan/break-in/internal/storage"
)

// loadMatchConfig resolves the config file and the difficulty flag.
func loadMatchConfig() (config.BreakinConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BreakinConfig{}, "", err
	}

	cfg, err := config.LoadBreakin(flagConfig)
	if err != nil {
		return config.BreakinConfig{}, "", err
	}
	config.ApplyBreakinPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.BreakinConfig{}, "", fmt.Errorf("invalid config: %w", err)
	}
	return cfg, preset, nil
}

// openStore opens the history database. Failure is reported and the caller
// continues without history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig builds host parameters from the terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	return report.NewLogger(w, prefix, flagLogLevel)
}

// fileLogger logs to path, or nowhere when path is empty. Interactive
// commands never log to the terminal they draw on.
func fileLogger(path, prefix string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	logger, err := newLogger(f, prefix)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
