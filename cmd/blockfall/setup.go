package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// newLogger creates the process logger. Logs go to --log-file when set,
// otherwise to fallback. Every line carries the session id.
// The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	return logger.With("session", uuid.NewString()), closer, nil
}

// loadConfig loads the config file and applies the speed preset flag.
func loadConfig() (config.BlockfallConfig, error) {
	cfg, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(flagSpeedPreset)); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newGame builds a game from the effective configuration.
// A zero seed picks a time-based one.
func newGame(logger *log.Logger, seed int64) (*blockfall.Game, config.BlockfallConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("creating game", "seed", seed, "rows", cfg.Grid.Rows, "cols", cfg.Grid.Cols, "speed", cfg.Speed.Initial)

	game, err := blockfall.NewFromConfig(cfg,
		blockfall.WithSelector(blockfall.NewRandomSelector(seed)),
		blockfall.WithLogger(logger),
	)
	if err != nil {
		return nil, cfg, err
	}
	return game, cfg, nil
}
