package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal UI",
	Long: `Start the interactive playfield.

Controls:
  A/D or ←/→   - Move left/right
  S or ↓       - Move down
  W            - Move up (debug)
  ↑            - Rotate
  P/N          - Previous/next piece
  Enter        - Start
  Space/Esc    - Pause/resume
  X            - Stop and reset
  +/-          - Faster/slower
  R            - Refresh frame
  Ctrl+Y       - Copy frame to clipboard
  ?            - Help
  Q/Ctrl+C     - Quit

Speed presets:
  slow   - 500  (2s per row)
  normal - 1000 (1s per row)
  fast   - 4000 (250ms per row)

Examples:
  blockfall play
  blockfall play --speed-preset fast
  blockfall play --config ./my-blockfall.yaml --log-file blockfall.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Logs would corrupt the alternate screen, so they only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game, cfg, err := newGame(logger, flagSeed)
	if err != nil {
		return err
	}

	// Warn early if the terminal cannot fit the field and panel
	needW, needH := blockfall.ScreenSize(cfg.Grid.Rows, cfg.Grid.Cols)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, blockfall needs %dx%d\n", w, h, needW, needH)
		}
	}

	logger.Info("starting play", "rows", cfg.Grid.Rows, "cols", cfg.Grid.Cols, "speed", cfg.Speed.Initial)
	if err := tui.Run(game, logger); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
