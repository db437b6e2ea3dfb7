package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/loop"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run headless with a real fall timer",
	Long: `Run the engine with the wall-clock fall timer, reading one or more
steps per line from stdin and printing every frame as plain text.
The timer ticks on its own, so "tick" is not accepted. Type "quit" or
close stdin to exit.

Examples:
  blockfall watch
  printf 'start\n' | blockfall watch --speed-preset fast`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game, _, err := newGame(logger, flagSeed)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := cmd.OutOrStdout()
	runner := loop.New(game,
		loop.WithLogger(logger),
		loop.OnSnapshot(func(snap blockfall.Snapshot) {
			fmt.Fprintln(out, blockfall.RenderASCII(snap))
		}),
	)

	errc := make(chan error, 1)
	go func() { errc <- runner.Run(ctx) }()

	go func() {
		defer cancel()
		if err := feedSteps(ctx, cmd.InOrStdin(), runner.Send, logger); err != nil && !errors.Is(err, context.Canceled) {
			logger.Debug("input stopped", "error", err)
		}
	}()

	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// feedSteps reads steps from in, one or more per line, and sends them
// until "quit", EOF, or ctx is done. Returns nil on quit or EOF.
//
// A read from a terminal cannot be interrupted, so on cancellation the
// reader goroutine stays parked in Scan until the next line arrives or
// the process exits. feedSteps itself returns immediately.
func feedSteps(ctx context.Context, in io.Reader, send func(context.Context, blockfall.Msg) error, logger *log.Logger) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return ctx.Err()
				}
			}
			line = strings.TrimSpace(l)
		}

		if line == "quit" {
			return nil
		}
		steps, err := loop.ParseScript(line)
		if err != nil {
			logger.Warn("ignoring line", "line", line, "error", err)
			continue
		}
		for _, step := range steps {
			if step.IsTick() {
				logger.Warn("tick is driven by the timer in watch mode")
				continue
			}
			if err := send(ctx, step.Msg); err != nil {
				return err
			}
		}
	}
}
